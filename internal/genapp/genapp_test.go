package genapp

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunContextExitCodes(t *testing.T) {
	dir := t.TempDir()
	small := []string{
		"-file", filepath.Join(dir, "s.txt"), "-patterns", filepath.Join(dir, "p.txt"),
		"-count", "20", "-length", "30", "-pattern-count", "3", "-pattern-length", "4",
	}
	cases := []struct {
		name string
		argv []string
		want int
	}{
		{"help", []string{"-h"}, 0},
		{"unknown flag", []string{"-nope"}, 2},
		{"bad value", []string{"-count", "many"}, 2},
		{"positional", append([]string{"extra"}, small...), 2},
		{"bad config", append(append([]string{}, small...), "-count", "0"), 2},
		{"unwritable", append(append([]string{}, small...), "-file", filepath.Join(dir, "no", "s.txt")), 3},
		{"ok", append(append([]string{}, small...), "-seed", "5"), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stderr bytes.Buffer
			code := RunContext(context.Background(), tc.argv, &stderr, &stderr)
			assert.Equal(t, tc.want, code, stderr.String())
		})
	}
}

func TestHelpListsFlags(t *testing.T) {
	var stderr bytes.Buffer
	require.Equal(t, 0, RunContext(context.Background(), []string{"-h"}, &stderr, &stderr))
	for _, f := range []string{"-seed", "-pattern-variance", "-answers"} {
		assert.Contains(t, stderr.String(), f)
	}
}

func TestSeedDefaultedAndLogged(t *testing.T) {
	dir := t.TempDir()
	s, p, a := filepath.Join(dir, "s.txt"), filepath.Join(dir, "p.txt"), filepath.Join(dir, "a.txt")
	var stderr bytes.Buffer
	code := RunContext(context.Background(), []string{
		"-file", s, "-patterns", p, "-answers", a,
		"-count", "10", "-length", "40", "-pattern-count", "2", "-pattern-length", "3",
	}, &stderr, &stderr)
	require.Equal(t, 0, code, stderr.String())

	log := stderr.String()
	assert.Contains(t, log, `"seed": `)
	assert.NotContains(t, log, `"seed": 0,`)
	assert.Contains(t, log, "average matching")

	got, err := os.ReadFile(a)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(got), "2 10\n"), string(got))
}

func TestCancelledExit130(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stderr bytes.Buffer
	code := RunContext(ctx, []string{
		"-file", filepath.Join(dir, "s.txt"), "-patterns", filepath.Join(dir, "p.txt"),
		"-count", "10", "-length", "40", "-pattern-count", "2", "-pattern-length", "3", "-quiet",
	}, &stderr, &stderr)
	assert.Equal(t, 130, code)
}
