// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"seqmatch/internal/app"
	"seqmatch/internal/genapp"
	"seqmatch/pkg/api"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

const (
	seqs     = "3 8\nAAAA\nACGTACGT\nCAT\n"
	pats     = "3 2\nAA\nA\nCG\n"
	answers  = "3 3\n3,0,0\n4,2,1\n0,2,0\n"
	wrongAns = "3 3\n3,0,0\n4,9,1\n0,2,1\n"
)

func TestEndToEnd(t *testing.T) {
	s, p := write(t, "s.txt", seqs), write(t, "p.txt", pats)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{s, p}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if !strings.HasPrefix(out.String(), "---\nlanguage: go\nalgorithm: aho-corasick\nruntime: ") {
		t.Fatalf("unexpected text output %q", out.String())
	}
}

func TestAllAlgorithmsVerifyAnswers(t *testing.T) {
	s, p, a := write(t, "s.txt", seqs), write(t, "p.txt", pats), write(t, "a.txt", answers)
	for _, alg := range []string{"aho-corasick", "kmp", "boyer-moore", "shift-or", "naive"} {
		var out, errBuf bytes.Buffer
		code := app.Run([]string{"--algorithm", alg, s, p, a}, &out, &errBuf)
		if code != 0 {
			t.Fatalf("%s: exit %d, err=%s", alg, code, errBuf.String())
		}
		if !strings.Contains(out.String(), "algorithm: "+alg+"\n") || !strings.Contains(out.String(), "mismatches: 0\n") {
			t.Fatalf("%s: output %q", alg, out.String())
		}
	}
}

func TestMismatchesReported(t *testing.T) {
	s, p, a := write(t, "s.txt", seqs), write(t, "p.txt", pats), write(t, "a.txt", wrongAns)
	var out, errBuf bytes.Buffer
	code := app.Run([]string{s, p, a}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("exit %d want 2 (two mismatches), err=%s", code, errBuf.String())
	}
	for _, line := range []string{
		"Pattern 2 mismatch against sequence 2 (2 != 9)",
		"Pattern 3 mismatch against sequence 3 (0 != 1)",
	} {
		if !strings.Contains(errBuf.String(), line) {
			t.Errorf("stderr missing %q:\n%s", line, errBuf.String())
		}
	}
	if !strings.Contains(out.String(), "mismatches: 2\n") {
		t.Fatalf("output %q", out.String())
	}
}

func TestJSONOutput(t *testing.T) {
	s, p := write(t, "s.txt", seqs), write(t, "p.txt", pats)
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{"-output", "json", s, p}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d err %s", code, errBuf.String())
	}
	var run api.RunV1
	if err := json.Unmarshal(out.Bytes(), &run); err != nil {
		t.Fatalf("decode: %v\n%s", err, out.String())
	}
	if run.Patterns != 3 || run.Sequences != 3 || run.States == 0 || run.Counts[1][1] != 2 {
		t.Fatalf("unexpected run %+v", run)
	}
}

func TestParallelMatchesEqualSerial(t *testing.T) {
	dir := t.TempDir()
	s, p := filepath.Join(dir, "s.txt"), filepath.Join(dir, "p.txt")
	var errB bytes.Buffer
	if code := genapp.RunContext(context.Background(), []string{
		"-seed", "42", "-file", s, "-patterns", p,
		"-count", "300", "-length", "200", "-pattern-count", "20", "-pattern-length", "4", "-quiet",
	}, &errB, &errB); code != 0 {
		t.Fatalf("gen exit %d: %s", code, errB.String())
	}

	run := func(threads int) string {
		var out, errB bytes.Buffer
		code := app.Run([]string{
			s, p,
			"--threads", fmt.Sprint(threads),
			"--batch-size", "7",
			"--output", "answers",
		}, &out, &errB)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		return out.String()
	}

	serial := run(1)
	parallel := run(4)
	if serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel:%s", serial, parallel)
	}
}

func TestGeneratedAnswersVerify(t *testing.T) {
	dir := t.TempDir()
	s, p, a := filepath.Join(dir, "s.txt.zst"), filepath.Join(dir, "p.txt"), filepath.Join(dir, "a.txt.gz")
	var errB bytes.Buffer
	if code := genapp.RunContext(context.Background(), []string{
		"-seed", "9", "-file", s, "-patterns", p, "-answers", a,
		"-count", "150", "-length", "120", "-line-variance", "20",
		"-pattern-count", "12", "-pattern-length", "6", "-pattern-variance", "2", "-quiet",
	}, &errB, &errB); code != 0 {
		t.Fatalf("gen exit %d: %s", code, errB.String())
	}
	for _, alg := range []string{"aho-corasick", "shift-or"} {
		var out, errB bytes.Buffer
		if code := app.Run([]string{"-algorithm", alg, "-strict", s, p, a}, &out, &errB); code != 0 {
			t.Fatalf("%s: exit %d err %s", alg, code, errB.String())
		}
	}
}

func TestGzipSequences(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte(seqs))
	_ = zw.Close()
	s := write(t, "s.gz", buf.String())
	p, a := write(t, "p.txt", pats), write(t, "a.txt", answers)

	var out, errB bytes.Buffer
	if code := app.Run([]string{s, p, a}, &out, &errB); code != 0 {
		t.Fatalf("exit %d err %s", code, errB.String())
	}
}

func TestConfigFileAndOverride(t *testing.T) {
	s, p := write(t, "s.txt", seqs), write(t, "p.txt", pats)
	cfg := write(t, "seqmatch.toml", "[run]\nalgorithm = \"kmp\"\noutput = \"answers\"\n\n[log]\nlevel = \"warn\"\n")

	var out, errB bytes.Buffer
	if code := app.Run([]string{"-config", cfg, s, p}, &out, &errB); code != 0 {
		t.Fatalf("exit %d err %s", code, errB.String())
	}
	if out.String() != "3 3\n3,0,0\n4,2,1\n0,2,0\n" {
		t.Fatalf("answers output %q", out.String())
	}

	out.Reset()
	if code := app.Run([]string{"-config", cfg, "-output", "text", s, p}, &out, &errB); code != 0 {
		t.Fatalf("exit %d err %s", code, errB.String())
	}
	if !strings.Contains(out.String(), "algorithm: kmp\n") {
		t.Fatalf("flag should override config output, got %q", out.String())
	}

	bad := write(t, "bad.toml", "[run]\nalgorithmz = \"kmp\"\n")
	errB.Reset()
	if code := app.Run([]string{"-config", bad, s, p}, &out, &errB); code != 2 {
		t.Fatalf("unknown key: exit %d", code)
	}
	if !strings.Contains(errB.String(), "unknown keys") {
		t.Fatalf("stderr %q", errB.String())
	}
}

func TestUsageErrors(t *testing.T) {
	s, p := write(t, "s.txt", seqs), write(t, "p.txt", pats)
	cases := map[string][]string{
		"one positional": {s},
		"bad algorithm":  {"-algorithm", "regex", s, p},
		"bad output":     {"-output", "fasta", s, p},
		"missing file":   {s, filepath.Join(t.TempDir(), "none.txt")},
		"empty pattern":  {s, write(t, "e.txt", "2 2\nAC\n\n")},
		"strict":         {"-strict", write(t, "n.txt", "1 4\nACNT\n"), p},
		"answers shape":  {s, p, write(t, "a.txt", "2 3\n1,2,3\n4,5,6\n")},
	}
	for name, argv := range cases {
		var out, errB bytes.Buffer
		if code := app.Run(argv, &out, &errB); code != 2 {
			t.Errorf("%s: exit %d want 2 (stderr %q)", name, code, errB.String())
		}
	}
}

func TestHelpVersionAndPrintConfig(t *testing.T) {
	var out, errB bytes.Buffer
	if code := app.Run(nil, &out, &errB); code != 0 || !strings.Contains(out.String(), "multi-pattern exact matching") {
		t.Fatalf("help: exit %d out %q", code, out.String())
	}
	out.Reset()
	if code := app.Run([]string{"-version"}, &out, &errB); code != 0 || !strings.HasPrefix(out.String(), "seqmatch version ") {
		t.Fatalf("version: exit %d out %q", code, out.String())
	}
	out.Reset()
	if code := app.Run([]string{"-config-print-default", "-threads", "5"}, &out, &errB); code != 0 {
		t.Fatalf("print config: exit %d", code)
	}
	if !strings.Contains(out.String(), "threads = 5") || !strings.Contains(out.String(), "[log]") {
		t.Fatalf("config dump %q", out.String())
	}
}
