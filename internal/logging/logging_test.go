package logging

import (
	"bytes"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(zapcore.WarnLevel, &buf)
	log.Info("hidden")
	log.Warn("shown", zap.Int("pattern", 3))
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line leaked: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, `"pattern": 3`) {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	if err != nil || l != zapcore.DebugLevel {
		t.Fatalf("ParseLevel(debug)=%v,%v", l, err)
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Fatal("expected error")
	}
}

func TestEffective(t *testing.T) {
	if got := Effective(zapcore.DebugLevel, true); got != zapcore.ErrorLevel {
		t.Fatalf("quiet debug -> %v", got)
	}
	if got := Effective(zapcore.DebugLevel, false); got != zapcore.DebugLevel {
		t.Fatalf("debug -> %v", got)
	}
	if got := Effective(zapcore.FatalLevel, true); got != zapcore.FatalLevel {
		t.Fatalf("quiet fatal -> %v", got)
	}
}

func TestErrOmitsVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(zapcore.InfoLevel, &buf)
	err := pkgerrors.WithMessage(pkgerrors.New("bad header line"), "p.txt")
	log.Error("read patterns", Err(err), Err(nil))
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "errorVerbose") || strings.Contains(out, "logging_test.go") {
		t.Fatalf("stack leaked into log line: %q", out)
	}
	if !strings.Contains(out, `"error": "p.txt: bad header line"`) {
		t.Fatalf("message missing: %q", out)
	}
}
