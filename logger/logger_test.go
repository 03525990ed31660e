package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var out, errOut bytes.Buffer

	l := New()
	l.SetStdout(&out)
	l.SetStderr(&errOut)

	l.Info("hello")
	l.Debug("hidden")
	if !strings.Contains(out.String(), "I hello") {
		t.Fatal("missing info line:", out.String())
	}
	if strings.Contains(out.String(), "hidden") {
		t.Fatal("debug line written at info level")
	}
	if !strings.Contains(out.String(), "logger_test:") {
		t.Fatal("prefix does not carry the caller file:", out.String())
	}

	l.SetLogLevel(LevelDebug)
	l.Debugf("block %d", 7)
	if !strings.Contains(out.String(), "D block 7") {
		t.Fatal("missing debug line:", out.String())
	}

	l.Errf("bad %s", "thing")
	if !strings.Contains(errOut.String(), "E bad thing") {
		t.Fatal("Errf must write to stderr:", errOut.String())
	}
}

func TestFatalPanics(t *testing.T) {
	l := New()
	l.SetStderr(&bytes.Buffer{})

	defer func() {
		if recover() == nil {
			t.Fatal("Fatal did not panic")
		}
	}()
	l.Fatal("boom")
}
