package core

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

type fakeScreen struct {
	finis int
}

func (s *fakeScreen) Fini() { s.finis++ }

func TestReportCrashRestoresScreenOnce(t *testing.T) {
	screen := &fakeScreen{}
	SetCrashScreen(screen)
	defer SetCrashScreen(nil)

	var buf bytes.Buffer
	reportCrash(&buf, "boom", []byte("stack"))
	reportCrash(&buf, "again", []byte("stack"))

	if screen.finis != 1 {
		t.Errorf("Expected Fini once, got %d", screen.finis)
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: boom") {
		t.Errorf("Expected crash banner, got %q", buf.String())
	}
}

func TestGoRecoversPanic(t *testing.T) {
	exited := make(chan int, 1)
	crashExit = func(code int) { exited <- code }
	defer func() { crashExit = osExit }()

	Go(func() { panic("worker failed") })

	select {
	case code := <-exited:
		if code != 1 {
			t.Errorf("Expected exit code 1, got %d", code)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected crash handler to run")
	}
}
