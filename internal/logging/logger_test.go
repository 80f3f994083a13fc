package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	l.Info("scanning %s", "public/images")
	l.Error("encode %s: %v", "a.jpg", "boom")
	l.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "2024-05-01 12:00:00 [INFO] [imgopt] scanning public/images\n") {
		t.Errorf("info line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] [imgopt] encode a.jpg: boom") {
		t.Errorf("error line: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug line written while not verbose")
	}
}

func TestLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)
	l.Debug("shown %d", 1)
	if !strings.Contains(buf.String(), "[DEBUG] [imgopt] shown 1") {
		t.Errorf("debug line: %q", buf.String())
	}
}

func TestLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			l.Warn("worker %d", n)
		}(i)
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "\n"); got != 8 {
		t.Errorf("lines: got %d, want 8", got)
	}
}
