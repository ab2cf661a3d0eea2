package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/labstack/gommon/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Lvl
		ok   bool
	}{
		{"debug", log.DEBUG, true},
		{"INFO", log.INFO, true},
		{"", log.INFO, true},
		{"warning", log.WARN, true},
		{"error", log.ERROR, true},
		{"off", log.OFF, true},
		{"loud", log.INFO, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseLevel(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestConfigureAppliesToNewLoggers(t *testing.T) {
	var buf bytes.Buffer
	Configure(log.WARN, &buf)
	defer Configure(log.INFO, os.Stdout)

	l := New("test")
	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "test") {
		t.Fatalf("output = %q, want warn line with prefix", out)
	}
}
