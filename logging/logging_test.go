package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level   string
		want    logrus.Level
		wantErr bool
	}{
		{"", logrus.InfoLevel, false},
		{"debug", logrus.DebugLevel, false},
		{"WARN", logrus.WarnLevel, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		l, err := New(Options{Level: tt.level})
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			continue
		}
		if err == nil && l.GetLevel() != tt.want {
			t.Errorf("New(%q) level = %v, want %v", tt.level, l.GetLevel(), tt.want)
		}
	}
}

func TestNewWithoutFile(t *testing.T) {
	l, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := l.Rotate(); err != nil {
		t.Errorf("Rotate() = %v, want nil without a file", err)
	}
	if err := l.Close(); err != nil {
		t.Errorf("Close() = %v, want nil without a file", err)
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rh.log")
	l, err := New(Options{File: path, JSON: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.WithField("tick", 6).Info("range pass")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{`"msg":"range pass"`, `"tick":6`, `"level":"info"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %s", out, want)
		}
	}
}
