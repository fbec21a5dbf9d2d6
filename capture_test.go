package rangehighlight

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"farm", "farm"},
		{"show-all", "show-all"},
		{"tick.06", "tick.06"},
		{"held sprinkler", "held_sprinkler"},
		{"path/to/thing", "path_to_thing"},
		{"50%!", "50__"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{
		128, 0, 64, 128, // half-transparent
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // clear
	}, 3, 1)
	tests := []struct {
		x    int
		want color.NRGBA
	}{
		{0, color.NRGBA{255, 0, 127, 128}},
		{1, color.NRGBA{10, 20, 30, 255}},
		{2, color.NRGBA{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, 0); got != tt.want {
			t.Errorf("pixel %d = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestScreenshotterQueue(t *testing.T) {
	s := NewScreenshotter("", nil)
	if s.Dir != "screenshots" {
		t.Errorf("Dir = %q, want screenshots", s.Dir)
	}
	// An empty queue never touches the screen.
	if paths := s.Flush(nil); paths != nil {
		t.Errorf("Flush with nothing queued = %v, want nil", paths)
	}
	s.Queue("a")
	s.Queue("b")
	if s.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", s.Pending())
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.png")
	if err := writePNG(path, unpremultiply(make([]byte, 16), 2, 2)); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("stat %s: %v", path, err)
	}
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "x.png"), unpremultiply(nil, 0, 0)); err == nil {
		t.Error("writePNG into a missing directory succeeded")
	}
}

func TestScreenshotterLogsDirFailure(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewScreenshotter(filepath.Join(file, "shots"), logger)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC) }
	s.Queue("x")
	if paths := s.Flush(nil); paths != nil {
		t.Errorf("Flush = %v, want nil", paths)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after a failed flush, want 0", s.Pending())
	}
	if e := hook.LastEntry(); e == nil || e.Message != "screenshot dir" {
		t.Errorf("last log entry = %v, want screenshot dir error", e)
	}
}
