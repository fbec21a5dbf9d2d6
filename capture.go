package rangehighlight

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// Screenshotter writes labeled PNG captures of a frame with its range
// highlights. Queue from Update, Flush at the end of Draw.
type Screenshotter struct {
	// Dir receives the PNG files. Created on first flush.
	Dir string

	queue []string
	log   logrus.FieldLogger
	now   func() time.Time
}

// NewScreenshotter creates a Screenshotter writing to dir ("screenshots"
// when empty). A nil log uses the logrus standard logger.
func NewScreenshotter(dir string, log logrus.FieldLogger) *Screenshotter {
	if dir == "" {
		dir = "screenshots"
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Screenshotter{Dir: dir, log: log, now: time.Now}
}

// Queue schedules a capture of the next flushed frame.
func (s *Screenshotter) Queue(label string) {
	s.queue = append(s.queue, label)
}

// Pending returns the number of queued captures.
func (s *Screenshotter) Pending() int {
	return len(s.queue)
}

// Flush captures screen once for every queued label and returns the paths
// written. Failures are logged and drop the queue.
func (s *Screenshotter) Flush(screen *ebiten.Image) []string {
	if len(s.queue) == 0 {
		return nil
	}
	defer func() { s.queue = s.queue[:0] }()

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		s.log.WithError(err).WithField("dir", s.Dir).Error("screenshot dir")
		return nil
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())

	stamp := s.now().Format("20060102_150405")
	var paths []string
	for _, label := range s.queue {
		path := filepath.Join(s.Dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			s.log.WithError(err).Error("screenshot")
			continue
		}
		s.log.WithField("path", path).Info("screenshot saved")
		paths = append(paths, path)
	}
	return paths
}

// unpremultiply converts ebiten's premultiplied RGBA bytes to straight alpha.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		copy(img.Pix[i:i+4], []byte{r, g, b, a})
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.'; everything else becomes
// '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
