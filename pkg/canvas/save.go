package canvas

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// ErrUnsupportedFormat is returned by Save for file extensions it cannot encode
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Supported output extensions, longest first so compound ones match before ".ppm"
var formats = []struct {
	ext    string
	encode func(c *Canvas, w io.Writer) error
}{
	{".ppm.zst", writeZstdPPM},
	{".ppm.sz", writeSnappyPPM},
	{".ppm", func(c *Canvas, w io.Writer) error { return c.WritePPM(w) }},
	{".png", func(c *Canvas, w io.Writer) error { return c.WritePNG(w) }},
}

// WritePNG encodes the canvas as an 8-bit PNG
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}

func writeSnappyPPM(c *Canvas, w io.Writer) error {
	stream := snappy.NewBufferedWriter(w)
	if err := c.WritePPM(stream); err != nil {
		stream.Close()
		return err
	}
	return stream.Close()
}

func writeZstdPPM(c *Canvas, w io.Writer) error {
	stream, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := c.WritePPM(stream); err != nil {
		stream.Close()
		return err
	}
	return stream.Close()
}

// Encode writes the canvas to w in the format implied by filename's extension
func (c *Canvas) Encode(w io.Writer, filename string) error {
	lower := strings.ToLower(filename)
	for _, f := range formats {
		if strings.HasSuffix(lower, f.ext) {
			return f.encode(c, w)
		}
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
}

// Save writes the canvas to path. The format is chosen by extension:
// .png, .ppm, .ppm.sz (snappy framed) or .ppm.zst (zstd).
func (c *Canvas) Save(path string) (err error) {
	if !IsSupported(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	if err := c.Encode(file, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// IsSupported reports whether Save can encode a file with this name
func IsSupported(filename string) bool {
	lower := strings.ToLower(filename)
	for _, f := range formats {
		if strings.HasSuffix(lower, f.ext) {
			return true
		}
	}
	return false
}
