package canvas

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ppmLineLimit is the longest line a plain PPM file may contain
const ppmLineLimit = 70

// WritePPM writes the canvas as a plain (P3) PPM with values 0..255.
// Pixel rows are wrapped so no line exceeds 70 characters, and the output
// ends with a newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	for y := 0; y < c.Height; y++ {
		lineLen := 0
		for x := 0; x < c.Width; x++ {
			rgba := ToRGBA(c.PixelAt(x, y))
			for _, v := range [3]uint8{rgba.R, rgba.G, rgba.B} {
				token := strconv.Itoa(int(v))
				if lineLen > 0 && lineLen+1+len(token) > ppmLineLimit {
					if err := bw.WriteByte('\n'); err != nil {
						return err
					}
					lineLen = 0
				}
				if lineLen > 0 {
					if err := bw.WriteByte(' '); err != nil {
						return err
					}
					lineLen++
				}
				if _, err := bw.WriteString(token); err != nil {
					return err
				}
				lineLen += len(token)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ToPPM returns the canvas encoded as a plain PPM string
func (c *Canvas) ToPPM() string {
	var sb strings.Builder
	// strings.Builder never fails a write
	_ = c.WritePPM(&sb)
	return sb.String()
}
