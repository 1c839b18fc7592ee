package draw

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
)

// Render draws a placeholder icon at the given pixel size and returns it
// encoded as PNG: a blue rounded tile with a white dot, legible at 16px.
func Render(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}
	s := float64(size)
	dc := gg.NewContext(size, size)

	dc.DrawRoundedRectangle(0, 0, s, s, s/8)
	dc.SetRGB(0.15, 0.39, 0.92)
	dc.Fill()

	dc.DrawCircle(s/2, s/2, s/4)
	dc.SetRGBA(1, 1, 1, 0.9)
	dc.Fill()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}
