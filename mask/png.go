package mask

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Image renders the mask as an RGBA image: fully transparent where the
// mask is 0 and white elsewhere, with alpha following the mask value.
// White marks the region open for editing; transparent pixels are
// preserved untouched.
func (m *Mask) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	for y := 0; y < m.height; y++ {
		row := m.data[y*m.width : (y+1)*m.width]
		for x, a := range row {
			if a != 0 {
				img.SetRGBA(x, y, color.RGBA{R: a, G: a, B: a, A: a})
			}
		}
	}
	return img
}

// EncodePNG writes the mask as PNG to the given writer.
// This is useful for streaming, network output, or custom storage.
func (m *Mask) EncodePNG(w io.Writer) error {
	return png.Encode(w, m.Image())
}

// Base64 returns the mask as a base64-encoded PNG, the payload format
// inpainting requests carry.
func (m *Mask) Base64() (string, error) {
	var buf bytes.Buffer
	if err := m.EncodePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DataURL returns the mask as a data: URL with an image/png media type.
func (m *Mask) DataURL() (string, error) {
	b64, err := m.Base64()
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + b64, nil
}
