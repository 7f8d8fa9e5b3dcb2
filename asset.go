package easel

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	// Registered decoders for DecodeDataURL.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Asset describes one generated or imported image: its identity, where the
// bytes live, and the native pixel dimensions masks must match. URL may be
// a remote reference or a data: URL carrying the bytes inline.
type Asset struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	SourcePrompt string `json:"sourcePrompt,omitempty"`
	Format       string `json:"format,omitempty"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

// DecodeDataURL decodes a base64 image data URL ("data:image/png;base64,...")
// into pixels, returning the image and its format name.
func DecodeDataURL(dataURL string) (image.Image, string, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return nil, "", fmt.Errorf("easel: not a data URL")
	}

	// "data:image/png;base64,iVBOR..."
	parts := strings.SplitN(dataURL, ",", 2)
	if len(parts) != 2 || !strings.Contains(parts[0], ";base64") {
		return nil, "", fmt.Errorf("easel: malformed data URL header")
	}

	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", fmt.Errorf("easel: decode base64: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("easel: decode image: %w", err)
	}
	return img, format, nil
}

// AssetFromDataURL builds an asset record from an inline data URL,
// filling the format and native dimensions from the decoded bytes.
// The ID is left empty for the session to assign on registration.
func AssetFromDataURL(dataURL, sourcePrompt string) (Asset, error) {
	img, format, err := DecodeDataURL(dataURL)
	if err != nil {
		return Asset{}, err
	}
	b := img.Bounds()
	return Asset{
		URL:          dataURL,
		SourcePrompt: sourcePrompt,
		Format:       format,
		Width:        b.Dx(),
		Height:       b.Dy(),
	}, nil
}
