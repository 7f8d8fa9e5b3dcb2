package snapshot

import (
	"image"

	"github.com/easelkit/easel"
)

// ImageSource provides decoded pixels for a placed asset.
//
// The renderer never fetches over the network; callers that hold remote
// assets supply their own source. Assets without pixels render as
// placeholders.
type ImageSource interface {
	ImageForAsset(a easel.Asset) (image.Image, error)
}

// DataURLSource decodes pixels from assets whose URL is a data URL.
// It is the default source of a Renderer.
type DataURLSource struct{}

// ImageForAsset implements ImageSource.
func (DataURLSource) ImageForAsset(a easel.Asset) (image.Image, error) {
	img, _, err := easel.DecodeDataURL(a.URL)
	return img, err
}
