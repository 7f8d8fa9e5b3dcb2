// Package textmetrics measures canvas text with real font shaping.
//
// Text and sticky note widths on the canvas come from HarfBuzz shaping
// via go-text/typesetting, so kerning, ligatures, and right-to-left
// runs are reflected in the measured extents. A Shaper wraps one parsed
// font and is safe for concurrent use; measured widths are memoized.
package textmetrics

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"

	"github.com/easelkit/easel/cache"
)

// Metrics holds vertical font metrics scaled to a size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below baseline).
	Descent float64

	// LineGap is the recommended extra gap between lines.
	LineGap float64
}

// LineHeight returns ascent + descent + line gap, the recommended
// distance between consecutive baselines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// widthKey identifies one memoized measurement.
type widthKey struct {
	text string
	size float64
}

// Shaper measures text using one parsed font.
//
// The parsed font.Font is read-only and shared; a lightweight font.Face
// is created per shaping call because faces are not safe for concurrent
// use. HarfbuzzShaper instances carry mutable buffers, so they are
// pooled rather than shared.
type Shaper struct {
	font *font.Font

	shaperPool sync.Pool

	widths  *cache.Cache[widthKey, float64]
	metrics *cache.Cache[float64, Metrics]
}

// NewShaper parses TTF or OTF font data and returns a Shaper for it.
func NewShaper(data []byte) (*Shaper, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}

	return &Shaper{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		widths:  cache.New[widthKey, float64](1024),
		metrics: cache.New[float64, Metrics](64),
	}, nil
}

// MeasureWidth returns the advance width of text at the given size in
// pixels. Empty text and non-positive sizes measure zero. Results are
// cached per text and size.
//
// MeasureWidth satisfies the TextMeasurer interface of the root package.
func (s *Shaper) MeasureWidth(text string, size float64) float64 {
	if text == "" || size <= 0 {
		return 0
	}
	return s.widths.GetOrCreate(widthKey{text: text, size: size}, func() float64 {
		return s.ShapeLine(text, size).Width
	})
}

// Metrics returns the font's vertical metrics at the given size.
func (s *Shaper) Metrics(size float64) Metrics {
	if size <= 0 {
		return Metrics{}
	}
	return s.metrics.GetOrCreate(size, func() Metrics {
		// Line bounds are font-level metrics; any glyph exposes them.
		out := s.shapeRun([]rune{'x'}, size, directionFor(0))
		return Metrics{
			Ascent:  fixedToFloat(out.LineBounds.Ascent),
			Descent: -fixedToFloat(out.LineBounds.Descent),
			LineGap: fixedToFloat(out.LineBounds.Gap),
		}
	})
}
