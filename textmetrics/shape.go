package textmetrics

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Glyph is one positioned glyph in a shaped line.
type Glyph struct {
	// GID is the glyph index in the font.
	GID uint32

	// Cluster is the rune index in the original text this glyph maps to.
	Cluster int

	// X and Y are the pen position plus the shaping offsets.
	X float64
	Y float64

	// Advance is how far the pen moves after this glyph.
	Advance float64
}

// Line is the result of shaping one line of text.
type Line struct {
	Glyphs []Glyph

	// Width is the total advance of the line.
	Width float64

	// Ascent and Descent are the largest vertical extents over the
	// line's runs, both positive.
	Ascent  float64
	Descent float64
}

// ShapeLine shapes text at the given size and returns positioned
// glyphs together with the line's total advance and vertical extent.
// The text is split into direction runs first, so mixed left-to-right
// and right-to-left content measures correctly.
func (s *Shaper) ShapeLine(text string, size float64) Line {
	if text == "" || size <= 0 {
		return Line{}
	}

	var line Line
	var penX float64

	for _, run := range directionRuns(text) {
		out := s.shapeRun(run.runes, size, run.dir)

		if a := fixedToFloat(out.LineBounds.Ascent); a > line.Ascent {
			line.Ascent = a
		}
		if d := -fixedToFloat(out.LineBounds.Descent); d > line.Descent {
			line.Descent = d
		}

		for _, g := range out.Glyphs {
			adv := fixedToFloat(g.Advance)
			line.Glyphs = append(line.Glyphs, Glyph{
				GID:     uint32(g.GlyphID),
				Cluster: run.start + g.TextIndex(),
				X:       penX + fixedToFloat(g.XOffset),
				Y:       fixedToFloat(g.YOffset),
				Advance: adv,
			})
			penX += adv
		}
	}

	line.Width = penX
	return line
}

// shapeRun shapes one uniform-direction run. A fresh font.Face is
// created per call; faces are not safe for concurrent use, the parsed
// font they wrap is.
func (s *Shaper) shapeRun(runes []rune, size float64, dir di.Direction) shaping.Output {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(s.font),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shaperPool.Put(hb)
	return out
}

// dirRun is a maximal run of text with a uniform bidi direction.
type dirRun struct {
	runes []rune
	start int // rune index of the run in the full text
	dir   di.Direction
}

// directionRuns splits text into runs of uniform direction using the
// Unicode bidi algorithm. Even embedding levels shape left-to-right,
// odd levels right-to-left.
func directionRuns(text string) []dirRun {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	levels := make([]int, len(runes))

	p := bidi.Paragraph{}
	_, _ = p.SetString(text, bidi.DefaultDirection(bidi.Neutral))
	if ordering, err := p.Order(); err == nil {
		// run.Pos() returns rune indices, start and end inclusive.
		for i := 0; i < ordering.NumRuns(); i++ {
			run := ordering.Run(i)
			start, end := run.Pos()
			level := 0
			if run.Direction() == bidi.RightToLeft {
				level = 1
			}
			for j := start; j <= end && j < len(levels); j++ {
				levels[j] = level
			}
		}
	}

	runs := make([]dirRun, 0, 2)
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && levels[i] == levels[start] {
			continue
		}
		runs = append(runs, dirRun{
			runes: runes[start:i],
			start: start,
			dir:   directionFor(levels[start]),
		})
		start = i
	}
	return runs
}

// directionFor maps a bidi embedding level to a shaping direction.
func directionFor(level int) di.Direction {
	if level%2 == 1 {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
// Direction runs already split the cases that matter for measurement,
// so one script per run is enough.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 size to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
