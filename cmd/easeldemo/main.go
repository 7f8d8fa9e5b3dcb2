// Command easeldemo builds a small canvas, lassoes a region of a
// generated image, and writes the page snapshot and the inpainting mask
// as PNG files.
package main

import (
	"bytes"
	"encoding/base64"
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/easelkit/easel"
	"github.com/easelkit/easel/geom"
	"github.com/easelkit/easel/snapshot"
	"github.com/easelkit/easel/textmetrics"
)

func main() {
	var (
		output   = flag.String("output", "page.png", "snapshot output file")
		maskFile = flag.String("mask", "mask.png", "mask output file")
		scale    = flag.Float64("scale", 1, "snapshot scale")
	)
	flag.Parse()

	shaper, err := textmetrics.NewShaper(goregular.TTF)
	if err != nil {
		log.Fatalf("Failed to parse font: %v", err)
	}

	s := easel.NewSession(
		easel.WithViewportSize(1280, 900),
		easel.WithTextMeasurer(shaper),
	)

	// A mood-board page: headline, notes, a few shapes.
	s.Add(easel.NewText(80, 60, "Mood board", 48))
	s.Add(easel.NewSticky(80, 160, 260, 180, "sunset palette"))
	s.Add(easel.NewSticky(380, 160, 260, 180, "beach textures"))
	s.Add(easel.NewCircle(800, 260, 90))
	s.Add(easel.NewFreehand(120, 420, geom.Path{0, 0, 60, 30, 140, 10, 220, 50}))

	// Generate and place a gradient as the editable image.
	url, err := gradientDataURL(512)
	if err != nil {
		log.Fatalf("Failed to build gradient: %v", err)
	}
	asset, err := easel.AssetFromDataURL(url, "warm gradient")
	if err != nil {
		log.Fatalf("Failed to decode gradient: %v", err)
	}
	asset = s.RegisterAsset(asset)
	if _, err := s.PlaceImage(1, asset.ID, false); err != nil {
		log.Fatalf("Failed to place image: %v", err)
	}

	// Lasso a patch of the image and build the edit mask.
	hull := []easel.WorldPoint{
		{X: 300, Y: 600}, {X: 700, Y: 620}, {X: 680, Y: 1000}, {X: 320, Y: 960},
	}
	for i, w := range hull {
		p := s.WorldToScreen(w)
		if i == 0 {
			s.BeginSelection(p)
		} else {
			s.ExtendSelection(p)
		}
	}
	if s.CompleteSelection() == nil {
		log.Fatal("Selection resolved to no image target")
	}

	sub, err := s.BuildMaskSubmission("warm up the colors")
	if err != nil {
		log.Fatalf("Failed to build mask: %v", err)
	}
	maskBytes, err := base64.StdEncoding.DecodeString(sub.MaskPNG)
	if err != nil {
		log.Fatalf("Failed to decode mask: %v", err)
	}
	if err := os.WriteFile(*maskFile, maskBytes, 0o644); err != nil {
		log.Fatalf("Failed to save mask: %v", err)
	}

	// Snapshot the page with the selection still visible.
	renderer := snapshot.NewRenderer(
		snapshot.WithTextShaper(shaper),
		snapshot.WithScale(*scale),
	)
	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := renderer.EncodePage(f, s, 1); err != nil {
		log.Fatalf("Failed to render page: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save snapshot: %v", err)
	}

	log.Printf("Snapshot saved to %s (%d elements)\n", *output, len(s.Elements()))
	log.Printf("Mask saved to %s (target %s)\n", *maskFile, sub.TargetImageID)
}

// gradientDataURL builds a warm vertical gradient as a PNG data URL.
func gradientDataURL(size int) (string, error) {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		t := float64(y) / float64(size-1)
		c := color.NRGBA{
			R: uint8(250 - 90*t),
			G: uint8(180 - 120*t),
			B: uint8(90 + 60*t),
			A: 255,
		}
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
