// Command easel-mcp serves a canvas session over the Model Context
// Protocol on stdin/stdout.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/easelkit/easel"
	mcpserver "github.com/easelkit/easel/mcp"
	"github.com/easelkit/easel/snapshot"
	"github.com/easelkit/easel/textmetrics"
)

func main() {
	var (
		fontPath = flag.String("font", "", "TTF font for text measurement (default: embedded Go Regular)")
		scale    = flag.Float64("scale", 1, "snapshot resolution as a fraction of world units")
		verbose  = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		// Stdout carries the MCP transport; logs must stay on stderr.
		easel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	fontData := goregular.TTF
	if *fontPath != "" {
		data, err := os.ReadFile(*fontPath)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
		fontData = data
	}

	shaper, err := textmetrics.NewShaper(fontData)
	if err != nil {
		log.Fatalf("Failed to parse font: %v", err)
	}

	session := easel.NewSession(easel.WithTextMeasurer(shaper))
	renderer := snapshot.NewRenderer(
		snapshot.WithTextShaper(shaper),
		snapshot.WithScale(*scale),
	)

	srv := mcpserver.New(mcpserver.Deps{Session: session, Renderer: renderer})
	if err := srv.ServeStdio(); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
