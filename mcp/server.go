// Package mcpserver exposes a canvas session over the Model Context
// Protocol. Tools cover element editing, the lasso selection lifecycle,
// mask submissions, image placement, and page snapshots, so an agent can
// drive the canvas the same way a pointer would.
package mcpserver

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/easelkit/easel"
	"github.com/easelkit/easel/geom"
	"github.com/easelkit/easel/snapshot"
)

// Server wires an easel session to an MCP server.
type Server struct {
	mcp      *server.MCPServer
	session  *easel.Session
	renderer *snapshot.Renderer

	// mu serializes tool handlers; the session is single-owner state and
	// the stdio transport may dispatch calls concurrently.
	mu sync.Mutex
}

// Deps holds the collaborators passed in by the host process. Nil fields
// get default construction.
type Deps struct {
	Session  *easel.Session
	Renderer *snapshot.Renderer
}

// New creates an MCP server with all canvas tools and resources
// registered.
func New(deps Deps) *Server {
	s := &Server{
		session:  deps.Session,
		renderer: deps.Renderer,
	}
	if s.session == nil {
		s.session = easel.NewSession()
	}
	if s.renderer == nil {
		s.renderer = snapshot.NewRenderer()
	}

	s.mcp = server.NewMCPServer(
		"easel-mcp",
		easel.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerCanvasTools()
	s.registerSelectionTools()
	s.registerImageTools()
	s.registerViewTools()
	s.registerResources()

	return s
}

// ServeStdio runs the MCP server on stdin/stdout until the client
// disconnects.
func (s *Server) ServeStdio() error {
	easel.Logger().Info("mcp server starting", "transport", "stdio")
	return server.ServeStdio(s.mcp)
}

// textResult creates a simple text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}

// requireString fetches a non-empty string argument.
func requireString(args map[string]any, key string) (string, error) {
	v, ok := args[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

// parsePoints parses a JSON array of [x, y] pairs into a flat path.
func parsePoints(data string) (geom.Path, error) {
	var pairs [][]float64
	if err := json.Unmarshal([]byte(data), &pairs); err != nil {
		return nil, fmt.Errorf("parse points JSON: %w", err)
	}
	path := make(geom.Path, 0, len(pairs)*2)
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("point %d: expected [x, y], got %d values", i, len(p))
		}
		path = append(path, p[0], p[1])
	}
	return path, nil
}

// elementSummary flattens an element for tool responses.
func elementSummary(el easel.Element) map[string]any {
	b := el.Bounds()
	out := map[string]any{
		"id":     el.ID(),
		"kind":   string(el.Kind()),
		"x":      b.X,
		"y":      b.Y,
		"width":  b.Width,
		"height": b.Height,
	}
	switch e := el.(type) {
	case *easel.Sticky:
		out["text"] = e.Text
	case *easel.Text:
		out["text"] = e.Content
		out["fontSize"] = e.FontSize
	case *easel.Circle:
		out["radius"] = e.Radius
	case *easel.Image:
		out["assetId"] = e.AssetID
	}
	return out
}
