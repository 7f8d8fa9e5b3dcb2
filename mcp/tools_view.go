package mcpserver

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerViewTools() {
	s.mcp.AddTool(mcp.NewTool("get_viewport",
		mcp.WithDescription("Report the current viewport offset, zoom, and page count"),
	), s.handleGetViewport)

	s.mcp.AddTool(mcp.NewTool("scroll",
		mcp.WithDescription("Scroll the viewport vertically by a screen-pixel delta, clamped to the page stack"),
		mcp.WithNumber("dy", mcp.Description("Positive scrolls toward the top, negative toward the bottom"), mcp.Required()),
	), s.handleScroll)

	s.mcp.AddTool(mcp.NewTool("zoom",
		mcp.WithDescription("Apply one zoom step centered on the viewport"),
		mcp.WithString("direction", mcp.Description("Either 'in' or 'out'"), mcp.Required()),
	), s.handleZoom)

	s.mcp.AddTool(mcp.NewTool("render_page",
		mcp.WithDescription("Render one page to a PNG and return it as a data URL"),
		mcp.WithNumber("page", mcp.Description("1-based page number"), mcp.Required()),
	), s.handleRenderPage)
}

func (s *Server) handleGetViewport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.session.Viewport()
	return jsonResult(map[string]any{
		"x":     v.X,
		"y":     v.Y,
		"scale": v.Scale,
		"pages": s.session.PageCount(),
	})
}

func (s *Server) handleScroll(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	s.mu.Lock()
	defer s.mu.Unlock()

	dy, _ := args["dy"].(float64)
	s.session.Scroll(dy)

	v := s.session.Viewport()
	return textResult(fmt.Sprintf("Viewport at y=%g, scale=%g", v.Y, v.Scale)), nil
}

func (s *Server) handleZoom(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	dir, err := requireString(args, "direction")
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch dir {
	case "in":
		s.session.ZoomIn()
	case "out":
		s.session.ZoomOut()
	default:
		return nil, fmt.Errorf("direction must be 'in' or 'out', got %q", dir)
	}

	v := s.session.Viewport()
	return textResult(fmt.Sprintf("Zoom is now %.3g", v.Scale)), nil
}

func (s *Server) handleRenderPage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	s.mu.Lock()
	defer s.mu.Unlock()

	page, _ := args["page"].(float64)
	data, err := s.renderer.PagePNG(s.session, int(page))
	if err != nil {
		return nil, err
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode rendered page: %w", err)
	}

	return jsonResult(map[string]any{
		"page":    int(page),
		"width":   cfg.Width,
		"height":  cfg.Height,
		"dataUrl": "data:image/png;base64," + base64.StdEncoding.EncodeToString(data),
	})
}
