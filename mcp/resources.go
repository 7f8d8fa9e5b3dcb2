package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	s.mcp.AddResource(mcp.NewResource(
		"easel://canvas",
		"Canvas Summary",
		mcp.WithMIMEType("application/json"),
	), s.handleCanvasResource)

	s.mcp.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"easel://page/{page}/elements",
			"Elements on a Page",
		),
		s.handlePageElementsResource,
	)
}

func (s *Server) handleCanvasResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.session.Viewport()
	summary := map[string]any{
		"pages":    s.session.PageCount(),
		"elements": len(s.session.Elements()),
		"viewport": map[string]float64{
			"x": v.X, "y": v.Y, "scale": v.Scale,
		},
		"selection": s.session.SelectionState().String(),
	}

	data, _ := json.MarshalIndent(summary, "", "  ")
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "easel://canvas",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handlePageElementsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	page, err := pageFromURI(uri)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if page < 1 || page > s.session.PageCount() {
		return nil, fmt.Errorf("page %d does not exist", page)
	}

	top, bottom := s.session.Layout().Span(page)
	var summaries []map[string]any
	for _, el := range s.session.Elements() {
		b := el.Bounds()
		if b.Y < bottom && b.MaxY() > top {
			summaries = append(summaries, elementSummary(el))
		}
	}

	data, _ := json.MarshalIndent(summaries, "", "  ")
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// pageFromURI extracts the page number from "easel://page/{page}/elements".
func pageFromURI(uri string) (int, error) {
	rest, ok := strings.CutPrefix(uri, "easel://page/")
	if !ok {
		return 0, fmt.Errorf("unexpected resource URI: %s", uri)
	}
	numStr, _, _ := strings.Cut(rest, "/")
	page, err := strconv.Atoi(numStr)
	if err != nil {
		return 0, fmt.Errorf("bad page number in URI %s: %w", uri, err)
	}
	return page, nil
}
