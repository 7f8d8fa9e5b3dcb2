package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/easelkit/easel"
)

func (s *Server) registerCanvasTools() {
	s.mcp.AddTool(mcp.NewTool("add_sticky",
		mcp.WithDescription("Add a sticky note to the canvas at world coordinates"),
		mcp.WithNumber("x", mcp.Description("Left edge in world units"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("Top edge in world units"), mcp.Required()),
		mcp.WithNumber("width", mcp.Description("Width in world units"), mcp.Required()),
		mcp.WithNumber("height", mcp.Description("Height in world units"), mcp.Required()),
		mcp.WithString("text", mcp.Description("Note text (optional)")),
		mcp.WithString("color", mcp.Description("Fill color hex (optional, e.g. #fde68a)")),
	), s.handleAddSticky)

	s.mcp.AddTool(mcp.NewTool("add_text",
		mcp.WithDescription("Add a single line of text anchored at its top-left corner"),
		mcp.WithNumber("x", mcp.Description("Anchor X in world units"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("Anchor Y in world units"), mcp.Required()),
		mcp.WithString("text", mcp.Description("Text content"), mcp.Required()),
		mcp.WithNumber("fontSize", mcp.Description("Font size in world units (default 24)")),
		mcp.WithString("color", mcp.Description("Text color hex (optional)")),
	), s.handleAddText)

	s.mcp.AddTool(mcp.NewTool("add_rectangle",
		mcp.WithDescription("Add a rectangle to the canvas"),
		mcp.WithNumber("x", mcp.Description("Left edge in world units"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("Top edge in world units"), mcp.Required()),
		mcp.WithNumber("width", mcp.Description("Width in world units"), mcp.Required()),
		mcp.WithNumber("height", mcp.Description("Height in world units"), mcp.Required()),
		mcp.WithString("color", mcp.Description("Fill color hex (optional)")),
	), s.handleAddRectangle)

	s.mcp.AddTool(mcp.NewTool("add_circle",
		mcp.WithDescription("Add a circle centered at (x, y)"),
		mcp.WithNumber("x", mcp.Description("Center X in world units"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("Center Y in world units"), mcp.Required()),
		mcp.WithNumber("radius", mcp.Description("Radius in world units"), mcp.Required()),
		mcp.WithString("color", mcp.Description("Fill color hex (optional)")),
	), s.handleAddCircle)

	s.mcp.AddTool(mcp.NewTool("add_freehand",
		mcp.WithDescription("Add a freehand stroke. Points are relative to the (x, y) origin."),
		mcp.WithNumber("x", mcp.Description("Stroke origin X in world units"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("Stroke origin Y in world units"), mcp.Required()),
		mcp.WithString("points", mcp.Description("JSON array of [dx, dy] pairs, e.g. [[0,0],[10,5],[20,0]]"), mcp.Required()),
		mcp.WithString("color", mcp.Description("Stroke color hex (optional)")),
	), s.handleAddFreehand)

	s.mcp.AddTool(mcp.NewTool("move_element",
		mcp.WithDescription("Move an element by a delta in world units"),
		mcp.WithString("elementId", mcp.Description("Element ID"), mcp.Required()),
		mcp.WithNumber("dx", mcp.Description("Horizontal delta"), mcp.Required()),
		mcp.WithNumber("dy", mcp.Description("Vertical delta"), mcp.Required()),
	), s.handleMoveElement)

	s.mcp.AddTool(mcp.NewTool("remove_element",
		mcp.WithDescription("Remove an element from the canvas by ID"),
		mcp.WithString("elementId", mcp.Description("Element ID to remove"), mcp.Required()),
	), s.handleRemoveElement)

	s.mcp.AddTool(mcp.NewTool("list_elements",
		mcp.WithDescription("List canvas elements with IDs, kinds, and bounds"),
		mcp.WithNumber("page", mcp.Description("Restrict to elements touching this 1-based page (optional)")),
	), s.handleListElements)

	s.mcp.AddTool(mcp.NewTool("ensure_page",
		mcp.WithDescription("Grow the page stack until the given 1-based page exists"),
		mcp.WithNumber("page", mcp.Description("Page number"), mcp.Required()),
	), s.handleEnsurePage)

	s.mcp.AddTool(mcp.NewTool("list_pages",
		mcp.WithDescription("List pages with their world-space positions"),
	), s.handleListPages)
}

func (s *Server) handleAddSticky(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	s.mu.Lock()
	defer s.mu.Unlock()

	x, _ := args["x"].(float64)
	y, _ := args["y"].(float64)
	w, _ := args["width"].(float64)
	h, _ := args["height"].(float64)
	text, _ := args["text"].(string)

	el := easel.NewSticky(x, y, w, h, text)
	if c, ok := args["color"].(string); ok {
		el.Color = c
	}
	s.session.Add(el)
	return jsonResult(elementSummary(el))
}

func (s *Server) handleAddText(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	text, err := requireString(args, "text")
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	x, _ := args["x"].(float64)
	y, _ := args["y"].(float64)
	size, ok := args["fontSize"].(float64)
	if !ok || size <= 0 {
		size = 24
	}

	el := easel.NewText(x, y, text, size)
	if c, ok := args["color"].(string); ok {
		el.Color = c
	}
	s.session.Add(el)
	return jsonResult(elementSummary(el))
}

func (s *Server) handleAddRectangle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	s.mu.Lock()
	defer s.mu.Unlock()

	x, _ := args["x"].(float64)
	y, _ := args["y"].(float64)
	w, _ := args["width"].(float64)
	h, _ := args["height"].(float64)

	el := easel.NewRectangle(x, y, w, h)
	if c, ok := args["color"].(string); ok {
		el.Color = c
	}
	s.session.Add(el)
	return jsonResult(elementSummary(el))
}

func (s *Server) handleAddCircle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	s.mu.Lock()
	defer s.mu.Unlock()

	x, _ := args["x"].(float64)
	y, _ := args["y"].(float64)
	r, _ := args["radius"].(float64)

	el := easel.NewCircle(x, y, r)
	if c, ok := args["color"].(string); ok {
		el.Color = c
	}
	s.session.Add(el)
	return jsonResult(elementSummary(el))
}

func (s *Server) handleAddFreehand(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	pointsJSON, err := requireString(args, "points")
	if err != nil {
		return nil, err
	}
	points, err := parsePoints(pointsJSON)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	x, _ := args["x"].(float64)
	y, _ := args["y"].(float64)

	el := easel.NewFreehand(x, y, points)
	if c, ok := args["color"].(string); ok {
		el.Color = c
	}
	s.session.Add(el)
	return jsonResult(elementSummary(el))
}

func (s *Server) handleMoveElement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, err := requireString(args, "elementId")
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	dx, _ := args["dx"].(float64)
	dy, _ := args["dy"].(float64)
	if err := s.session.MoveElement(id, dx, dy); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Element %s moved by (%g, %g)", id, dx, dy)), nil
}

func (s *Server) handleRemoveElement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, err := requireString(args, "elementId")
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.Remove(id); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Element %s removed", id)), nil
}

func (s *Server) handleListElements(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	s.mu.Lock()
	defer s.mu.Unlock()

	elements := s.session.Elements()
	summaries := make([]map[string]any, 0, len(elements))

	if page, ok := args["page"].(float64); ok {
		n := int(page)
		if n < 1 || n > s.session.PageCount() {
			return nil, fmt.Errorf("page %d does not exist", n)
		}
		top, bottom := s.session.Layout().Span(n)
		for _, el := range elements {
			b := el.Bounds()
			if b.Y < bottom && b.MaxY() > top {
				summaries = append(summaries, elementSummary(el))
			}
		}
	} else {
		for _, el := range elements {
			summaries = append(summaries, elementSummary(el))
		}
	}

	return jsonResult(map[string]any{
		"elements": summaries,
		"total":    len(summaries),
	})
}

func (s *Server) handleEnsurePage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	s.mu.Lock()
	defer s.mu.Unlock()

	page, _ := args["page"].(float64)
	if err := s.session.EnsurePage(int(page)); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Page stack has %d pages", s.session.PageCount())), nil
}

func (s *Server) handleListPages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	layout := s.session.Layout()
	pages := s.session.Pages()
	summaries := make([]map[string]any, len(pages))
	for i, p := range pages {
		summaries[i] = map[string]any{
			"number": i + 1,
			"id":     p.ID,
			"y":      p.Y,
			"width":  layout.Width,
			"height": layout.Height,
		}
	}
	return jsonResult(map[string]any{
		"pages": summaries,
		"total": len(pages),
	})
}
