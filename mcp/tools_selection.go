package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/easelkit/easel"
)

func (s *Server) registerSelectionTools() {
	s.mcp.AddTool(mcp.NewTool("lasso_select",
		mcp.WithDescription("Draw a lasso selection from a list of world-space vertices and complete it. The selection resolves to the topmost-listed image it overlaps, if any."),
		mcp.WithString("points", mcp.Description("JSON array of [x, y] world coordinates, e.g. [[100,100],[300,100],[300,300]]"), mcp.Required()),
	), s.handleLassoSelect)

	s.mcp.AddTool(mcp.NewTool("get_selection",
		mcp.WithDescription("Report the current selection state, hull, and mask target"),
	), s.handleGetSelection)

	s.mcp.AddTool(mcp.NewTool("drag_selection",
		mcp.WithDescription("Drag a completed selection and its captured elements. The grab point must be inside the hull."),
		mcp.WithNumber("fromX", mcp.Description("Grab point X in world units"), mcp.Required()),
		mcp.WithNumber("fromY", mcp.Description("Grab point Y in world units"), mcp.Required()),
		mcp.WithNumber("toX", mcp.Description("Release point X in world units"), mcp.Required()),
		mcp.WithNumber("toY", mcp.Description("Release point Y in world units"), mcp.Required()),
	), s.handleDragSelection)

	s.mcp.AddTool(mcp.NewTool("cancel_selection",
		mcp.WithDescription("Discard the current selection and its mask context"),
	), s.handleCancelSelection)
}

// selectionSummary reports the lasso state under the lock.
func (s *Server) selectionSummary() map[string]any {
	out := map[string]any{
		"state": s.session.SelectionState().String(),
	}
	hull := s.session.SelectionPath()
	if n := hull.PointCount(); n > 0 {
		b := hull.BoundingBox()
		out["vertices"] = n
		out["bounds"] = map[string]float64{
			"x": b.X, "y": b.Y, "width": b.Width, "height": b.Height,
		}
	}
	if ctx := s.session.MaskContext(); ctx != nil {
		out["targetImageId"] = ctx.TargetImageID
	}
	return out
}

func (s *Server) handleLassoSelect(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	pointsJSON, err := requireString(args, "points")
	if err != nil {
		return nil, err
	}
	points, err := parsePoints(pointsJSON)
	if err != nil {
		return nil, err
	}
	if points.PointCount() < 3 {
		return nil, fmt.Errorf("a lasso needs at least 3 vertices, got %d", points.PointCount())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The session speaks screen coordinates; route the world-space
	// vertices back through the viewport.
	for i := 0; i+1 < len(points); i += 2 {
		p := s.session.WorldToScreen(easel.WorldPoint{X: points[i], Y: points[i+1]})
		if i == 0 {
			s.session.BeginSelection(p)
		} else {
			s.session.ExtendSelection(p)
		}
	}
	s.session.CompleteSelection()

	return jsonResult(s.selectionSummary())
}

func (s *Server) handleGetSelection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return jsonResult(s.selectionSummary())
}

func (s *Server) handleDragSelection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	s.mu.Lock()
	defer s.mu.Unlock()

	fromX, _ := args["fromX"].(float64)
	fromY, _ := args["fromY"].(float64)
	toX, _ := args["toX"].(float64)
	toY, _ := args["toY"].(float64)

	from := s.session.WorldToScreen(easel.WorldPoint{X: fromX, Y: fromY})
	to := s.session.WorldToScreen(easel.WorldPoint{X: toX, Y: toY})

	if !s.session.BeginDrag(from) {
		return nil, fmt.Errorf("no completed selection under (%g, %g)", fromX, fromY)
	}
	s.session.DragTo(to)
	s.session.EndDrag()

	return jsonResult(s.selectionSummary())
}

func (s *Server) handleCancelSelection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.CancelSelection()
	return textResult("Selection cleared"), nil
}
