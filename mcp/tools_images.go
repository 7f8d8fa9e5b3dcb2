package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/easelkit/easel"
)

func (s *Server) registerImageTools() {
	s.mcp.AddTool(mcp.NewTool("register_asset",
		mcp.WithDescription("Register an image asset from a base64 data URL so it can be placed on pages"),
		mcp.WithString("dataUrl", mcp.Description("Image as a data URL, e.g. data:image/png;base64,..."), mcp.Required()),
		mcp.WithString("sourcePrompt", mcp.Description("Prompt that produced the image (optional)")),
	), s.handleRegisterAsset)

	s.mcp.AddTool(mcp.NewTool("place_image",
		mcp.WithDescription("Place a registered asset on a page as a centered, page-sized image element"),
		mcp.WithNumber("page", mcp.Description("1-based page number; missing pages are created"), mcp.Required()),
		mcp.WithString("assetId", mcp.Description("Registered asset ID"), mcp.Required()),
		mcp.WithBoolean("replace", mcp.Description("Remove elements overlapping the page before placing (default false)")),
	), s.handlePlaceImage)

	s.mcp.AddTool(mcp.NewTool("place_generated_image",
		mcp.WithDescription("Register an image URL as an asset and place it in one step, as a generation service callback would"),
		mcp.WithString("imageUrl", mcp.Description("Image URL or data URL"), mcp.Required()),
		mcp.WithNumber("page", mcp.Description("1-based page number"), mcp.Required()),
		mcp.WithBoolean("replace", mcp.Description("Remove elements overlapping the page before placing (default false)")),
	), s.handlePlaceGeneratedImage)

	s.mcp.AddTool(mcp.NewTool("build_mask_submission",
		mcp.WithDescription("Rasterize the completed selection into an inpainting mask for its target image. The mask PNG is white inside the lasso and transparent elsewhere, at the asset's native resolution."),
		mcp.WithString("editPrompt", mcp.Description("Instruction for the region edit"), mcp.Required()),
	), s.handleBuildMaskSubmission)
}

func (s *Server) handleRegisterAsset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	dataURL, err := requireString(args, "dataUrl")
	if err != nil {
		return nil, err
	}
	prompt, _ := args["sourcePrompt"].(string)

	a, err := easel.AssetFromDataURL(dataURL, prompt)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a = s.session.RegisterAsset(a)

	return jsonResult(map[string]any{
		"assetId": a.ID,
		"format":  a.Format,
		"width":   a.Width,
		"height":  a.Height,
	})
}

func (s *Server) handlePlaceImage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	assetID, err := requireString(args, "assetId")
	if err != nil {
		return nil, err
	}
	page, _ := args["page"].(float64)
	replace, _ := args["replace"].(bool)

	s.mu.Lock()
	defer s.mu.Unlock()

	img, err := s.session.PlaceImage(int(page), assetID, replace)
	if err != nil {
		return nil, err
	}
	return jsonResult(elementSummary(img))
}

func (s *Server) handlePlaceGeneratedImage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	imageURL, err := requireString(args, "imageUrl")
	if err != nil {
		return nil, err
	}
	page, _ := args["page"].(float64)
	replace, _ := args["replace"].(bool)

	s.mu.Lock()
	defer s.mu.Unlock()

	img, err := s.session.HandlePlacement(easel.PlacementRequest{
		ImageURL:   imageURL,
		PageNumber: int(page),
		Replace:    replace,
	})
	if err != nil {
		return nil, err
	}
	return jsonResult(elementSummary(img))
}

func (s *Server) handleBuildMaskSubmission(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	prompt, err := requireString(args, "editPrompt")
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sub, err := s.session.BuildMaskSubmission(prompt)
	if err != nil {
		return nil, fmt.Errorf("build mask submission: %w", err)
	}
	return jsonResult(sub)
}
