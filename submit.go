package easel

// MaskSubmission is the payload handed to the external generation service
// for one inpainting request: the target asset, the mask as a base64 PNG
// (white marks the region to edit), and the user's edit prompt.
type MaskSubmission struct {
	TargetImageID string `json:"targetImageId"`
	MaskPNG       string `json:"maskPng"`
	EditPrompt    string `json:"editPrompt"`
}

// PlacementRequest is the inbound instruction to place a generated image
// on a page, typically built from a generation service response.
type PlacementRequest struct {
	ImageURL   string `json:"imageUrl"`
	PageNumber int    `json:"pageNumber"`
	Replace    bool   `json:"replace"`
}
