package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func noArgs() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func scaleProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": "Optional scale factor for the returned PNG (e.g., 4.0 to magnify small images). Defaults to the configured preview scale",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Session
		{
			Name:        "seam_load",
			Description: "Load an image file and start a new editing session on it. Any previous session, including its undo history, is discarded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "seam_info",
			Description: "Report the current width and height, number of recorded edits, and whether a highlighted seam is waiting to be deleted.",
			InputSchema: noArgs(),
		},

		// Editing
		{
			Name:        "seam_highlight",
			Description: "Find a vertical seam and paint it (blue for the bluest seam, red for the lowest-energy seam). Returns the seam's column in every row and a preview. A seam that is still highlighted from a previous call is reverted first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"blue", "energy"},
						"description": "blue: maximise total blue channel; energy: minimise total pixel energy",
					},
					"scale": scaleProperty(),
				},
				"required": []string{"mode"},
			},
		},
		{
			Name:        "seam_delete",
			Description: "Remove the highlighted seam, making the image one pixel narrower.",
			InputSchema: noArgs(),
		},
		{
			Name:        "seam_undo",
			Description: "Revert the most recent edit: un-highlight a pending seam, or reinsert the last deleted seam with its original colours.",
			InputSchema: noArgs(),
		},

		// Inspection
		{
			Name:        "seam_preview",
			Description: "Render the current image as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"scale": scaleProperty(),
				},
			},
		},
		{
			Name:        "seam_energy_map",
			Description: "Render the pixel energies of the current image as a heat map (dark blue = low, yellow = high).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"scale": scaleProperty(),
					"overlay": map[string]interface{}{
						"type":        "number",
						"description": "Optional opacity between 0 and 1 to blend the heat map over the image. Default 0 (heat map only)",
						"default":     0,
					},
				},
			},
		},
		{
			Name:        "seam_sample_pixel",
			Description: "Get the colour, brightness and energy of a pixel in the current image. Coordinates refer to the image after any deletions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"x", "y"},
			},
		},

		// Output
		{
			Name:        "seam_export",
			Description: "Write the current image to a file. The format is chosen from the extension (png, jpg, gif, tif, bmp).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the output file",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
