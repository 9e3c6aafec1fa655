package server

import "github.com/ironsheep/colors"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorSchema describes a color argument given as rgb, hsv or hex.
func colorSchema(description string) map[string]interface{} {
	triple := func(desc string) map[string]interface{} {
		return map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "number"},
			"minItems":    3,
			"maxItems":    3,
			"description": desc,
		}
	}
	return map[string]interface{}{
		"type":        "object",
		"description": description + ". Give exactly one of rgb, hsv or hex.",
		"properties": map[string]interface{}{
			"rgb": triple("Red, green, blue in [0, 255]"),
			"hsv": triple("Hue (wraps at 1), saturation and value in [0, 1]"),
			"hex": map[string]interface{}{
				"type":        "string",
				"description": "Six hex digits without '#', e.g. bada55",
			},
		},
	}
}

func blendModeNames() []string {
	modes := colors.BlendModes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return names
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversion
		{
			Name:        "color_convert",
			Description: "Convert a color to hex, RGB and HSV.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("Color to convert"),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_equal",
			Description: "Check whether two colors have identical RGB channels, whatever representation they are given in.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"a": colorSchema("First color"),
					"b": colorSchema("Second color"),
				},
				"required": []string{"a", "b"},
			},
		},

		// Blending
		{
			Name:        "color_blend",
			Description: "Combine two colors channel by channel in RGB space and return the result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"operation": map[string]interface{}{
						"type":        "string",
						"enum":        blendModeNames(),
						"description": "Blend operator to apply",
					},
					"a": colorSchema("Base color"),
					"b": colorSchema("Blend color"),
				},
				"required": []string{"operation", "a", "b"},
			},
		},
		{
			Name:        "color_invert",
			Description: "Invert a color (difference from white).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("Color to invert"),
				},
				"required": []string{"color"},
			},
		},

		// Generation
		{
			Name:        "color_random",
			Description: "Generate uniformly random colors (hue, saturation and value each in [0, 1)).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to generate (default 1, max 256)",
						"default":     1,
					},
				},
			},
		},
		{
			Name:        "color_wheel_create",
			Description: "Start a color wheel that yields distinct, evenly spread hues. Returns a wheel_id for color_wheel_next.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"start": map[string]interface{}{
						"type":        "number",
						"description": "Starting hue phase, >= 0; values of 1 or more wrap (default from server config)",
					},
				},
			},
		},
		{
			Name:        "color_wheel_next",
			Description: "Take the next colors from a color wheel. Each hue is 0.1 to 0.2 further around the wheel than the last.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"wheel_id": map[string]interface{}{
						"type":        "string",
						"description": "ID returned by color_wheel_create",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to take (default 1, max 256)",
						"default":     1,
					},
				},
				"required": []string{"wheel_id"},
			},
		},
		{
			Name:        "color_wheel_delete",
			Description: "Discard a color wheel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"wheel_id": map[string]interface{}{
						"type":        "string",
						"description": "ID returned by color_wheel_create",
					},
				},
				"required": []string{"wheel_id"},
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
