package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/colors"
	"github.com/ironsheep/colors/internal/config"
)

// maxBatch caps the count argument of tools that return several colors.
const maxBatch = 256

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert", "color_blend").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Builds colors from the color arguments
//  4. Calls the matching colors function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Conversion
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_equal":
		return s.handleColorEqual(args)

	// Blending
	case "color_blend":
		return s.handleColorBlend(args)
	case "color_invert":
		return s.handleColorInvert(args)

	// Generation
	case "color_random":
		return s.handleColorRandom(args)
	case "color_wheel_create":
		return s.handleColorWheelCreate(args)
	case "color_wheel_next":
		return s.handleColorWheelNext(args)
	case "color_wheel_delete":
		return s.handleColorWheelDelete(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Color Arguments and Results ===

// colorArg is a color given as exactly one of rgb, hsv or hex.
type colorArg struct {
	RGB *[3]float64 `json:"rgb,omitempty"`
	HSV *[3]float64 `json:"hsv,omitempty"`
	Hex *string     `json:"hex,omitempty"`
}

// toColor validates the argument and builds the color it describes.
func (a *colorArg) toColor(name string) (colors.Color, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: color is required", name)
	}

	set := 0
	for _, ok := range []bool{a.RGB != nil, a.HSV != nil, a.Hex != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%s: exactly one of rgb, hsv or hex is required", name)
	}

	var (
		c   colors.Color
		err error
	)
	switch {
	case a.RGB != nil:
		c, err = colors.NewRGB(a.RGB[0], a.RGB[1], a.RGB[2])
	case a.HSV != nil:
		c, err = colors.NewHSV(a.HSV[0], a.HSV[1], a.HSV[2])
	default:
		c, err = colors.NewHex(*a.Hex)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// RGBResult holds RGB channels in [0, 255].
type RGBResult struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// HSVResult holds HSV channels; saturation and value are in [0, 1].
type HSVResult struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
}

// ColorResult contains a color value in every representation.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Six lowercase digits, no '#'
	RGB  RGBResult `json:"rgb"`  // RGB channels
	HSV  HSVResult `json:"hsv"`  // HSV channels
	Repr string    `json:"repr"` // Structured form of the source color
}

// describe projects c into every representation.
func describe(c colors.Color) ColorResult {
	rgb, hsv := c.RGB(), c.HSV()
	return ColorResult{
		Hex:  c.Hex().String(),
		RGB:  RGBResult{Red: rgb.Red(), Green: rgb.Green(), Blue: rgb.Blue()},
		HSV:  HSVResult{Hue: hsv.Hue(), Saturation: hsv.Saturation(), Value: hsv.Value()},
		Repr: fmt.Sprintf("%#v", c),
	}
}

func describeAll(cs []colors.HSVColor) []ColorResult {
	out := make([]ColorResult, len(cs))
	for i, c := range cs {
		out[i] = describe(c)
	}
	return out
}

// batchCount applies the default of 1 and rejects counts above maxBatch.
func batchCount(count int) (int, error) {
	if count == 0 {
		return 1, nil
	}
	if count < 0 || count > maxBatch {
		return 0, fmt.Errorf("count %d outside [1, %d]", count, maxBatch)
	}
	return count, nil
}

// === Conversion Handlers ===

type colorConvertArgs struct {
	Color *colorArg `json:"color"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.Color.toColor("color")
	if err != nil {
		return nil, err
	}
	return describe(c), nil
}

type colorPairArgs struct {
	A *colorArg `json:"a"`
	B *colorArg `json:"b"`
}

func (a *colorPairArgs) pair() (colors.Color, colors.Color, error) {
	ca, err := a.A.toColor("a")
	if err != nil {
		return nil, nil, err
	}
	cb, err := a.B.toColor("b")
	if err != nil {
		return nil, nil, err
	}
	return ca, cb, nil
}

func (s *Server) handleColorEqual(args json.RawMessage) (interface{}, error) {
	var a colorPairArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	ca, cb, err := a.pair()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"equal": colors.Equal(ca, cb)}, nil
}

// === Blend Handlers ===

type colorBlendArgs struct {
	Operation string `json:"operation"`
	colorPairArgs
}

func (s *Server) handleColorBlend(args json.RawMessage) (interface{}, error) {
	var a colorBlendArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	mode, err := colors.ParseBlendMode(a.Operation)
	if err != nil {
		return nil, err
	}
	ca, cb, err := a.pair()
	if err != nil {
		return nil, err
	}
	result, err := colors.Blend(mode, ca, cb)
	if err != nil {
		return nil, err
	}
	return describe(result), nil
}

func (s *Server) handleColorInvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.Color.toColor("color")
	if err != nil {
		return nil, err
	}
	return describe(colors.Invert(c)), nil
}

// === Generation Handlers ===

type colorCountArgs struct {
	Count int `json:"count"`
}

func (s *Server) handleColorRandom(args json.RawMessage) (interface{}, error) {
	var a colorCountArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	count, err := batchCount(a.Count)
	if err != nil {
		return nil, err
	}

	out := make([]colors.HSVColor, count)
	for i := range out {
		out[i] = s.randomColor()
	}
	return map[string]interface{}{"colors": describeAll(out)}, nil
}

type colorWheelCreateArgs struct {
	Start *float64 `json:"start,omitempty"`
}

func (s *Server) handleColorWheelCreate(args json.RawMessage) (interface{}, error) {
	var a colorWheelCreateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	start := s.conf.WheelStart
	if a.Start != nil {
		start = *a.Start
	}
	if err := config.CheckWheelStart(start); err != nil {
		return nil, err
	}
	id, err := s.wheels.Create(start)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"wheel_id": id}, nil
}

type colorWheelNextArgs struct {
	WheelID string `json:"wheel_id"`
	Count   int    `json:"count"`
}

func (s *Server) handleColorWheelNext(args json.RawMessage) (interface{}, error) {
	var a colorWheelNextArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	count, err := batchCount(a.Count)
	if err != nil {
		return nil, err
	}
	out, err := s.wheels.Next(a.WheelID, count)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"colors": describeAll(out)}, nil
}

type colorWheelDeleteArgs struct {
	WheelID string `json:"wheel_id"`
}

func (s *Server) handleColorWheelDelete(args json.RawMessage) (interface{}, error) {
	var a colorWheelDeleteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return map[string]interface{}{"deleted": s.wheels.Delete(a.WheelID)}, nil
}
