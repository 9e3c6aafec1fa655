// Package server implements the MCP (Model Context Protocol) server for the colors library.
//
// This package provides a JSON-RPC 2.0 server that exposes color conversion,
// blending and generation through the MCP protocol, so MCP clients can work
// with exact color values instead of guessing them.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Conversion:
//   - color_convert: Project a color into hex, RGB and HSV
//   - color_equal: Compare two colors by their RGB channels
//
// Blending:
//   - color_blend: multiply, add, subtract, divide, screen, difference, overlay
//   - color_invert: Difference from white
//
// Generation:
//   - color_random: Uniformly random HSV colors
//   - color_wheel_create: Start a wheel session
//   - color_wheel_next: Take colors from a wheel session
//   - color_wheel_delete: End a wheel session
//
// Every color argument is an object with exactly one of:
//
//	{"rgb": [150, 0, 100]}
//	{"hsv": [0.5, 1, 0.8]}
//	{"hex": "bada55"}
//
// # Wheel Sessions
//
// Wheels are kept in a WheelRegistry for the lifetime of the process or until
// deleted. The number of live wheels is capped by the max_wheels setting.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(conf)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
