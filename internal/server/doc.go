// Package server implements an MCP (Model Context Protocol) server that
// exposes seam carving as a set of tools.
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
// Session:
//   - seam_load: Load an image and start a new session
//   - seam_info: Current size, edit count and pending seam
//
// Editing:
//   - seam_highlight: Find and paint the bluest or lowest-energy seam
//   - seam_delete: Remove the highlighted seam
//   - seam_undo: Revert the last highlight or delete
//
// Inspection:
//   - seam_preview: Current image as base64 PNG
//   - seam_energy_map: Energy heat map, optionally blended over the image
//   - seam_sample_pixel: Colour, brightness and energy of one pixel
//
// Output:
//   - seam_export: Write the current image to disk
//
// # Sessions
//
// One image is edited at a time. seam_highlight leaves its seam pending and
// seam_delete removes exactly that seam, so a client performs the two-step
// highlight then delete cycle without ever naming pixels. Highlighting again
// while a seam is pending reverts the pending one first. Tool calls are
// serialised, so the session never sees concurrent edits.
//
// Source images are cached by path; reloading a file starts from its
// original pixels without re-reading it from disk.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// Logs go to stderr; stdout carries only protocol messages.
//
// # Usage
//
//	srv := server.New(server.WithConfig(cfg))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
