// Package server implements the MCP (Model Context Protocol) server that
// exposes easycv transforms as tools.
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
// # Tools
//
// The tool list is generated from the transform registry, so adding a
// transform adds a tool:
//
//   - image_load: Load an image and return its metadata
//   - image_<transform>: One tool per transform (image_blur, image_canny, ...).
//     The input schema is the transform's argument schema plus "path" and an
//     optional "output_path".
//   - image_pipeline: Run a list of {"name", "args"} steps on one image
//
// Results are JSON in a single text content block. Image outputs carry the
// base64 PNG (width, height, image_base64, mime_type) and, when output_path
// is set, the saved file in saved_to. Gradient outputs add "field" with the
// min, max, mean and variance of the raw float values. Measuring transforms
// return "data" and no image.
//
// # Image Caching
//
// Images are cached by path or URL and reused across tool calls. The cache
// persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool errors are returned as JSON-RPC error responses:
//   - -32602: invalid or missing arguments
//   - -32601: unknown method or tool
//   - -32000: any other tool failure
//   - -32700: a request line that is not JSON
//
// The data field holds the Go error string.
//
// # Usage
//
//	srv := server.New(registry, imaging.NewImageCache(), logger, server.Options{})
//	if err := srv.Run(ctx, os.Stdin, os.Stdout); err != nil {
//	    logger.Fatal().Err(err).Msg("server error")
//	}
package server
