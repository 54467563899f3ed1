package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ironsheep/easycv/internal/errs"
	"github.com/ironsheep/easycv/internal/imaging"
	"github.com/ironsheep/easycv/internal/transforms"
	"github.com/ironsheep/easycv/internal/validators"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_blur").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// TransformResult is the tool result of a transform or pipeline. Image
// fields are present when the output has an image; field and data are
// present for float and measuring outputs.
type TransformResult struct {
	*imaging.ImageResult

	// SavedTo is the absolute path the image was written to, if any.
	SavedTo string `json:"saved_to,omitempty"`

	// Field summarizes a float output. The image is its normalized preview.
	Field *imaging.FieldStats `json:"field,omitempty"`

	Data interface{} `json:"data,omitempty"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Argument problems map to -32602, unknown tools to -32601 and every other
// failure to -32000, with the error string in data.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Debug().Err(err).Str("tool", params.Name).Msg("tool failed")
		code, message := classify(err)
		return errorResponse(req.ID, code, message, err.Error())
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

// invalidParamsError marks malformed tool arguments that never reached a
// validator.
type invalidParamsError struct {
	err error
}

func (e *invalidParamsError) Error() string { return "invalid arguments: " + e.err.Error() }
func (e *invalidParamsError) Unwrap() error { return e.err }

func classify(err error) (int, string) {
	var (
		argErr     *errs.InvalidArgumentError
		missingErr *errs.ArgumentNotProvidedError
		methodErr  *errs.InvalidMethodError
		paramsErr  *invalidParamsError
		unknownErr *errs.UnknownTransformError
	)
	switch {
	case errors.As(err, &unknownErr):
		return codeMethodNotFound, "Tool not found"
	case errors.As(err, &argErr), errors.As(err, &missingErr), errors.As(err, &methodErr), errors.As(err, &paramsErr):
		return codeInvalidParams, "Invalid params"
	}
	return codeToolFailed, "Tool execution failed"
}

// executeTool dispatches a tool call. Transform tools share one handler.
func (s *Server) executeTool(ctx context.Context, name string, raw json.RawMessage) (interface{}, error) {
	args, err := decodeArguments(raw)
	if err != nil {
		return nil, err
	}

	switch name {
	case toolLoad:
		return s.handleImageLoad(args)
	case toolPipeline:
		return s.handleImagePipeline(ctx, args)
	}

	tname, ok := transformName(name)
	if !ok {
		return nil, &errs.UnknownTransformError{Name: name}
	}
	t, err := s.registry.Lookup(tname)
	if err != nil {
		return nil, err
	}
	return s.handleTransform(ctx, t, args)
}

func decodeArguments(raw json.RawMessage) (validators.Args, error) {
	args := validators.Args{}
	if len(raw) == 0 || string(raw) == "null" {
		return args, nil
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, &invalidParamsError{err: err}
	}
	return args, nil
}

// takeString removes name from args and returns it. A missing value is an
// empty string unless required.
func takeString(args validators.Args, name string, required bool) (string, error) {
	v, ok := args[name]
	delete(args, name)
	if !ok || v == nil {
		if required {
			return "", &errs.ArgumentNotProvidedError{Argument: name}
		}
		return "", nil
	}
	str, ok := v.(string)
	if !ok || (required && str == "") {
		return "", &errs.InvalidArgumentError{Argument: name, Value: v, Reason: "must be a non-empty string"}
	}
	return str, nil
}

// === Tool Handlers ===

func (s *Server) handleImageLoad(args validators.Args) (interface{}, error) {
	path, err := takeString(args, "path", true)
	if err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, path)
}

func (s *Server) handleTransform(ctx context.Context, t transforms.Transform, args validators.Args) (interface{}, error) {
	path, err := takeString(args, "path", true)
	if err != nil {
		return nil, err
	}
	outputPath, err := takeString(args, "output_path", false)
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}

	out, err := transforms.Apply(ctx, t, img, args)
	if err != nil {
		return nil, err
	}
	return s.result(out, outputPath)
}

type pipelineArgs struct {
	Steps []transforms.Step `json:"steps"`
}

func (s *Server) handleImagePipeline(ctx context.Context, args validators.Args) (interface{}, error) {
	path, err := takeString(args, "path", true)
	if err != nil {
		return nil, err
	}
	outputPath, err := takeString(args, "output_path", false)
	if err != nil {
		return nil, err
	}

	// Steps arrive as generic JSON; re-decode them into their typed form.
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, &invalidParamsError{err: err}
	}
	var a pipelineArgs
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, &invalidParamsError{err: err}
	}
	if len(a.Steps) == 0 {
		return nil, &errs.ArgumentNotProvidedError{Argument: "steps"}
	}

	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}

	out, err := transforms.Pipeline(ctx, s.registry, img, a.Steps)
	if err != nil {
		return nil, err
	}
	return s.result(out, outputPath)
}

// result encodes out for the client and saves its image when outputPath is
// set.
func (s *Server) result(out *transforms.Output, outputPath string) (*TransformResult, error) {
	res := &TransformResult{Data: out.Data}

	if out.Field != nil {
		stats := out.Field.Stats()
		res.Field = &stats
	}

	if out.Image == nil {
		if outputPath != "" {
			return nil, fmt.Errorf("output_path %s given but the transform produced no image", outputPath)
		}
		return res, nil
	}

	encoded, err := imaging.EncodeResult(out.Image)
	if err != nil {
		return nil, err
	}
	res.ImageResult = encoded

	if outputPath != "" {
		if !filepath.IsAbs(outputPath) && s.outputDir != "" {
			outputPath = filepath.Join(s.outputDir, outputPath)
		}
		if err := imaging.Save(out.Image, outputPath); err != nil {
			return nil, err
		}
		abs, err := filepath.Abs(outputPath)
		if err != nil {
			abs = outputPath
		}
		res.SavedTo = abs
		s.logger.Info().Str("path", abs).Msg("saved output image")
	}

	return res, nil
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
