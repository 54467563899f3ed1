package server

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/easycv/internal/imaging"
)

func TestToolsCall_ImageLoad(t *testing.T) {
	s := newTestServer(t, "")
	path := writeTestImage(t, 64, 32)

	var info imaging.ImageInfo
	decodeResult(t, callTool(t, s, "image_load", map[string]interface{}{"path": path}), &info)

	if info.Width != 64 || info.Height != 32 {
		t.Errorf("dimensions: got %dx%d, want 64x32", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
}

func TestToolsCall_Transform(t *testing.T) {
	s := newTestServer(t, "")
	path := writeTestImage(t, 40, 20)

	var res TransformResult
	decodeResult(t, callTool(t, s, "image_resize", map[string]interface{}{"path": path, "width": 10}), &res)

	if res.ImageResult == nil {
		t.Fatal("expected image in result")
	}
	if res.Width != 10 || res.Height != 5 {
		t.Errorf("dimensions: got %dx%d, want 10x5", res.Width, res.Height)
	}
	if res.ImageBase64 == "" || res.MimeType != "image/png" {
		t.Errorf("unexpected encoding: mime %s, %d base64 bytes", res.MimeType, len(res.ImageBase64))
	}
	if res.SavedTo != "" {
		t.Errorf("nothing should be saved without output_path, got %s", res.SavedTo)
	}
}

func TestToolsCall_OutputPath(t *testing.T) {
	outDir := t.TempDir()
	s := newTestServer(t, outDir)
	path := writeTestImage(t, 40, 20)

	var res TransformResult
	decodeResult(t, callTool(t, s, "image_negative", map[string]interface{}{
		"path":        path,
		"output_path": "out/negative.png",
	}), &res)

	want := filepath.Join(outDir, "out", "negative.png")
	if res.SavedTo != want {
		t.Errorf("SavedTo: got %s, want %s", res.SavedTo, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestToolsCall_FieldOutput(t *testing.T) {
	s := newTestServer(t, "")
	path := writeTestImage(t, 32, 32)

	var res TransformResult
	decodeResult(t, callTool(t, s, "image_gradient", map[string]interface{}{"path": path, "axis": "y"}), &res)

	if res.Field == nil {
		t.Fatal("gradient result should include field stats")
	}
	if res.Field.Min >= 0 || res.Field.Max <= 0 {
		t.Errorf("expected signed gradient range, got min %v max %v", res.Field.Min, res.Field.Max)
	}
	if res.ImageResult == nil {
		t.Error("gradient result should include the normalized preview")
	}
}

func TestToolsCall_DataOutput(t *testing.T) {
	s := newTestServer(t, "")
	path := writeTestImage(t, 8, 8)

	var res struct {
		ImageBase64 string `json:"image_base64"`
		Data        struct {
			Colors []imaging.ColorFrequency `json:"colors"`
		} `json:"data"`
	}
	decodeResult(t, callTool(t, s, "image_dominant_colors", map[string]interface{}{"path": path, "count": 2}), &res)

	if res.ImageBase64 != "" {
		t.Error("data-only result should carry no image")
	}
	if len(res.Data.Colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(res.Data.Colors))
	}
	if res.Data.Colors[0].Hex != "#F0F0F0" {
		t.Errorf("most common color: got %s, want #F0F0F0", res.Data.Colors[0].Hex)
	}
}

func TestToolsCall_Select(t *testing.T) {
	s := newTestServer(t, "")
	path := writeTestImage(t, 8, 8)

	var res struct {
		Data [][2]int `json:"data"`
	}
	decodeResult(t, callTool(t, s, "image_select", map[string]interface{}{"path": path}), &res)

	want := [][2]int{{1, 2}, {4, 6}}
	if len(res.Data) != 2 || res.Data[0] != want[0] || res.Data[1] != want[1] {
		t.Errorf("selection: got %v, want %v", res.Data, want)
	}
}

func TestToolsCall_Pipeline(t *testing.T) {
	s := newTestServer(t, "")
	path := writeTestImage(t, 40, 20)

	var res TransformResult
	decodeResult(t, callTool(t, s, "image_pipeline", map[string]interface{}{
		"path": path,
		"steps": []map[string]interface{}{
			{"name": "grayscale"},
			{"name": "resize", "args": map[string]interface{}{"width": 20}},
			{"name": "rotate", "args": map[string]interface{}{"angle": 90}},
		},
	}), &res)

	if res.Width != 10 || res.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 10x20", res.Width, res.Height)
	}
}

func TestToolsCall_Errors(t *testing.T) {
	s := newTestServer(t, "")
	path := writeTestImage(t, 16, 16)

	tests := []struct {
		name     string
		tool     string
		args     interface{}
		wantCode int
	}{
		{"unknown tool", "image_sepia", map[string]interface{}{"path": path}, codeMethodNotFound},
		{"tool without prefix", "blur", map[string]interface{}{"path": path}, codeMethodNotFound},
		{"missing path", "image_blur", map[string]interface{}{}, codeInvalidParams},
		{"path not a string", "image_load", map[string]interface{}{"path": 7}, codeInvalidParams},
		{"arguments not an object", "image_blur", []int{1, 2}, codeInvalidParams},
		{"invalid value", "image_blur", map[string]interface{}{"path": path, "size": 4}, codeInvalidParams},
		{"unknown argument", "image_blur", map[string]interface{}{"path": path, "radius": 4}, codeInvalidParams},
		{"invalid method", "image_sharpness", map[string]interface{}{"path": path, "method": "wavelet"}, codeInvalidParams},
		{"method argument missing", "image_crop", map[string]interface{}{"path": path}, codeInvalidParams},
		{"missing file", "image_blur", map[string]interface{}{"path": "/nonexistent/image.png"}, codeToolFailed},
		{"output path for data", "image_sharpness", map[string]interface{}{"path": path, "output_path": "x.png"}, codeToolFailed},
		{"bad output extension", "image_negative", map[string]interface{}{"path": path, "output_path": filepath.Join(t.TempDir(), "x.xyz")}, codeToolFailed},
		{"empty pipeline", "image_pipeline", map[string]interface{}{"path": path, "steps": []interface{}{}}, codeInvalidParams},
		{"malformed steps", "image_pipeline", map[string]interface{}{"path": path, "steps": "blur"}, codeInvalidParams},
		{"unknown step", "image_pipeline", map[string]interface{}{"path": path, "steps": []map[string]interface{}{{"name": "sepia"}}}, codeMethodNotFound},
		{"bad step argument", "image_pipeline", map[string]interface{}{"path": path, "steps": []map[string]interface{}{{"name": "canny", "args": map[string]interface{}{"low": 0}}}}, codeInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := callTool(t, s, tt.tool, tt.args)
			if resp.Error == nil {
				t.Fatalf("expected error, got result %v", resp.Result)
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code: got %d (%v), want %d", resp.Error.Code, resp.Error.Data, tt.wantCode)
			}
			if resp.Error.Data == nil {
				t.Error("error data should carry the error string")
			}
		})
	}
}

func TestToolsCall_InvalidParams(t *testing.T) {
	s := newTestServer(t, "")

	resp := s.handleToolsCall(context.Background(), &MCPRequest{ID: 1, Method: "tools/call", Params: json.RawMessage(`"oops"`)})
	if resp.Error == nil || resp.Error.Code != codeInvalidParams {
		t.Errorf("expected invalid params error, got %+v", resp.Error)
	}
}
