package server

import (
	"strings"

	"github.com/ironsheep/easycv/internal/transforms"
)

const (
	toolPrefix   = "image_"
	toolLoad     = "image_load"
	toolPipeline = "image_pipeline"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var (
	pathProperty = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path or http(s) URL of the input image",
	}
	outputPathProperty = map[string]interface{}{
		"type":        "string",
		"description": "Optional file to save the resulting image to; the format follows the extension",
	}
)

// ToolDefinitions returns image_load, one image_<transform> tool per
// registered transform and image_pipeline.
func (s *Server) ToolDefinitions() []Tool {
	tools := []Tool{{
		Name:        toolLoad,
		Description: "Load an image file or URL and return its dimensions, format, channels and size.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"path": pathProperty,
			},
			"required": []string{"path"},
		},
	}}

	for _, t := range s.registry.All() {
		tools = append(tools, transformTool(t))
	}

	tools = append(tools, Tool{
		Name:        toolPipeline,
		Description: "Apply a sequence of transforms, feeding each output image into the next step. A step that returns data ends the pipeline.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"path":        pathProperty,
				"output_path": outputPathProperty,
				"steps": map[string]interface{}{
					"type":     "array",
					"minItems": 1,
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"name": map[string]interface{}{
								"type": "string",
								"enum": s.registry.Names(),
							},
							"args": map[string]interface{}{
								"type":        "object",
								"description": "Arguments of the transform, as for its image_<name> tool",
							},
						},
						"required": []string{"name"},
					},
				},
			},
			"required": []string{"path", "steps"},
		},
	})

	return tools
}

// transformTool derives a tool from t's argument schema, adding the shared
// path and output_path properties.
func transformTool(t transforms.Transform) Tool {
	schema := t.Arguments().Describe()

	props := schema["properties"].(map[string]interface{})
	props["path"] = pathProperty
	props["output_path"] = outputPathProperty

	required := schema["required"].([]string)
	schema["required"] = append([]string{"path"}, required...)

	return Tool{
		Name:        toolPrefix + t.Name(),
		Description: t.Description(),
		InputSchema: schema,
	}
}

// transformName maps a tool name back to its transform, reporting false for
// names without the image_ prefix.
func transformName(tool string) (string, bool) {
	if !strings.HasPrefix(tool, toolPrefix) {
		return "", false
	}
	return strings.TrimPrefix(tool, toolPrefix), true
}
