package server

import (
	"testing"
)

func toolByName(t *testing.T, name string) Tool {
	t.Helper()
	for _, tool := range GetToolDefinitions() {
		if tool.Name == name {
			return tool
		}
	}
	t.Fatalf("%s tool not found", name)
	return Tool{}
}

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"color_convert",
		"color_equal",
		"color_blend",
		"color_invert",
		"color_random",
		"color_wheel_create",
		"color_wheel_next",
		"color_wheel_delete",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("Duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}

			if schemaType := tool.InputSchema["type"]; schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}

			// Every required parameter must be declared
			required, _ := tool.InputSchema["required"].([]string)
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required parameter %s is not in properties", r)
				}
			}
		})
	}
}

func TestToolDefinitions_BlendOperations(t *testing.T) {
	tool := toolByName(t, "color_blend")

	props := tool.InputSchema["properties"].(map[string]interface{})
	operation, ok := props["operation"].(map[string]interface{})
	if !ok {
		t.Fatal("operation property should be a map")
	}

	enum, ok := operation["enum"].([]string)
	if !ok {
		t.Fatal("operation enum should be a string slice")
	}

	expected := map[string]bool{
		"multiply":   true,
		"add":        true,
		"subtract":   true,
		"divide":     true,
		"screen":     true,
		"difference": true,
		"overlay":    true,
	}
	for _, op := range enum {
		if !expected[op] {
			t.Errorf("unexpected operation %s", op)
		}
		delete(expected, op)
	}
	for missing := range expected {
		t.Errorf("color_blend should offer '%s'", missing)
	}
}

func TestColorSchema(t *testing.T) {
	schema := colorSchema("Test color")

	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("properties should be a map")
	}
	for _, key := range []string{"rgb", "hsv", "hex"} {
		if _, ok := props[key]; !ok {
			t.Errorf("color schema missing %s", key)
		}
	}
}
