package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{"type": "string"},
			"minutes": map[string]any{"type": "integer"},
			"pace":    map[string]any{"type": "string", "enum": []any{"on-pace", "falling-behind", "struggling"}},
			"sessionIds": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"message", "pace"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["message"].Type != "STRING" {
		t.Fatalf("expected STRING for message, got %s", schema.Properties["message"].Type)
	}
	if schema.Properties["minutes"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for minutes, got %s", schema.Properties["minutes"].Type)
	}
	if len(schema.Properties["pace"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["pace"].Enum))
	}
	if schema.Properties["sessionIds"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for sessionIds, got %s", schema.Properties["sessionIds"].Type)
	}
	if schema.Properties["sessionIds"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for sessionIds items, got %s", schema.Properties["sessionIds"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
