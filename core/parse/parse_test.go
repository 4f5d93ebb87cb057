package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStrictValidDocuments(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    any
	}{
		{
			name:    "object",
			content: `{"command":"ls -la","timeout":30000}`,
			want:    map[string]any{"command": "ls -la", "timeout": float64(30000)},
		},
		{
			name:    "array",
			content: `[1,2,3]`,
			want:    []any{float64(1), float64(2), float64(3)},
		},
		{
			name:    "string scalar",
			content: `"hello"`,
			want:    "hello",
		},
		{
			name:    "number scalar",
			content: `42`,
			want:    float64(42),
		},
		{
			name:    "null",
			content: `null`,
			want:    nil,
		},
		{
			name:    "surrounding whitespace",
			content: "  {\"a\":1}\n",
			want:    map[string]any{"a": float64(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Strict(tt.content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parsed value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStrictInvalidDocuments(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "whitespace only", content: "   \n\t"},
		{name: "missing colon", content: `{"command": "ls -la", "timeout" 30000}`},
		{name: "single quotes", content: `{'a': 1}`},
		{name: "trailing garbage", content: `{"a":1} trailing`},
		{name: "prose", content: "not json at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Strict(tt.content); err == nil {
				t.Errorf("expected error for %q, got nil", tt.content)
			}
		})
	}
}

func TestRepairedFixesCommonMalformations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    any
	}{
		{
			name:    "single quotes and unquoted keys",
			content: `{name: 'John', age: 30}`,
			want:    map[string]any{"name": "John", "age": float64(30)},
		},
		{
			name:    "trailing comma",
			content: `{"a": 1,}`,
			want:    map[string]any{"a": float64(1)},
		},
		{
			name:    "markdown fence",
			content: "```json\n{\"a\": 1}\n```",
			want:    map[string]any{"a": float64(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Repaired(tt.content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("repaired value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRepairedPassesThroughValidJSON(t *testing.T) {
	got, err := Repaired(`{"a":1}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"a": float64(1)}, got); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
}
