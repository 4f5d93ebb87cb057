package oracle

import "testing"

func TestSalvageSpan(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantOK  bool
	}{
		{
			name:    "bare object",
			content: `{"a":1}`,
			want:    `{"a":1}`,
			wantOK:  true,
		},
		{
			name:    "object wrapped in prose",
			content: `Sure! {"a":1} is fixed.`,
			want:    `{"a":1}`,
			wantOK:  true,
		},
		{
			name:    "greedy across multiple objects",
			content: `{"a":1} and {"b":2}`,
			want:    `{"a":1} and {"b":2}`,
			wantOK:  true,
		},
		{
			name:    "nested object",
			content: `result: {"a":{"b":2}}`,
			want:    `{"a":{"b":2}}`,
			wantOK:  true,
		},
		{
			name:    "no braces",
			content: "plain prose",
			wantOK:  false,
		},
		{
			name:    "only open brace",
			content: `{"a":1`,
			wantOK:  false,
		},
		{
			name:    "close before open",
			content: `} {`,
			wantOK:  false,
		},
		{
			name:    "empty",
			content: "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := salvageSpan(tt.content)
			if ok != tt.wantOK {
				t.Fatalf("salvageSpan(%q) ok = %v, want %v", tt.content, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("salvageSpan(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}
