package prompt

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		content string
		values  map[string]string
		want    string
	}{
		{
			name:    "unresolved placeholders stay intact",
			content: "{{a}} and {{b}}",
			values:  map[string]string{"a": "X"},
			want:    "X and {{b}}",
		},
		{
			name:    "all occurrences replaced",
			content: "{{x}}-{{x}}",
			values:  map[string]string{"x": "Q"},
			want:    "Q-Q",
		},
		{
			name:    "empty value is treated as unresolved",
			content: "Dear {{recipient}},",
			values:  map[string]string{"recipient": ""},
			want:    "Dear {{recipient}},",
		},
		{
			name:    "metacharacters in names match literally",
			content: "total: {{price ($)}}",
			values:  map[string]string{"price ($)": "42"},
			want:    "total: 42",
		},
		{
			name:    "dollar signs in values are inserted literally",
			content: "pay {{amount}}",
			values:  map[string]string{"amount": "$1"},
			want:    "pay $1",
		},
		{
			name:    "no placeholders",
			content: "static text",
			values:  map[string]string{"a": "X"},
			want:    "static text",
		},
		{
			name:    "nil values",
			content: "{{a}}",
			values:  nil,
			want:    "{{a}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.content, tt.values)
			if got != tt.want {
				t.Errorf("Render(%q, %v) = %q, want %q", tt.content, tt.values, got, tt.want)
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	content := "Hello {{name}}, {{name}} again. Missing: {{other}}"
	values := map[string]string{"name": "Ada"}

	first := Render(content, values)
	second := Render(first, values)
	if first != second {
		t.Errorf("second render changed output: %q vs %q", first, second)
	}
}
