package conv

import (
	"strings"
	"testing"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "bold and italics survive",
			input:    "los cursos de **hoy** son *dos*",
			contains: []string{"<strong>hoy</strong>", "<em>dos</em>"},
		},
		{
			name:     "code block survives",
			input:    "horario:\n```\nLunes Algebra\n```",
			contains: []string{"<code", "Lunes Algebra"},
		},
		{
			name:     "disallowed tags are stripped",
			input:    "# Horario\n\n<script>alert(1)</script>",
			contains: []string{"Horario"},
			excludes: []string{"<script>", "<h1>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToTelegramHTML([]byte(tt.input))
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output %q missing %q", got, want)
				}
			}
			for _, banned := range tt.excludes {
				if strings.Contains(got, banned) {
					t.Errorf("output %q contains %q", got, banned)
				}
			}
		})
	}
}
