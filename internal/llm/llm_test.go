package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkdownCodeBlocks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "  नमस्ते  ", "नमस्ते"},
		{"fenced", "```\nनमस्ते दुनिया\n```", "नमस्ते दुनिया"},
		{"fenced with language", "```text\nपहली पंक्ति\nदूसरी पंक्ति\n```\n", "पहली पंक्ति\nदूसरी पंक्ति"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkdownCodeBlocks(tt.input))
		})
	}
}
