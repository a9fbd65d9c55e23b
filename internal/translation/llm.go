package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jusunglee/hindify/internal/llm"
)

var languageNames = map[string]string{
	LangEnglish: "English",
	LangHindi:   "Hindi",
}

const systemPrompt = `You are an expert %[1]s to %[2]s translator with deep knowledge of both languages.
Your task is to translate the given %[1]s text to natural, fluent %[2]s.

Guidelines:
- Provide accurate and contextually appropriate %[2]s translation
- Maintain the original meaning and tone
- Use proper %[2]s grammar and sentence structure
- Keep the same paragraph structure and line breaks as the original
- Return only the %[2]s translation without any explanations`

// LLMTranslator prompts a language model for a translation.
type LLMTranslator struct {
	llm      llm.Client
	provider string
	model    string
}

func NewLLMTranslator(client llm.Client, model string) *LLMTranslator {
	return &LLMTranslator{llm: client, provider: client.Name(), model: model}
}

func (t *LLMTranslator) Name() string {
	return t.provider
}

func (t *LLMTranslator) Translate(ctx context.Context, text, source, target string) (out string, err error) {
	start := time.Now()
	defer func() { observe(t.provider, start, err) }()

	system := fmt.Sprintf(systemPrompt, languageName(source), languageName(target))
	prompt := fmt.Sprintf("%s Text to Translate:\n%s\n\n%s Translation:", languageName(source), text, languageName(target))

	resp, err := t.llm.Complete(ctx, system, prompt)
	if err != nil {
		return "", fmt.Errorf("translating with %s %s: %w", t.provider, t.model, err)
	}
	resp = strings.TrimSpace(resp)
	if resp == "" {
		return "", fmt.Errorf("translating with %s %s: %w", t.provider, t.model, llm.ErrEmptyResponse)
	}
	return resp, nil
}

func languageName(tag string) string {
	if name, ok := languageNames[tag]; ok {
		return name
	}
	return tag
}
