package factory

import (
	"fmt"

	"abcresearch-be/pkg/llm"
	"abcresearch-be/pkg/llm/claude"
	"abcresearch-be/pkg/llm/gemini"
)

func NewLLMProvider(providerType, apiKey, modelName, baseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "claude":
		return claude.NewClaudeProvider(apiKey, baseURL, modelName), nil
	case "gemini":
		return gemini.NewGeminiProvider(apiKey, baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
