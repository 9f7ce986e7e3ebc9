package llm

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// LangChainClient talks to any OpenAI-compatible chat endpoint.
type LangChainClient struct {
	model *openai.LLM
}

func NewLangChainClient(apiKey, model, baseURL string, timeout time.Duration) (*LangChainClient, error) {
	if apiKey == "" {
		return nil, errors.New("missing LLM_API_KEY")
	}

	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if model != "" {
		opts = append(opts, openai.WithModel(model))
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	m, err := openai.New(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "init openai client")
	}
	return &LangChainClient{model: m}, nil
}

func (l *LangChainClient) Generate(ctx context.Context, prompt string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, l.model, prompt, llms.WithTemperature(0.2))
	if err != nil {
		return "", errors.Wrap(err, "langchain generate")
	}
	return out, nil
}
