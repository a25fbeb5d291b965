package analyzer

import (
	"context"

	"github.com/aiwolfie/waybackwolf/internal/common/errorwrapper"
	openai "github.com/sashabaranov/go-openai"
)

const maxCompletionTokens = 500

// OpenAIBackend talks to the OpenAI chat completion API. The same
// implementation serves any OpenAI-compatible endpoint (see NewGrokBackend).
type OpenAIBackend struct {
	name   string
	client *openai.Client
	model  string
	hasKey bool
}

// NewOpenAIBackend creates the OpenAI backend. An empty API key leaves the
// backend unavailable rather than failing construction.
func NewOpenAIBackend(apiKey, model string) *OpenAIBackend {
	return &OpenAIBackend{
		name:   "openai",
		client: openai.NewClient(apiKey),
		model:  model,
		hasKey: apiKey != "",
	}
}

// NewGrokBackend creates a backend for the Grok API, which speaks the
// OpenAI-compatible chat protocol on its own base URL.
func NewGrokBackend(apiKey, baseURL, model string) *OpenAIBackend {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &OpenAIBackend{
		name:   "grok",
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		hasKey: apiKey != "",
	}
}

func (b *OpenAIBackend) Name() string { return b.name }

func (b *OpenAIBackend) Available(context.Context) bool { return b.hasKey }

func (b *OpenAIBackend) Analyze(ctx context.Context, prompt string) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     b.model,
		MaxTokens: maxCompletionTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", errorwrapper.WrapError(err, "chat completion failed")
	}
	if len(resp.Choices) == 0 {
		return "", errorwrapper.NewError("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
