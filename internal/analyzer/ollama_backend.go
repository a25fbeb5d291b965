package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aiwolfie/waybackwolf/internal/common/errorwrapper"
)

// OllamaBackend talks to a local Ollama daemon over its native HTTP API.
// Availability is checked against the daemon's model listing, so a stopped
// daemon or a missing model cleanly falls out of the chain.
type OllamaBackend struct {
	host   string
	model  string
	client *http.Client
}

// NewOllamaBackend creates the Ollama backend.
func NewOllamaBackend(host, model string, client *http.Client) *OllamaBackend {
	return &OllamaBackend{
		host:   strings.TrimRight(host, "/"),
		model:  model,
		client: client,
	}
}

func (b *OllamaBackend) Name() string { return "ollama" }

type ollamaTagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Available lists the daemon's models and checks ours is present.
func (b *OllamaBackend) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.host+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var tags ollamaTagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return false
	}
	for _, m := range tags.Models {
		// Tags carry a ":<variant>" suffix the config may omit.
		if m.Name == b.model || strings.HasPrefix(m.Name, b.model+":") {
			return true
		}
	}
	return false
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
}

func (b *OllamaBackend) Analyze(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(ollamaChatRequest{
		Model:    b.model,
		Messages: []ollamaMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.host+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", errorwrapper.WrapError(err, "ollama chat request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errorwrapper.NewHTTPError(resp.StatusCode, b.host, "ollama chat returned non-200")
	}

	var parsed ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errorwrapper.WrapError(err, "failed to decode ollama response")
	}
	return parsed.Message.Content, nil
}
