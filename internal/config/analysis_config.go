package config

// AnalysisConfig selects the AI backend chain and which content is eligible
// for analysis. API keys may also be supplied via the OPENAI_API_KEY and
// GROK_API_KEY environment variables; they are never hard-coded.
type AnalysisConfig struct {
	// Primary backend: openai, grok or ollama. Empty disables analysis.
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty" validate:"omitempty,aibackend"`
	// Extensions eligible for content analysis, e.g. ["sql", "json"].
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	// Per-item character budget when batching content into a prompt.
	TruncateChars int `json:"truncate_chars,omitempty" yaml:"truncate_chars,omitempty" validate:"omitempty,min=100,max=100000"`

	OpenAIAPIKey string `json:"openai_api_key,omitempty" yaml:"openai_api_key,omitempty"`
	OpenAIModel  string `json:"openai_model,omitempty" yaml:"openai_model,omitempty"`
	GrokAPIKey   string `json:"grok_api_key,omitempty" yaml:"grok_api_key,omitempty"`
	GrokBaseURL  string `json:"grok_base_url,omitempty" yaml:"grok_base_url,omitempty"`
	GrokModel    string `json:"grok_model,omitempty" yaml:"grok_model,omitempty"`
	OllamaHost   string `json:"ollama_host,omitempty" yaml:"ollama_host,omitempty"`
	OllamaModel  string `json:"ollama_model,omitempty" yaml:"ollama_model,omitempty"`
}

// NewDefaultAnalysisConfig creates default analysis configuration.
func NewDefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		TruncateChars: 4000,
		OpenAIModel:   "gpt-3.5-turbo",
		GrokBaseURL:   "https://api.x.ai/v1",
		GrokModel:     "grok-beta",
		OllamaHost:    "http://localhost:11434",
		OllamaModel:   "deepseek-r1",
	}
}
