package analyzer

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/aiwolfie/waybackwolf/internal/config"
	"github.com/aiwolfie/waybackwolf/internal/extractor"
	"github.com/aiwolfie/waybackwolf/internal/limiter"
	"github.com/rs/zerolog"
)

const (
	promptHeader = "Analyze the following contents for sensitive or confidential data " +
		"(e.g., PII, credentials, financial info). Provide a brief summary for each, " +
		"separated by '---'. Contents:\n\n"

	// resultDelimiter splits the batched response back into per-item verdicts.
	resultDelimiter = "---"

	// failurePlaceholder is returned per item when every backend fails.
	failurePlaceholder = "Analysis failed due to error."

	// sensitivityMarker flags a verdict, matched case-insensitively.
	sensitivityMarker = "sensitive"
)

// ContentItem is one payload submitted for analysis.
type ContentItem struct {
	URL  string
	Ext  string
	Body []byte
}

// Verdict is the per-item analysis outcome. Analyzed is false when the item
// was excluded before any backend saw it (extraction failure).
type Verdict struct {
	URL       string
	Text      string
	Sensitive bool
	Analyzed  bool
}

// Router batches content into a single prompt and walks an ordered chain of
// backends, falling back on failure or unavailability. All calls are
// serialized through the analysis gate to respect external rate limits.
type Router struct {
	chain    []Backend
	extract  extractor.TextExtractor
	gate     *limiter.Gate
	truncate int
	logger   zerolog.Logger
}

// NewRouter creates an analysis router over the given backend chain.
func NewRouter(chain []Backend, extract extractor.TextExtractor, gate *limiter.Gate, truncateChars int, logger zerolog.Logger) *Router {
	if truncateChars <= 0 {
		truncateChars = 4000
	}
	return &Router{
		chain:    chain,
		extract:  extract,
		gate:     gate,
		truncate: truncateChars,
		logger:   logger.With().Str("component", "AnalysisRouter").Logger(),
	}
}

// BuildChain assembles the fallback chain in the fixed preference order
// openai -> grok -> ollama, starting at the configured primary backend.
func BuildChain(cfg config.AnalysisConfig, client *http.Client) []Backend {
	full := []Backend{
		NewOpenAIBackend(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		NewGrokBackend(cfg.GrokAPIKey, cfg.GrokBaseURL, cfg.GrokModel),
		NewOllamaBackend(cfg.OllamaHost, cfg.OllamaModel, client),
	}

	primary := strings.ToLower(cfg.Backend)
	for i, backend := range full {
		if backend.Name() == primary {
			return full[i:]
		}
	}
	return full
}

// AnalyzeBatch extracts text from each item, submits one batched prompt and
// maps the delimited response back onto the items. Items whose extraction
// fails are excluded without aborting the batch. If every backend fails, each
// analyzable item receives the failure placeholder instead of an error.
func (r *Router) AnalyzeBatch(ctx context.Context, items []ContentItem) []Verdict {
	verdicts := make([]Verdict, len(items))
	var analyzable []int

	for i, item := range items {
		verdicts[i] = Verdict{URL: item.URL}

		text, err := r.extract.Extract(item.Body, item.Ext)
		if err != nil || text == "" {
			r.logger.Debug().Err(err).Str("url", item.URL).Msg("Content excluded from analysis")
			continue
		}
		items[i].Body = []byte(text)
		analyzable = append(analyzable, i)
	}

	if len(analyzable) == 0 {
		return verdicts
	}

	prompt := r.buildPrompt(items, analyzable)

	if err := r.gate.Acquire(ctx); err != nil {
		return verdicts
	}
	defer r.gate.Release()

	summaries, ok := r.analyzeWithFallback(ctx, prompt, len(analyzable))
	if !ok {
		for _, idx := range analyzable {
			verdicts[idx] = r.verdict(items[idx].URL, failurePlaceholder)
		}
		return verdicts
	}

	for n, idx := range analyzable {
		verdicts[idx] = r.verdict(items[idx].URL, summaries[n])
	}
	return verdicts
}

func (r *Router) verdict(url, text string) Verdict {
	return Verdict{
		URL:       url,
		Text:      text,
		Sensitive: IsSensitive(text),
		Analyzed:  true,
	}
}

func (r *Router) buildPrompt(items []ContentItem, analyzable []int) string {
	var sb strings.Builder
	sb.WriteString(promptHeader)
	for n, idx := range analyzable {
		text := string(items[idx].Body)
		if len(text) > r.truncate {
			text = text[:r.truncate]
		}
		fmt.Fprintf(&sb, "Content %d:\n%s\n\n", n+1, text)
	}
	return sb.String()
}

// analyzeWithFallback walks the chain until a backend answers. A primary
// failure is never surfaced to the caller; only total exhaustion reports not
// ok.
func (r *Router) analyzeWithFallback(ctx context.Context, prompt string, itemCount int) ([]string, bool) {
	for _, backend := range r.chain {
		if !backend.Available(ctx) {
			r.logger.Debug().Str("backend", backend.Name()).Msg("Backend unavailable, skipping")
			continue
		}

		response, err := backend.Analyze(ctx, prompt)
		if err != nil {
			r.logger.Warn().Err(err).Str("backend", backend.Name()).Msg("Analysis backend failed, falling back")
			continue
		}

		return splitSummaries(response, itemCount), true
	}
	return nil, false
}

// splitSummaries cuts the response on the delimiter and pads or trims to
// exactly one summary per item.
func splitSummaries(response string, itemCount int) []string {
	parts := strings.Split(response, resultDelimiter)
	summaries := make([]string, 0, itemCount)
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			summaries = append(summaries, trimmed)
		}
	}
	for len(summaries) < itemCount {
		summaries = append(summaries, failurePlaceholder)
	}
	return summaries[:itemCount]
}

// IsSensitive reports whether a verdict text contains the sensitivity marker.
func IsSensitive(text string) bool {
	return strings.Contains(strings.ToLower(text), sensitivityMarker)
}
