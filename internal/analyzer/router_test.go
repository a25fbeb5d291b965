package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/aiwolfie/waybackwolf/internal/extractor"
	"github.com/aiwolfie/waybackwolf/internal/limiter"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a scriptable Backend for router tests.
type fakeBackend struct {
	name      string
	available bool
	response  string
	err       error
	calls     int
	prompts   []string
}

func (f *fakeBackend) Name() string                   { return f.name }
func (f *fakeBackend) Available(context.Context) bool { return f.available }
func (f *fakeBackend) Analyze(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func newTestRouter(t *testing.T, chain ...Backend) *Router {
	t.Helper()
	return NewRouter(chain, extractor.NewDefaultExtractor(zerolog.Nop()), limiter.NewGate(1), 4000, zerolog.Nop())
}

func textItem(url, body string) ContentItem {
	return ContentItem{URL: url, Ext: "txt", Body: []byte(body)}
}

func TestAnalyzeBatch_SplitsVerdictsPerItem(t *testing.T) {
	primary := &fakeBackend{
		name:      "openai",
		available: true,
		response:  "Contains sensitive credentials.\n---\nNothing of note.",
	}
	router := newTestRouter(t, primary)

	verdicts := router.AnalyzeBatch(context.Background(), []ContentItem{
		textItem("http://a.com/1", "user=admin password=123"),
		textItem("http://a.com/2", "hello world"),
	})

	require.Len(t, verdicts, 2)
	assert.Equal(t, "Contains sensitive credentials.", verdicts[0].Text)
	assert.True(t, verdicts[0].Sensitive)
	assert.True(t, verdicts[0].Analyzed)
	assert.Equal(t, "Nothing of note.", verdicts[1].Text)
	assert.False(t, verdicts[1].Sensitive)
	assert.Equal(t, 1, primary.calls, "one batched call for the whole set")
}

func TestAnalyzeBatch_FallsBackOnPrimaryFailure(t *testing.T) {
	primary := &fakeBackend{name: "openai", available: true, err: assert.AnError}
	secondary := &fakeBackend{name: "grok", available: true, response: "Benign content."}
	router := newTestRouter(t, primary, secondary)

	verdicts := router.AnalyzeBatch(context.Background(), []ContentItem{textItem("http://a.com/1", "data")})

	require.Len(t, verdicts, 1)
	assert.Equal(t, "Benign content.", verdicts[0].Text)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestAnalyzeBatch_SkipsUnavailableBackends(t *testing.T) {
	primary := &fakeBackend{name: "openai", available: false}
	secondary := &fakeBackend{name: "ollama", available: true, response: "Fine."}
	router := newTestRouter(t, primary, secondary)

	verdicts := router.AnalyzeBatch(context.Background(), []ContentItem{textItem("http://a.com/1", "data")})

	assert.Equal(t, 0, primary.calls)
	assert.Equal(t, "Fine.", verdicts[0].Text)
}

func TestAnalyzeBatch_AllBackendsFailYieldsPlaceholder(t *testing.T) {
	first := &fakeBackend{name: "openai", available: true, err: assert.AnError}
	second := &fakeBackend{name: "grok", available: true, err: assert.AnError}
	router := newTestRouter(t, first, second)

	verdicts := router.AnalyzeBatch(context.Background(), []ContentItem{
		textItem("http://a.com/1", "data"),
		textItem("http://a.com/2", "more data"),
	})

	require.Len(t, verdicts, 2)
	for _, v := range verdicts {
		assert.Equal(t, failurePlaceholder, v.Text)
		assert.True(t, v.Analyzed)
		assert.False(t, v.Sensitive)
	}
}

func TestAnalyzeBatch_TruncatesLongContent(t *testing.T) {
	backend := &fakeBackend{name: "openai", available: true, response: "ok"}
	router := NewRouter([]Backend{backend}, extractor.NewDefaultExtractor(zerolog.Nop()), limiter.NewGate(1), 100, zerolog.Nop())

	long := strings.Repeat("a", 500)
	router.AnalyzeBatch(context.Background(), []ContentItem{textItem("http://a.com/1", long)})

	require.Len(t, backend.prompts, 1)
	assert.NotContains(t, backend.prompts[0], strings.Repeat("a", 101))
	assert.Contains(t, backend.prompts[0], strings.Repeat("a", 100))
}

func TestAnalyzeBatch_ExtractionFailureExcludesItem(t *testing.T) {
	backend := &fakeBackend{name: "openai", available: true, response: "Summary one."}
	router := newTestRouter(t, backend)

	verdicts := router.AnalyzeBatch(context.Background(), []ContentItem{
		{URL: "http://a.com/doc.pdf", Ext: "pdf", Body: []byte{0x25, 0x50}},
		textItem("http://a.com/notes.txt", "plain notes"),
	})

	require.Len(t, verdicts, 2)
	assert.False(t, verdicts[0].Analyzed, "binary item must be excluded, not analyzed")
	assert.True(t, verdicts[1].Analyzed)
	assert.Equal(t, "Summary one.", verdicts[1].Text)
	// The excluded item never reaches the prompt.
	assert.Equal(t, 1, strings.Count(backend.prompts[0], "Content "))
}

func TestAnalyzeBatch_EmptyBatchMakesNoCalls(t *testing.T) {
	backend := &fakeBackend{name: "openai", available: true}
	router := newTestRouter(t, backend)

	verdicts := router.AnalyzeBatch(context.Background(), nil)
	assert.Empty(t, verdicts)
	assert.Equal(t, 0, backend.calls)
}

func TestSplitSummaries_PadsShortResponses(t *testing.T) {
	summaries := splitSummaries("only one summary", 3)
	require.Len(t, summaries, 3)
	assert.Equal(t, "only one summary", summaries[0])
	assert.Equal(t, failurePlaceholder, summaries[1])
	assert.Equal(t, failurePlaceholder, summaries[2])
}

func TestIsSensitive(t *testing.T) {
	assert.True(t, IsSensitive("This file contains SENSITIVE data"))
	assert.False(t, IsSensitive("Nothing interesting here"))
	assert.False(t, IsSensitive(failurePlaceholder))
}
