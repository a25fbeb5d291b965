package orchestrator

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aiwolfie/waybackwolf/internal/analyzer"
	"github.com/aiwolfie/waybackwolf/internal/archive"
	"github.com/aiwolfie/waybackwolf/internal/fetcher"
	"github.com/aiwolfie/waybackwolf/internal/models"
	"github.com/aiwolfie/waybackwolf/internal/prober"
	"github.com/aiwolfie/waybackwolf/internal/urlhandler"
	"github.com/rs/zerolog"
)

// Results is the aggregate outcome of a run: records bucketed by
// accessibility plus the run-wide counters.
type Results struct {
	Accessible   []*models.URLRecord
	Inaccessible []*models.URLRecord
	Stats        models.RunStatsSnapshot
}

// Orchestrator drives each URL through classify -> probe -> resolve ->
// fetch -> analyze and aggregates per-URL outcomes. Stages within one URL
// are strictly sequential; URLs are independent of each other.
type Orchestrator struct {
	prober   *prober.Prober
	resolver *archive.Resolver
	fetcher  *fetcher.Fetcher
	router   *analyzer.Router
	aiExts   map[string]struct{}
	stats    *models.RunStats
	logger   zerolog.Logger
}

// New creates an orchestrator. A nil router disables content analysis
// entirely; analysisExtensions selects which classified extensions are
// eligible when it is enabled.
func New(
	p *prober.Prober,
	r *archive.Resolver,
	f *fetcher.Fetcher,
	router *analyzer.Router,
	analysisExtensions []string,
	logger zerolog.Logger,
) *Orchestrator {
	aiExts := make(map[string]struct{}, len(analysisExtensions))
	for _, ext := range analysisExtensions {
		aiExts[urlhandler.NormalizeExtension(ext)] = struct{}{}
	}

	return &Orchestrator{
		prober:   p,
		resolver: r,
		fetcher:  f,
		router:   router,
		aiExts:   aiExts,
		stats:    &models.RunStats{},
		logger:   logger.With().Str("component", "Orchestrator").Logger(),
	}
}

// urlOutcome pairs a finished record with its transient fetched content.
// Content never outlives analysis; it is not part of the record. The index
// preserves submission order for the analysis batch.
type urlOutcome struct {
	index   int
	record  *models.URLRecord
	content []byte
}

// RunBatch processes all URLs concurrently. Each URL is an independent unit
// of work; completion order is not meaningful. Analysis-eligible content is
// collected and submitted to the router as one batch at the end.
func (o *Orchestrator) RunBatch(ctx context.Context, urls []string) *Results {
	outcomes := make(chan *urlOutcome)

	var wg sync.WaitGroup
	for i, rawURL := range urls {
		wg.Add(1)
		go func(idx int, u string) {
			defer wg.Done()
			outcomes <- o.processURL(ctx, idx, u)
		}(i, rawURL)
	}
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	results := &Results{}
	var pending []*urlOutcome
	for outcome := range outcomes {
		if outcome == nil {
			continue // skipped: no recognized extension
		}
		o.bucket(results, outcome.record)
		if outcome.content != nil {
			pending = append(pending, outcome)
		}
	}

	// Completion order is whatever the scheduler produced; restore submission
	// order so the batched prompt is reproducible for a given input list.
	sort.Slice(pending, func(i, j int) bool { return pending[i].index < pending[j].index })
	o.analyzeOutcomes(ctx, pending)

	results.Stats = o.stats.Snapshot()
	return results
}

// RunInteractive processes URLs one at a time behind the operator command
// channel. Pause holds until the next command, Skip drops the offered URL,
// Quit (or a closed channel, or context cancellation) stops submission while
// letting the current URL finish.
func (o *Orchestrator) RunInteractive(ctx context.Context, urls []string, commands <-chan Command) *Results {
	results := &Results{}

loop:
	for _, rawURL := range urls {
		cmd, ok := o.nextCommand(ctx, commands)
		if !ok || cmd == Quit {
			o.logger.Info().Msg("Run terminated by operator")
			break loop
		}
		if cmd == Skip {
			o.logger.Info().Str("url", rawURL).Msg("URL skipped by operator")
			continue
		}

		outcome := o.processURL(ctx, 0, rawURL)
		if outcome == nil {
			continue
		}
		o.bucket(results, outcome.record)
		if outcome.content != nil {
			o.analyzeOutcomes(ctx, []*urlOutcome{outcome})
		}
	}

	results.Stats = o.stats.Snapshot()
	return results
}

// nextCommand blocks for the next actionable operator command, swallowing
// Pause by waiting for whatever follows it.
func (o *Orchestrator) nextCommand(ctx context.Context, commands <-chan Command) (Command, bool) {
	for {
		select {
		case <-ctx.Done():
			return Quit, false
		case cmd, ok := <-commands:
			if !ok {
				return Quit, false
			}
			if cmd == Pause {
				o.logger.Info().Msg("Paused, waiting for next command")
				continue
			}
			return cmd, true
		}
	}
}

// processURL walks one URL through the pipeline state machine. It returns
// nil when the URL carries no recognized extension (terminal state Skipped).
func (o *Orchestrator) processURL(ctx context.Context, index int, rawURL string) *urlOutcome {
	ext := urlhandler.GetExtension(rawURL)
	if ext == "" {
		o.logger.Debug().Str("url", rawURL).Msg("No recognized extension, skipping")
		return nil
	}

	record := &models.URLRecord{
		URL:       rawURL,
		Extension: ext,
		CheckedAt: time.Now().UTC(),
	}
	outcome := &urlOutcome{index: index, record: record}

	status, err := o.prober.Check(ctx, rawURL)
	record.StatusCode = status
	if err != nil {
		record.Error = err.Error()
	}

	if record.Accessible() {
		if o.analysisEligible(ext) {
			outcome.content, _ = o.fetcher.Fetch(ctx, rawURL)
		}
		return outcome
	}

	snapshot, found := o.resolver.Resolve(ctx, rawURL)
	if found {
		record.Snapshot = snapshot
		if o.analysisEligible(ext) {
			outcome.content, _ = o.fetcher.Fetch(ctx, snapshot)
		}
	}
	return outcome
}

// analyzeOutcomes submits fetched content as one batch and writes the
// verdicts back onto the records, updating the sensitive counter.
func (o *Orchestrator) analyzeOutcomes(ctx context.Context, outcomes []*urlOutcome) {
	if o.router == nil || len(outcomes) == 0 {
		return
	}

	items := make([]analyzer.ContentItem, len(outcomes))
	for i, outcome := range outcomes {
		items[i] = analyzer.ContentItem{
			URL:  outcome.record.URL,
			Ext:  outcome.record.Extension,
			Body: outcome.content,
		}
	}

	verdicts := o.router.AnalyzeBatch(ctx, items)
	for i, verdict := range verdicts {
		if !verdict.Analyzed {
			continue
		}
		record := outcomes[i].record
		record.Analysis = verdict.Text
		record.Sensitive = verdict.Sensitive
		if verdict.Sensitive {
			o.stats.RecordSensitive()
		}
	}
}

// bucket finalizes a record into one of the two result buckets and
// increments the run statistics exactly once for it.
func (o *Orchestrator) bucket(results *Results, record *models.URLRecord) {
	if record.Accessible() {
		results.Accessible = append(results.Accessible, record)
		o.stats.RecordAccessible()
		return
	}
	results.Inaccessible = append(results.Inaccessible, record)
	o.stats.RecordInaccessible()
}

// analysisEligible reports whether content for this extension should be
// fetched and analyzed.
func (o *Orchestrator) analysisEligible(ext string) bool {
	if o.router == nil || len(o.aiExts) == 0 {
		return false
	}
	_, ok := o.aiExts[ext]
	return ok
}
