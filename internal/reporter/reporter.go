package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/aiwolfie/waybackwolf/internal/config"
	"github.com/aiwolfie/waybackwolf/internal/models"
	"github.com/rs/zerolog"
)

// Reporter renders run results to the console and, when configured, to a
// plain-text listing and a machine-readable JSON document. Sink failures are
// logged and never abort the run; the results already exist in memory.
type Reporter struct {
	cfg    config.ReporterConfig
	out    io.Writer
	logger zerolog.Logger
}

// New creates a reporter writing its console output to out.
func New(cfg config.ReporterConfig, out io.Writer, logger zerolog.Logger) *Reporter {
	return &Reporter{
		cfg:    cfg,
		out:    out,
		logger: logger.With().Str("component", "Reporter").Logger(),
	}
}

// PrintExtensionBreakdown shows how many input URLs matched each catalog
// extension, before any network work starts.
func (r *Reporter) PrintExtensionBreakdown(counts map[string]int) {
	exts := make([]string, 0, len(counts))
	for ext := range counts {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	fmt.Fprintln(r.out, "\n=== URL Breakdown by Extension ===")
	fmt.Fprintln(r.out, "----------------------------------")
	for _, ext := range exts {
		fmt.Fprintf(r.out, "%-10s : %3d\n", ext, counts[ext])
	}
	fmt.Fprintln(r.out, "----------------------------------")
}

// Report prints the console summary and writes the configured file sinks.
func (r *Reporter) Report(accessible, inaccessible []*models.URLRecord, stats models.RunStatsSnapshot) {
	accessibleLines := formatLines(accessible)
	inaccessibleLines := formatLines(inaccessible)

	r.printSummary(accessibleLines, inaccessibleLines, stats)

	if r.cfg.TextOutputFile != "" {
		if err := r.writeText(accessibleLines, inaccessibleLines); err != nil {
			r.logger.Error().Err(err).Str("path", r.cfg.TextOutputFile).Msg("Failed to write text report")
		} else {
			fmt.Fprintf(r.out, "\nResults saved to %s\n", r.cfg.TextOutputFile)
		}
	}

	if r.cfg.JSONOutputFile != "" {
		if err := r.writeJSON(accessible, inaccessible, stats); err != nil {
			r.logger.Error().Err(err).Str("path", r.cfg.JSONOutputFile).Msg("Failed to write JSON report")
		} else {
			fmt.Fprintf(r.out, "JSON results saved to %s\n", r.cfg.JSONOutputFile)
		}
	}
}

func (r *Reporter) printSummary(accessible, inaccessible []string, stats models.RunStatsSnapshot) {
	fmt.Fprintln(r.out, "\n=== Results ===")
	fmt.Fprintln(r.out, "Accessible URLs:")
	for _, line := range accessible {
		fmt.Fprintln(r.out, line)
	}
	fmt.Fprintln(r.out, "\nInaccessible URLs:")
	for _, line := range inaccessible {
		fmt.Fprintln(r.out, line)
	}

	fmt.Fprintln(r.out, "\n=== Summary Statistics ===")
	fmt.Fprintf(r.out, "Total URLs Processed: %d\n", stats.Total)
	fmt.Fprintf(r.out, "Accessible URLs: %d\n", stats.Accessible)
	fmt.Fprintf(r.out, "Inaccessible URLs: %d\n", stats.Inaccessible)
	fmt.Fprintf(r.out, "URLs with Sensitive Data: %d\n", stats.Sensitive)
}

func (r *Reporter) writeText(accessible, inaccessible []string) error {
	f, err := os.Create(r.cfg.TextOutputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, line := range append(accessible, inaccessible...) {
		if _, err := fmt.Fprintln(f, line); err != nil {
			return err
		}
	}
	return nil
}

// jsonDocument is the on-disk shape of a completed run.
type jsonDocument struct {
	Accessible   []*models.URLRecord     `json:"accessible"`
	Inaccessible []*models.URLRecord     `json:"inaccessible"`
	Stats        models.RunStatsSnapshot `json:"stats"`
}

func (r *Reporter) writeJSON(accessible, inaccessible []*models.URLRecord, stats models.RunStatsSnapshot) error {
	doc := jsonDocument{
		Accessible:   accessible,
		Inaccessible: inaccessible,
		Stats:        stats,
	}
	// Empty buckets serialize as [] rather than null.
	if doc.Accessible == nil {
		doc.Accessible = []*models.URLRecord{}
	}
	if doc.Inaccessible == nil {
		doc.Inaccessible = []*models.URLRecord{}
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.cfg.JSONOutputFile, payload, 0o644)
}

// formatLines renders one listing line per record, sorted for stable output.
func formatLines(records []*models.URLRecord) []string {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, formatRecord(rec))
	}
	sort.Strings(lines)
	return lines
}

func formatRecord(rec *models.URLRecord) string {
	var line string
	switch {
	case rec.Accessible():
		line = fmt.Sprintf("%s - 200 OK (Accessible)", rec.URL)
	case rec.Snapshot != "":
		line = fmt.Sprintf("%s - %s (Latest Snapshot: %s)", rec.URL, rec.ErrorDetail(), rec.Snapshot)
	default:
		line = fmt.Sprintf("%s - %s (No Snapshot Available)", rec.URL, rec.ErrorDetail())
	}

	if rec.Analysis != "" {
		line += fmt.Sprintf("\n    AI Analysis: %s", rec.Analysis)
	}
	return line
}
