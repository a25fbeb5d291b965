package reporter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aiwolfie/waybackwolf/internal/config"
	"github.com/aiwolfie/waybackwolf/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() ([]*models.URLRecord, []*models.URLRecord, models.RunStatsSnapshot) {
	accessible := []*models.URLRecord{
		{URL: "http://a.com/dump.sql", StatusCode: 200, Analysis: "Contains sensitive credentials.", Sensitive: true},
	}
	inaccessible := []*models.URLRecord{
		{URL: "http://a.com/old.pdf", StatusCode: 404, Snapshot: "http://web.archive.org/web/2024/http://a.com/old.pdf"},
		{URL: "http://b.com/down.txt", Error: "connection refused (failed after 3 retries)"},
	}
	stats := models.RunStatsSnapshot{Total: 3, Accessible: 1, Inaccessible: 2, Sensitive: 1}
	return accessible, inaccessible, stats
}

func TestReport_ConsoleSummary(t *testing.T) {
	var out bytes.Buffer
	r := New(config.ReporterConfig{}, &out, zerolog.Nop())

	accessible, inaccessible, stats := sampleRecords()
	r.Report(accessible, inaccessible, stats)

	text := out.String()
	assert.Contains(t, text, "=== Results ===")
	assert.Contains(t, text, "http://a.com/dump.sql - 200 OK (Accessible)")
	assert.Contains(t, text, "AI Analysis: Contains sensitive credentials.")
	assert.Contains(t, text, "http://a.com/old.pdf - 404 (Latest Snapshot: http://web.archive.org/web/2024/http://a.com/old.pdf)")
	assert.Contains(t, text, "http://b.com/down.txt - connection refused (failed after 3 retries) (No Snapshot Available)")
	assert.Contains(t, text, "Total URLs Processed: 3")
	assert.Contains(t, text, "URLs with Sensitive Data: 1")
}

func TestReport_TextSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	var out bytes.Buffer
	r := New(config.ReporterConfig{TextOutputFile: path}, &out, zerolog.Nop())

	accessible, inaccessible, stats := sampleRecords()
	r.Report(accessible, inaccessible, stats)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	// Accessible lines come before inaccessible ones.
	okIdx := strings.Index(content, "dump.sql")
	goneIdx := strings.Index(content, "old.pdf")
	require.GreaterOrEqual(t, okIdx, 0)
	require.GreaterOrEqual(t, goneIdx, 0)
	assert.Less(t, okIdx, goneIdx)
	assert.Contains(t, out.String(), "Results saved to "+path)
}

func TestReport_JSONSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	var out bytes.Buffer
	r := New(config.ReporterConfig{JSONOutputFile: path}, &out, zerolog.Nop())

	accessible, inaccessible, stats := sampleRecords()
	r.Report(accessible, inaccessible, stats)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Accessible []struct {
			URL      string `json:"url"`
			Status   int    `json:"status"`
			Analysis string `json:"ai_analysis"`
		} `json:"accessible"`
		Inaccessible []struct {
			URL      string `json:"url"`
			Status   int    `json:"status"`
			Error    string `json:"error"`
			Snapshot string `json:"snapshot"`
		} `json:"inaccessible"`
		Stats struct {
			Total     int64 `json:"total"`
			Sensitive int64 `json:"sensitive"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Len(t, doc.Accessible, 1)
	assert.Equal(t, "http://a.com/dump.sql", doc.Accessible[0].URL)
	assert.Equal(t, 200, doc.Accessible[0].Status)
	assert.Equal(t, "Contains sensitive credentials.", doc.Accessible[0].Analysis)

	require.Len(t, doc.Inaccessible, 2)
	assert.Equal(t, int64(3), doc.Stats.Total)
	assert.Equal(t, int64(1), doc.Stats.Sensitive)
}

func TestReport_JSONEmptyBucketsAreArrays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	var out bytes.Buffer
	r := New(config.ReporterConfig{JSONOutputFile: path}, &out, zerolog.Nop())

	r.Report(nil, nil, models.RunStatsSnapshot{})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"accessible": []`)
	assert.Contains(t, string(data), `"inaccessible": []`)
}

func TestReport_SinkFailureDoesNotPanic(t *testing.T) {
	var out bytes.Buffer
	r := New(config.ReporterConfig{
		TextOutputFile: filepath.Join(t.TempDir(), "missing", "results.txt"),
	}, &out, zerolog.Nop())

	accessible, inaccessible, stats := sampleRecords()
	r.Report(accessible, inaccessible, stats)

	assert.NotContains(t, out.String(), "Results saved to")
}

func TestPrintExtensionBreakdown(t *testing.T) {
	var out bytes.Buffer
	r := New(config.ReporterConfig{}, &out, zerolog.Nop())

	r.PrintExtensionBreakdown(map[string]int{"sql": 12, "pdf": 3, "env": 1})

	text := out.String()
	assert.Contains(t, text, "=== URL Breakdown by Extension ===")
	// Sorted by extension name.
	assert.Less(t, strings.Index(text, "env"), strings.Index(text, "pdf"))
	assert.Less(t, strings.Index(text, "pdf"), strings.Index(text, "sql"))
}
