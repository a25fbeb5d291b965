package models

import (
	"strconv"
	"time"
)

// URLRecord is the per-URL entity that accumulates state as it moves through
// the pipeline. The raw URL string is the identity key; every other field is
// written exactly once by the stage that owns it.
type URLRecord struct {
	URL        string    `json:"url"`
	Extension  string    `json:"-"`
	StatusCode int       `json:"status"`
	Error      string    `json:"error,omitempty"`
	Snapshot   string    `json:"snapshot,omitempty"`
	Analysis   string    `json:"ai_analysis,omitempty"`
	Sensitive  bool      `json:"-"`
	CheckedAt  time.Time `json:"-"`
}

// Accessible reports whether the live check concluded the URL is still up.
// A status of exactly 200 is the sole accessible condition.
func (r *URLRecord) Accessible() bool {
	return r.StatusCode == 200
}

// ErrorDetail returns the diagnostic string used in the inaccessible listing:
// the status code when one was received, otherwise the categorized error.
func (r *URLRecord) ErrorDetail() string {
	if r.StatusCode != 0 {
		return strconv.Itoa(r.StatusCode)
	}
	return r.Error
}
