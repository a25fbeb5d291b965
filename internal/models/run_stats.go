package models

import "sync/atomic"

// RunStats holds the process-wide counters for a single run. Counters are
// incremented concurrently as URLs reach their terminal states, so all
// mutation goes through atomic operations.
type RunStats struct {
	total        atomic.Int64
	accessible   atomic.Int64
	inaccessible atomic.Int64
	sensitive    atomic.Int64
}

func (s *RunStats) RecordAccessible() {
	s.total.Add(1)
	s.accessible.Add(1)
}

func (s *RunStats) RecordInaccessible() {
	s.total.Add(1)
	s.inaccessible.Add(1)
}

func (s *RunStats) RecordSensitive() {
	s.sensitive.Add(1)
}

// Snapshot returns a plain copy suitable for serialization. Read it only
// after all URLs have completed, or accept a point-in-time view.
func (s *RunStats) Snapshot() RunStatsSnapshot {
	return RunStatsSnapshot{
		Total:        s.total.Load(),
		Accessible:   s.accessible.Load(),
		Inaccessible: s.inaccessible.Load(),
		Sensitive:    s.sensitive.Load(),
	}
}

// RunStatsSnapshot is the serializable form of RunStats.
type RunStatsSnapshot struct {
	Total        int64 `json:"total"`
	Accessible   int64 `json:"accessible"`
	Inaccessible int64 `json:"inaccessible"`
	Sensitive    int64 `json:"sensitive"`
}
