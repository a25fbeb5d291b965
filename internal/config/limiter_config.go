package config

// LimiterConfig holds the configured concurrency ceilings. The effective pool
// sizes are computed once at startup from system capacity and memory
// pressure; these values are upper bounds, never guarantees.
type LimiterConfig struct {
	MaxProbeWorkers   int `json:"max_probe_workers,omitempty" yaml:"max_probe_workers,omitempty" validate:"omitempty,min=1,max=1000"`
	MaxArchiveWorkers int `json:"max_archive_workers,omitempty" yaml:"max_archive_workers,omitempty" validate:"omitempty,min=1,max=1000"`
	// Memory usage fraction above which effective concurrency is halved.
	MemoryThreshold float64 `json:"memory_threshold,omitempty" yaml:"memory_threshold,omitempty" validate:"omitempty,gt=0,lte=1"`
}

// NewDefaultLimiterConfig creates default limiter configuration.
func NewDefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		MaxProbeWorkers:   10,
		MaxArchiveWorkers: 5,
		MemoryThreshold:   0.8,
	}
}
