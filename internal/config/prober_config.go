package config

// ProberConfig defines retry behavior for the liveness prober.
type ProberConfig struct {
	// Total attempts per URL, including the first one.
	MaxAttempts int `json:"max_attempts,omitempty" yaml:"max_attempts,omitempty" validate:"omitempty,min=1,max=10"`
	// Fixed delay in seconds between attempts.
	RetryDelaySecs int `json:"retry_delay_secs,omitempty" yaml:"retry_delay_secs,omitempty" validate:"omitempty,min=0,max=300"`
}

// NewDefaultProberConfig creates default prober configuration.
func NewDefaultProberConfig() ProberConfig {
	return ProberConfig{
		MaxAttempts:    3,
		RetryDelaySecs: 2,
	}
}
