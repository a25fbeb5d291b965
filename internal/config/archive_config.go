package config

// ArchiveConfig defines the archive service endpoint and retry behavior for
// snapshot resolution.
type ArchiveConfig struct {
	APIURL string `json:"api_url,omitempty" yaml:"api_url,omitempty" validate:"omitempty,url"`
	// Total lookup attempts per URL.
	MaxAttempts int `json:"max_attempts,omitempty" yaml:"max_attempts,omitempty" validate:"omitempty,min=1,max=10"`
	// Backoff grows linearly: base * attempt number.
	BackoffBaseSecs int `json:"backoff_base_secs,omitempty" yaml:"backoff_base_secs,omitempty" validate:"omitempty,min=0,max=300"`
}

// NewDefaultArchiveConfig creates default archive resolver configuration.
func NewDefaultArchiveConfig() ArchiveConfig {
	return ArchiveConfig{
		APIURL:          "https://archive.org/wayback/available",
		MaxAttempts:     3,
		BackoffBaseSecs: 2,
	}
}
