package config

// GlobalConfig contains all configuration sections for the application.
type GlobalConfig struct {
	InputFile    string `json:"input_file,omitempty" yaml:"input_file,omitempty"`
	DomainFilter string `json:"domain_filter,omitempty" yaml:"domain_filter,omitempty"`
	Interactive  bool   `json:"interactive" yaml:"interactive"`

	LogConfig        LogConfig        `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	HTTPClientConfig HTTPClientConfig `json:"http_client_config,omitempty" yaml:"http_client_config,omitempty"`
	ProberConfig     ProberConfig     `json:"prober_config,omitempty" yaml:"prober_config,omitempty"`
	ArchiveConfig    ArchiveConfig    `json:"archive_config,omitempty" yaml:"archive_config,omitempty"`
	StorageConfig    StorageConfig    `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
	AnalysisConfig   AnalysisConfig   `json:"analysis_config,omitempty" yaml:"analysis_config,omitempty"`
	LimiterConfig    LimiterConfig    `json:"limiter_config,omitempty" yaml:"limiter_config,omitempty"`
	ReporterConfig   ReporterConfig   `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values.
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		LogConfig:        NewDefaultLogConfig(),
		HTTPClientConfig: NewDefaultHTTPClientConfig(),
		ProberConfig:     NewDefaultProberConfig(),
		ArchiveConfig:    NewDefaultArchiveConfig(),
		StorageConfig:    NewDefaultStorageConfig(),
		AnalysisConfig:   NewDefaultAnalysisConfig(),
		LimiterConfig:    NewDefaultLimiterConfig(),
		ReporterConfig:   NewDefaultReporterConfig(),
	}
}
