package config

// ReporterConfig defines the result sinks. Empty paths disable the
// corresponding sink; the console summary is always printed.
type ReporterConfig struct {
	TextOutputFile string `json:"text_output_file,omitempty" yaml:"text_output_file,omitempty"`
	JSONOutputFile string `json:"json_output_file,omitempty" yaml:"json_output_file,omitempty"`
}

// NewDefaultReporterConfig creates default reporter configuration.
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{}
}
