package config

// HTTPClientConfig holds the shared HTTP transport settings used by the
// prober, the archive resolver and the content fetcher.
type HTTPClientConfig struct {
	ConnectTimeoutSecs int  `json:"connect_timeout_secs,omitempty" yaml:"connect_timeout_secs,omitempty" validate:"omitempty,min=1,max=300"`
	ReadTimeoutSecs    int  `json:"read_timeout_secs,omitempty" yaml:"read_timeout_secs,omitempty" validate:"omitempty,min=1,max=600"`
	MaxRedirects       int  `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty" validate:"omitempty,min=0,max=30"`
	InsecureSkipVerify bool `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
}

// NewDefaultHTTPClientConfig returns the default HTTP client configuration.
func NewDefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		ConnectTimeoutSecs: 5,
		ReadTimeoutSecs:    10,
		MaxRedirects:       10,
	}
}
