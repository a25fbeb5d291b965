package config

// StorageConfig defines where the durable content cache lives.
type StorageConfig struct {
	ContentCachePath string `json:"content_cache_path,omitempty" yaml:"content_cache_path,omitempty"`
}

// NewDefaultStorageConfig creates default storage configuration.
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		ContentCachePath: "waybackwolf_cache.db",
	}
}
