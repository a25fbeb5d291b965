package logger

import (
	"testing"

	"github.com/aiwolfie/waybackwolf/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultConfig(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogFile = "" // console only for the test

	logger, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNew_LevelParsing(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogFile = ""
	cfg.LogLevel = "debug"

	logger, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "chatty"

	_, err := New(cfg)
	assert.Error(t, err)
}
