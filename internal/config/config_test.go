package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvprof/domain/table"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "CSV_MAX_SIZE_MB", "CSV_PREVIEW_ROWS", "CSV_ADVANCED_STATS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, table.DefaultMaxSizeMB, cfg.Processing.MaxSizeMB)
	assert.Equal(t, table.DefaultPreviewRows, cfg.Processing.PreviewRows)
	assert.True(t, cfg.Processing.AdvancedStats)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CSV_MAX_SIZE_MB", "25")
	t.Setenv("CSV_PREVIEW_ROWS", "10")
	t.Setenv("CSV_ADVANCED_STATS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 25, cfg.Processing.MaxSizeMB)
	assert.Equal(t, 10, cfg.Processing.PreviewRows)
	assert.False(t, cfg.Processing.AdvancedStats)
}

func TestLoadRejectsBadLimits(t *testing.T) {
	t.Setenv("CSV_MAX_SIZE_MB", "0")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("CSV_MAX_SIZE_MB", "10")
	t.Setenv("CSV_PREVIEW_ROWS", "-1")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("CSV_MAX_SIZE_MB", "lots")
	t.Setenv("CSV_ADVANCED_STATS", "sure")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, table.DefaultMaxSizeMB, cfg.Processing.MaxSizeMB)
	assert.True(t, cfg.Processing.AdvancedStats)
}

func TestProcessOptionsConversion(t *testing.T) {
	cfg := &Config{
		Processing: ProcessingConfig{MaxSizeMB: 2, PreviewRows: 7, AdvancedStats: true},
	}
	opts := cfg.ProcessOptions()

	assert.Equal(t, 2*1024*1024, opts.MaxSizeBytes)
	assert.Equal(t, 7, opts.PreviewRows)
	assert.True(t, opts.AdvancedStats)
}
