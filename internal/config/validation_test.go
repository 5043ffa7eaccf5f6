package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AllDefaults_Pass(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_Search(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantKey string
	}{
		{"Empty HiddenPrefix Fails", func(c *Config) { c.Search.HiddenPrefix = "" }, "hidden_prefix"},
		{"Unknown BinaryDetection Fails", func(c *Config) { c.Search.BinaryDetection = "skip" }, "binary_detection"},
		{"Zero BinarySampleSize Fails", func(c *Config) { c.Search.BinarySampleSize = 0 }, "binary_sample_size"},
		{"Tiny ReadBufferSize Fails", func(c *Config) { c.Search.ReadBufferSize = 8 }, "read_buffer_size"},
		{"Negative MaxLineBytes Fails", func(c *Config) { c.Search.MaxLineBytes = -1 }, "max_line_bytes"},
		{"Empty Include Pattern Fails", func(c *Config) { c.Search.Include = []string{"*.go", ""} }, "search.include"},
		{"Empty Exclude Pattern Fails", func(c *Config) { c.Search.Exclude = []string{""} }, "search.exclude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}

	t.Run("Quit BinaryDetection Passes", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Search.BinaryDetection = BinaryDetectionQuit
		assert.NoError(t, cfg.Validate())
	})
}

func TestValidate_UI(t *testing.T) {
	t.Run("Zero MaxResults Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.UI.MaxResults = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "max_results")
	})
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.HiddenPrefix = ""
	cfg.UI.MaxResults = 0

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "hidden_prefix")
	assert.Contains(t, err.Error(), "max_results")
}
