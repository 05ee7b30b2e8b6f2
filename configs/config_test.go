package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("WORKER_CONCURRENCY", "")
	t.Setenv("LINKEDIN_API_URL", "")
	t.Setenv("GENERATION_TIMEOUT_SECS", "")

	cfg := LoadConfig()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 10, cfg.WorkerConcurrency)
	assert.Equal(t, "https://api.linkedin.com", cfg.LinkedInAPIURL)
	assert.Equal(t, 60, cfg.GenerationTimeoutSecs)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("WORKER_CONCURRENCY", "4")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "not-a-number")
	t.Setenv("R2_BUCKET_NAME", "media")

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 4, cfg.WorkerConcurrency)
	assert.Equal(t, 100, cfg.MaxUploadSizeMB)
	assert.Equal(t, "media", cfg.R2.BucketName)
}

func TestConfig_ValidateSecretKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	assert.Error(t, LoadConfig().Validate())

	t.Setenv("SECRET_KEY", "too-short")
	assert.Error(t, LoadConfig().Validate())

	t.Setenv("SECRET_KEY", "0123456789abcdef0123456789abcdef0")
	assert.Error(t, LoadConfig().Validate())

	t.Setenv("SECRET_KEY", "0123456789abcdef0123456789abcdef")
	assert.NoError(t, LoadConfig().Validate())
}
