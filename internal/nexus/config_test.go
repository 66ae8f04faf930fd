package nexus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cacheSection struct {
	Backend string        `env:"TEST_CACHE_BACKEND" env-default:"memory" validate:"oneof=memory redis"`
	TTL     time.Duration `env:"TEST_CACHE_TTL" env-default:"30s"`
}

type testConfig struct {
	Cache     cacheSection
	Host      string `env:"TEST_APP_HOST" env-default:"localhost" yaml:"host"`
	SecretKey string `env:"TEST_SECRET_KEY" validate:"required"`
}

func TestLoader_ReadsEnvironment(t *testing.T) {
	t.Setenv("TEST_SECRET_KEY", "k9Vb2xQe7LmN4rTz8WpY3sJd6HfA1cUo")
	t.Setenv("TEST_CACHE_BACKEND", "redis")

	cfg := &testConfig{}
	err := NewLoader(WithOnlyEnvironment()).Load(cfg)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
}

func TestLoader_ValidationFailure(t *testing.T) {
	t.Setenv("TEST_SECRET_KEY", "k9Vb2xQe7LmN4rTz8WpY3sJd6HfA1cUo")
	t.Setenv("TEST_CACHE_BACKEND", "memcached")

	err := NewLoader(WithOnlyEnvironment()).Load(&testConfig{})

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeValidation, cfgErr.Code)
}

func TestLoader_SecurityCheckInspectsNestedStructs(t *testing.T) {
	t.Setenv("TEST_SECRET_KEY", "changeme-changeme-changeme-12345")

	err := NewLoader(WithOnlyEnvironment()).Load(&testConfig{})

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeSecurityCheck, cfgErr.Code)
	assert.Contains(t, cfgErr.Error(), "SecretKey")
}

func TestLoader_RejectsNonPointer(t *testing.T) {
	err := NewLoader(WithOnlyEnvironment()).Load(testConfig{})

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeInvalidType, cfgErr.Code)
}

func TestLoader_FileErrors(t *testing.T) {
	t.Setenv("TEST_SECRET_KEY", "k9Vb2xQe7LmN4rTz8WpY3sJd6HfA1cUo")

	dir := t.TempDir()
	file := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(file, []byte("host: api.internal\n"), 0o600))
	require.NoError(t, NewLoader(WithFileName(file)).Load(&testConfig{}))

	missing := NewLoader(WithFileName(filepath.Join(dir, "missing.yml"))).Load(&testConfig{})
	var cfgErr *ConfigError
	require.True(t, errors.As(missing, &cfgErr))
	assert.Equal(t, ErrCodeFileNotFound, cfgErr.Code)
}
