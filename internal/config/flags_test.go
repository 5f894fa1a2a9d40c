package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags_AllFlags tests that every flag is mapped to its config field.
func TestParseFlags_AllFlags(t *testing.T) {
	cfg := parseFlags([]string{
		"-p", "9001",
		"-d", "mongodb://localhost:27017",
		"-n", "credvault",
	})

	require.NotNil(t, cfg)
	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.URL)
	assert.Equal(t, "credvault", cfg.Storage.DB.Name)
}

// TestParseFlags_NoFlags tests that an empty argument list yields zero values.
func TestParseFlags_NoFlags(t *testing.T) {
	cfg := parseFlags(nil)

	require.NotNil(t, cfg)
	assert.Zero(t, cfg.Server.Port)
	assert.Empty(t, cfg.Storage.DB.URL)
	assert.Empty(t, cfg.Storage.DB.Name)
}

// TestParseFlags_UnknownFlag tests that unknown flags do not panic and the
// recognised values parsed before the failure are preserved.
func TestParseFlags_UnknownFlag(t *testing.T) {
	cfg := parseFlags([]string{"-d", "mongodb://localhost", "-unknown", "x"})

	require.NotNil(t, cfg)
	assert.Equal(t, "mongodb://localhost", cfg.Storage.DB.URL)
}
