package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil, "empty.hcl", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigFull(t *testing.T) {
	src := `
dim        = 5
seed       = 42
dictionary = "words.txt"

log {
  level  = "debug"
  format = "json"
}

gemini {
  project = env.GCP_PROJECT_ID
  model   = "gemini-2.5-pro"
}
`
	cfg, err := ParseConfig([]byte(src), "boggle.hcl", []string{"GCP_PROJECT_ID=my-project", "HOME=/root"})
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Dim)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "words.txt", cfg.Dictionary)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, GeminiConfig{Project: "my-project", Region: defaultRegion, Model: "gemini-2.5-pro"}, cfg.Gemini)
}

func TestParseConfigErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":       `dim = `,
		"unknown attr": `colour = "red"`,
		"bad dim":      `dim = 0`,
		"bad level":    "log {\n  level = \"loud\"\n}\n",
		"missing env":  "gemini {\n  project = env.NOPE\n}\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(src), "bad.hcl", nil)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boggle.hcl")
	require.NoError(t, os.WriteFile(path, []byte("dim = 3\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Dim)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Dim = 0
	cfg.LogFormat = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dim must be at least 1")
	assert.Contains(t, err.Error(), `unknown log format "xml"`)
}
