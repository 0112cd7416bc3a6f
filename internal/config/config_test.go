package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg := load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, "golang developer", cfg.Keyword)
	assert.Equal(t, "jobs.csv", cfg.OutputPath)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 30000, cfg.NavTimeoutMs)
	assert.Equal(t, 10000, cfg.WaitTimeoutMs)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `keyword: "site reliability engineer"
output_path: "out.csv"
headless: false
max_jobs: 5
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("could not write fixture: %v", err)
	}

	cfg := load(path)

	assert.Equal(t, "site reliability engineer", cfg.Keyword)
	assert.Equal(t, "out.csv", cfg.OutputPath)
	assert.False(t, cfg.Headless)
	assert.Equal(t, 5, cfg.MaxJobs)
	//untouched keys keep defaults
	assert.Equal(t, 30000, cfg.NavTimeoutMs)
}

func TestLoad_PacingClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `pacing_min_ms: 900
pacing_max_ms: 100
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("could not write fixture: %v", err)
	}

	cfg := load(path)

	assert.Equal(t, 900, cfg.PacingMinMs)
	assert.Equal(t, 900, cfg.PacingMaxMs)
}
