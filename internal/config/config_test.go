package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/forPelevin/autocut/internal/types"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autocut.yaml")
	doc := `
detection:
  merge_threshold: 0.5
  use_scene_changes_for_cuts: true
export:
  frame_rate: 24
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Detection.MergeThreshold != 0.5 {
		t.Fatalf("merge threshold = %v", cfg.Detection.MergeThreshold)
	}
	if !cfg.Detection.UseSceneChangesForCuts {
		t.Fatalf("scene cuts not enabled")
	}
	if cfg.Export.FrameRate != 24 {
		t.Fatalf("frame rate = %v", cfg.Export.FrameRate)
	}
	// Untouched fields keep their defaults.
	if cfg.Detection.MinConfidence != 0.5 {
		t.Fatalf("min confidence = %v", cfg.Detection.MinConfidence)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults")
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative merge threshold", func(c *Config) { c.Detection.MergeThreshold = -1 }},
		{"confidence above one", func(c *Config) { c.Detection.MinConfidence = 1.5 }},
		{"missing frame rate", func(c *Config) { c.Export.FrameRate = 0 }},
		{"zero width", func(c *Config) { c.Export.Width = 0 }},
		{"inverted wpm band", func(c *Config) {
			c.Detection.SpeechRate.Enabled = true
			c.Detection.SpeechRate.MinWPM = 200
			c.Detection.SpeechRate.MaxWPM = 100
		}},
		{"inverted pause band", func(c *Config) {
			c.Detection.Pause.Enabled = true
			c.Detection.Pause.MinDuration = 3
			c.Detection.Pause.MaxDuration = 1
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			var cerr *types.ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
		})
	}
}
