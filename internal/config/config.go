package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/forPelevin/autocut/internal/types"
)

// Config holds all engine configuration. Values map 1:1 to the YAML config
// file; Default() supplies the values used when no file is given.
type Config struct {
	Detection DetectionConfig `yaml:"detection"`
	Export    ExportConfig    `yaml:"export"`
	Style     StyleConfig     `yaml:"style"`
}

// DetectionConfig tunes the cut-candidate detectors and timeline rules.
type DetectionConfig struct {
	SilenceMinDuration     float64 `yaml:"silence_min_duration"`
	CutBuffer              float64 `yaml:"cut_buffer"`
	MinClipDuration        float64 `yaml:"min_clip_duration"`
	MergeThreshold         float64 `yaml:"merge_threshold"`
	MinConfidence          float64 `yaml:"min_confidence"`
	UseSceneChangesForCuts bool    `yaml:"use_scene_changes_for_cuts"`
	SceneChangeBuffer      float64 `yaml:"scene_change_buffer"`

	SpeechRate SpeechRateConfig `yaml:"speech_rate"`
	Pause      PauseConfig      `yaml:"pause"`
	Sentiment  SentimentConfig  `yaml:"sentiment"`
}

type SpeechRateConfig struct {
	Enabled bool    `yaml:"enabled"`
	MinWPM  float64 `yaml:"min_wpm"`
	MaxWPM  float64 `yaml:"max_wpm"`
}

type PauseConfig struct {
	Enabled     bool    `yaml:"enabled"`
	MinDuration float64 `yaml:"min_duration"`
	MaxDuration float64 `yaml:"max_duration"`
}

type SentimentConfig struct {
	Enabled            bool    `yaml:"enabled"`
	MinSegmentDuration float64 `yaml:"min_segment_duration"`
}

// ExportConfig carries the frame-accurate export parameters.
type ExportConfig struct {
	FrameRate float64 `yaml:"frame_rate"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
}

// StyleConfig locates the optional learned-style profile store.
type StyleConfig struct {
	RedisURL string `yaml:"redis_url"`
	Profile  string `yaml:"profile"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		Detection: DetectionConfig{
			SilenceMinDuration: 0.3,
			CutBuffer:          0.1,
			MinClipDuration:    0.5,
			MergeThreshold:     0.3,
			MinConfidence:      0.5,
			SceneChangeBuffer:  0.5,
			SpeechRate: SpeechRateConfig{
				MinWPM: 100,
				MaxWPM: 200,
			},
			Pause: PauseConfig{
				MinDuration: 1.0,
				MaxDuration: 3.0,
			},
			Sentiment: SentimentConfig{
				MinSegmentDuration: 3.0,
			},
		},
		Export: ExportConfig{
			FrameRate: 30,
			Width:     1920,
			Height:    1080,
		},
	}
}

// Load reads configuration from path, applied on top of Default().
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the thresholds the pure stages rely on. Stages after this
// point assume validated configuration and never re-check.
func (c Config) Validate() error {
	d := c.Detection
	if d.SilenceMinDuration < 0 {
		return &types.ConfigError{Field: "detection.silence_min_duration", Reason: "must be >= 0"}
	}
	if d.CutBuffer < 0 {
		return &types.ConfigError{Field: "detection.cut_buffer", Reason: "must be >= 0"}
	}
	if d.MinClipDuration < 0 {
		return &types.ConfigError{Field: "detection.min_clip_duration", Reason: "must be >= 0"}
	}
	if d.MergeThreshold < 0 {
		return &types.ConfigError{Field: "detection.merge_threshold", Reason: "must be >= 0"}
	}
	if d.MinConfidence < 0 || d.MinConfidence > 1 {
		return &types.ConfigError{Field: "detection.min_confidence", Reason: "must be in [0,1]"}
	}
	if d.SceneChangeBuffer < 0 {
		return &types.ConfigError{Field: "detection.scene_change_buffer", Reason: "must be >= 0"}
	}
	if d.SpeechRate.Enabled && (d.SpeechRate.MinWPM <= 0 || d.SpeechRate.MaxWPM <= d.SpeechRate.MinWPM) {
		return &types.ConfigError{Field: "detection.speech_rate", Reason: "needs 0 < min_wpm < max_wpm"}
	}
	if d.Pause.Enabled && (d.Pause.MinDuration <= 0 || d.Pause.MaxDuration <= d.Pause.MinDuration) {
		return &types.ConfigError{Field: "detection.pause", Reason: "needs 0 < min_duration < max_duration"}
	}
	if c.Export.FrameRate <= 0 {
		return &types.ConfigError{Field: "export.frame_rate", Reason: "frame rate is required and must be > 0"}
	}
	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		return &types.ConfigError{Field: "export", Reason: "width and height must be > 0"}
	}
	return nil
}
