package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/forPelevin/autocut/internal/config"
	"github.com/forPelevin/autocut/internal/export"
	"github.com/forPelevin/autocut/internal/ports"
	"github.com/forPelevin/autocut/internal/ports/adapters/bundle"
	"github.com/forPelevin/autocut/internal/ports/adapters/styleredis"
	"github.com/forPelevin/autocut/internal/types"
	"github.com/forPelevin/autocut/internal/usecase"
)

// Config wires one engine invocation: where the analysis bundle is, where
// artifacts go, and which overrides apply on top of the config file.
type Config struct {
	BundlePath string
	OutDir     string
	ConfigPath string

	// FrameRate overrides the config file when > 0.
	FrameRate float64

	// StyleProfile selects an optional learned-style profile; empty skips
	// the style store entirely.
	StyleProfile string
	RedisURL     string

	Logger zerolog.Logger
}

func (c Config) Validate() error {
	if c.BundlePath == "" {
		return errors.New("bundle path is empty")
	}
	if _, err := os.Stat(c.BundlePath); err != nil {
		return fmt.Errorf("stat bundle: %w", err)
	}
	if c.StyleProfile != "" && c.RedisURL == "" {
		return errors.New("style profile requires a redis url")
	}
	return nil
}

// Run executes the whole engine once: load inputs, run the pure stages,
// export every artifact. Any validation failure aborts the remaining steps;
// there is no partial-result recovery.
func Run(ctx context.Context, cfg Config) error {
	log := cfg.Logger

	appCfg, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return err
	}
	if cfg.FrameRate > 0 {
		appCfg.Export.FrameRate = cfg.FrameRate
	}
	if err := appCfg.Validate(); err != nil {
		return err
	}

	src, err := bundle.Load(cfg.BundlePath)
	if err != nil {
		return err
	}

	video, err := src.VideoAnalysis(ctx)
	if err != nil {
		return err
	}
	speech, err := src.SpeechAnalysis(ctx)
	if err != nil {
		return err
	}
	log.Info().
		Float64("duration", video.Duration).
		Int("silences", len(video.Silences)).
		Int("scene_changes", len(video.SceneChanges)).
		Int("segments", len(speech.Segments)).
		Msg("analysis loaded")

	learned, err := loadStyle(ctx, cfg, log)
	if err != nil {
		return err
	}

	res, err := usecase.Run(usecase.Input{
		Video:  video,
		Speech: speech,
		Style:  learned,
		Cfg:    appCfg.Detection,
	})
	if err != nil {
		return err
	}
	log.Info().
		Int("candidates", res.Stats.CandidateCount).
		Int("markers", res.Stats.MarkerCount).
		Int("keep_clips", len(res.KeepClips)).
		Float64("dropped", res.DroppedDuration).
		Str("reduction", res.Stats.ReductionRate).
		Msg("timeline reconciled")

	exp, err := export.New(appCfg.Export)
	if err != nil {
		return err
	}
	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "out"
	}
	paths, err := exp.WriteAll(outDir, export.Input{
		VideoPath:  src.VideoPath(),
		Candidates: res.Candidates,
		KeepClips:  res.KeepClips,
		Stats:      res.Stats,
		Captions:   speech.Captions,
	})
	if err != nil {
		return err
	}
	log.Info().
		Str("timeline", paths.TimelineXML).
		Str("edl", paths.EDL).
		Str("srt", paths.SRT).
		Str("snapshot", paths.Snapshot).
		Msg("artifacts written")
	return nil
}

func loadStyle(ctx context.Context, cfg Config, log zerolog.Logger) (*types.LearnedStyle, error) {
	if cfg.StyleProfile == "" {
		return nil, nil
	}
	store, err := styleredis.New(ctx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	learned, err := store.Load(ctx, cfg.StyleProfile)
	if err != nil {
		return nil, err
	}
	if learned == nil {
		log.Info().Str("profile", cfg.StyleProfile).Msg("style profile not found; running without adjustment")
	}
	return learned, nil
}

// ensure the adapters satisfy the ports
var _ ports.AnalysisSource = (*bundle.Adapter)(nil)
var _ ports.StyleStore = (*styleredis.Adapter)(nil)
