package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/forPelevin/autocut/internal/logging"
	"github.com/forPelevin/autocut/internal/pipeline"
)

func run(cmd *cobra.Command, input string) error {
	outDir, _ := cmd.Flags().GetString("out")
	configPath, _ := cmd.Flags().GetString("config")
	fps, _ := cmd.Flags().GetFloat64("fps")
	styleProfile, _ := cmd.Flags().GetString("style-profile")
	verbose, _ := cmd.Flags().GetBool("verbose")

	logging.Init(verbose)

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	cfg := pipeline.Config{
		BundlePath:   absIn,
		OutDir:       outDir,
		ConfigPath:   configPath,
		FrameRate:    fps,
		StyleProfile: styleProfile,
		RedisURL:     os.Getenv("REDIS_URL"),
		Logger:       logging.WithComponent("pipeline"),
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return pipeline.Run(ctx, cfg)
}
