package usecase

import (
	"github.com/forPelevin/autocut/internal/config"
	"github.com/forPelevin/autocut/internal/domain/candidates"
	"github.com/forPelevin/autocut/internal/domain/style"
	"github.com/forPelevin/autocut/internal/domain/timeline"
	"github.com/forPelevin/autocut/internal/types"
)

// Input carries the already-validated collaborator outputs into the pure
// transformation stages.
type Input struct {
	Video  types.VideoAnalysis
	Speech types.SpeechAnalysis
	Style  *types.LearnedStyle
	Cfg    config.DetectionConfig
}

// Result is the reconciled edit timeline the exporter consumes read-only.
type Result struct {
	Candidates      []types.CutCandidate
	KeepClips       []types.KeepClip
	DroppedDuration float64
	Stats           types.CutStats
}

// Run executes the detection and reconciliation stages in order: generate,
// merge, filter, style-adjust, complement, statistics. Every stage is a pure
// function over immutable inputs; given validated inputs none of them fail
// except the sorted-input contract of the merge, which Generate satisfies.
func Run(in Input) (Result, error) {
	cands := candidates.Generate(in.Video, in.Speech, in.Cfg)

	merged, err := candidates.Merge(cands, in.Cfg.MergeThreshold)
	if err != nil {
		return Result{}, err
	}

	kept := candidates.Filter(merged, in.Cfg.MinConfidence)
	kept = style.Adjust(kept, in.Style)

	clips, dropped := timeline.Complement(kept, in.Video.Duration, in.Cfg.MinClipDuration)
	stats := timeline.ComputeStats(kept, clips, in.Video.Duration)

	return Result{
		Candidates:      kept,
		KeepClips:       clips,
		DroppedDuration: dropped,
		Stats:           stats,
	}, nil
}
