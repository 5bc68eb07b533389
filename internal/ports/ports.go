package ports

import (
	"context"

	"github.com/forPelevin/autocut/internal/types"
)

// AnalysisSource supplies the detector outputs the engine consumes. The media
// analysis itself (decoding, ASR) happens in external services; the engine
// only reads their results.
type AnalysisSource interface {
	VideoAnalysis(ctx context.Context) (types.VideoAnalysis, error)
	SpeechAnalysis(ctx context.Context) (types.SpeechAnalysis, error)
}

// StyleStore loads an optional learned-style profile. A missing profile is
// returned as (nil, nil): absence is the common case, not an error.
type StyleStore interface {
	Load(ctx context.Context, profile string) (*types.LearnedStyle, error)
}
