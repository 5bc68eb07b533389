// Package bundle reads an analysis bundle file: the JSON document the Video
// Analysis and Speech Recognition services produce for one source video.
package bundle

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/forPelevin/autocut/internal/types"
)

// Bundle is the on-disk document the external services hand off.
type Bundle struct {
	Video  string               `json:"video"`
	Vision types.VideoAnalysis  `json:"video_analysis"`
	Speech types.SpeechAnalysis `json:"speech_analysis"`
}

// Adapter serves a loaded bundle through the AnalysisSource port.
type Adapter struct {
	b Bundle
}

// Load parses the bundle at path and validates the parts the pure stages
// depend on.
func Load(path string) (*Adapter, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("parse bundle %s: %w", path, err)
	}
	if err := validate(b); err != nil {
		return nil, err
	}
	return &Adapter{b: b}, nil
}

// VideoPath returns the source video the bundle was produced from.
func (a *Adapter) VideoPath() string { return a.b.Video }

func (a *Adapter) VideoAnalysis(context.Context) (types.VideoAnalysis, error) {
	return a.b.Vision, nil
}

func (a *Adapter) SpeechAnalysis(context.Context) (types.SpeechAnalysis, error) {
	return a.b.Speech, nil
}

func validate(b Bundle) error {
	if b.Vision.Duration <= 0 {
		return types.Validationf("video_analysis.duration", "must be > 0, got %v", b.Vision.Duration)
	}
	for i, s := range b.Vision.Silences {
		if s.End < s.Start || s.Start < 0 {
			return types.Validationf(fmt.Sprintf("video_analysis.silences[%d]", i), "malformed interval [%v, %v]", s.Start, s.End)
		}
	}
	for i, f := range b.Speech.FillerWords {
		if f.End < f.Start || f.Start < 0 {
			return types.Validationf(fmt.Sprintf("speech_analysis.filler_words[%d]", i), "malformed interval [%v, %v]", f.Start, f.End)
		}
	}
	return nil
}
