// Package style applies an optional learned-style profile to cut candidates.
//
// The hook is intentionally narrow: only scene-change confidence scaling is
// wired. Deeper cadence matching stays an extension point.
package style

import (
	"github.com/forPelevin/autocut/internal/types"
)

// Adjust rescales scene-change candidate confidence by the profile's
// scene-change correlation, clamped to [0,1]. A nil profile or a zero
// correlation is a pass-through. The input slice is not mutated.
func Adjust(cands []types.CutCandidate, profile *types.LearnedStyle) []types.CutCandidate {
	if profile == nil || profile.CutPattern.SceneChangeCorrelation == 0 {
		return cands
	}
	factor := profile.CutPattern.SceneChangeCorrelation

	out := make([]types.CutCandidate, len(cands))
	copy(out, cands)
	for i := range out {
		if out[i].Type != types.CutSceneChange {
			continue
		}
		c := out[i].Confidence * factor
		if c < 0 {
			c = 0
		}
		if c > 1 {
			c = 1
		}
		out[i].Confidence = c
	}
	return out
}
