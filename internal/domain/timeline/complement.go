// Package timeline reconstructs the keep timeline from the complement of the
// actual cuts and derives aggregate statistics over the result.
package timeline

import (
	"github.com/forPelevin/autocut/internal/types"
)

// Complement computes the keep clips: the spans of [0, totalDuration] not
// covered by any non-marker cut. Complement fragments shorter than
// minClipDuration are silently dropped; their total is returned as dropped
// so callers can account for the shrinkage (it is not redistributed to
// neighbors).
//
// Candidates must be sorted by start. Markers are ignored: they never cut.
// With zero actual cuts the whole timeline is kept as a single clip,
// regardless of minClipDuration.
func Complement(cands []types.CutCandidate, totalDuration, minClipDuration float64) (clips []types.KeepClip, dropped float64) {
	cuts := actualCuts(cands)
	if len(cuts) == 0 {
		return []types.KeepClip{{Start: 0, End: totalDuration, Duration: totalDuration}}, 0
	}

	cursor := 0.0
	for _, cut := range cuts {
		if cut.Start > cursor {
			span := cut.Start - cursor
			if span >= minClipDuration {
				clips = append(clips, types.KeepClip{Start: cursor, End: cut.Start, Duration: span})
			} else {
				dropped += span
			}
		}
		if cut.End > cursor {
			cursor = cut.End
		}
	}
	if cursor < totalDuration {
		span := totalDuration - cursor
		if span >= minClipDuration {
			clips = append(clips, types.KeepClip{Start: cursor, End: totalDuration, Duration: span})
		} else {
			dropped += span
		}
	}
	return clips, dropped
}

func actualCuts(cands []types.CutCandidate) []types.CutCandidate {
	out := make([]types.CutCandidate, 0, len(cands))
	for _, c := range cands {
		if !c.IsMarker {
			out = append(out, c)
		}
	}
	return out
}
