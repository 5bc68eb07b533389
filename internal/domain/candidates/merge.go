package candidates

import (
	"github.com/forPelevin/autocut/internal/types"
)

// Merge consolidates overlapping and near-adjacent non-marker candidates into
// single spans with a fold over the sorted sequence. Two candidates fuse when
// the gap between them is at most threshold (a positive gap tolerance, not
// just overlap). Markers pass through untouched: they are never merged into
// and never absorb a neighbor.
//
// Input must be sorted by start ascending; unsorted input is rejected.
// Merging an already-merged list returns it unchanged.
func Merge(cands []types.CutCandidate, threshold float64) ([]types.CutCandidate, error) {
	if !sortedByStart(cands) {
		return nil, types.Validationf("candidates", "not sorted by start; merge requires sorted input")
	}
	if len(cands) == 0 {
		return nil, nil
	}

	out := make([]types.CutCandidate, 0, len(cands))
	cur := cands[0]
	for _, next := range cands[1:] {
		switch {
		case cur.IsMarker || next.IsMarker:
			out = append(out, cur)
			cur = next
		case next.Start-cur.End <= threshold:
			if next.End > cur.End {
				cur.End = next.End
			}
			cur.Duration = cur.End - cur.Start
			if next.Confidence > cur.Confidence {
				cur.Confidence = next.Confidence
			}
			cur.Reason += " + " + next.Reason
		default:
			out = append(out, cur)
			cur = next
		}
	}
	return append(out, cur), nil
}

// Filter drops non-marker candidates below minConfidence. Markers always pass;
// they carry no cutting risk.
func Filter(cands []types.CutCandidate, minConfidence float64) []types.CutCandidate {
	out := make([]types.CutCandidate, 0, len(cands))
	for _, c := range cands {
		if c.IsMarker || c.Confidence >= minConfidence {
			out = append(out, c)
		}
	}
	return out
}

func sortedByStart(cands []types.CutCandidate) bool {
	for i := 1; i < len(cands); i++ {
		if cands[i].Start < cands[i-1].Start {
			return false
		}
	}
	return true
}
