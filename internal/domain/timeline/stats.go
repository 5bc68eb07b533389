package timeline

import (
	"fmt"

	"github.com/forPelevin/autocut/internal/types"
)

// ComputeStats derives aggregate metrics from the candidate set and the keep
// timeline. Read-only over its inputs.
func ComputeStats(cands []types.CutCandidate, clips []types.KeepClip, totalDuration float64) types.CutStats {
	stats := types.CutStats{
		TotalDuration: totalDuration,
		CutCounts:     make(map[types.CutType]int),
		KeepClipCount: len(clips),
	}

	for _, c := range cands {
		stats.CandidateCount++
		if c.IsMarker {
			stats.MarkerCount++
			continue
		}
		stats.TotalCutDuration += c.Duration
		stats.CutCounts[c.Type]++
	}

	for _, k := range clips {
		stats.FinalDuration += k.Duration
	}

	if totalDuration > 0 {
		// Multiply before dividing so round percentages come out exact.
		stats.ReductionPercent = stats.TotalCutDuration * 100 / totalDuration
	}
	stats.ReductionRate = fmt.Sprintf("%.1f%%", stats.ReductionPercent)
	return stats
}
