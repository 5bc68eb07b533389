package timeline

import (
	"reflect"
	"testing"

	"github.com/forPelevin/autocut/internal/types"
)

func cut(start, end float64) types.CutCandidate {
	return types.CutCandidate{
		Start:    start,
		End:      end,
		Duration: end - start,
		Type:     types.CutSilence,
	}
}

func TestComplement_ScenarioA(t *testing.T) {
	cuts := []types.CutCandidate{cut(10, 15), cut(50, 52)}
	clips, dropped := Complement(cuts, 100, 1)

	want := []types.KeepClip{
		{Start: 0, End: 10, Duration: 10},
		{Start: 15, End: 50, Duration: 35},
		{Start: 52, End: 100, Duration: 48},
	}
	if !reflect.DeepEqual(clips, want) {
		t.Fatalf("clips = %+v, want %+v", clips, want)
	}
	if dropped != 0 {
		t.Fatalf("dropped = %v, want 0", dropped)
	}
}

func TestComplement_ZeroCutsKeepsWholeTimeline(t *testing.T) {
	clips, dropped := Complement(nil, 100, 1)
	if len(clips) != 1 || clips[0].Start != 0 || clips[0].End != 100 {
		t.Fatalf("clips = %+v, want single [0, 100]", clips)
	}
	if dropped != 0 {
		t.Fatalf("dropped = %v", dropped)
	}

	// Markers are not actual cuts: the whole timeline survives.
	markers := []types.CutCandidate{{Start: 5, End: 5, Type: types.CutSceneChange, IsMarker: true}}
	clips, _ = Complement(markers, 100, 1)
	if len(clips) != 1 || clips[0].Duration != 100 {
		t.Fatalf("markers cut the timeline: %+v", clips)
	}
}

func TestComplement_ShortFragmentsDropped(t *testing.T) {
	// Gap between the cuts is 0.5s, below the 1s minimum: dropped, not
	// redistributed.
	cuts := []types.CutCandidate{cut(10, 15), cut(15.5, 20)}
	clips, dropped := Complement(cuts, 100, 1)

	want := []types.KeepClip{
		{Start: 0, End: 10, Duration: 10},
		{Start: 20, End: 100, Duration: 80},
	}
	if !reflect.DeepEqual(clips, want) {
		t.Fatalf("clips = %+v, want %+v", clips, want)
	}
	if dropped != 0.5 {
		t.Fatalf("dropped = %v, want 0.5", dropped)
	}
}

func TestComplement_CoverageAccounting(t *testing.T) {
	cuts := []types.CutCandidate{cut(1, 2.5), cut(3, 10), cut(10.25, 60)}
	total := 64.0
	clips, dropped := Complement(cuts, total, 1)

	var keep, cutSum float64
	for _, k := range clips {
		keep += k.Duration
	}
	for _, c := range cuts {
		cutSum += c.Duration
	}
	if got := keep + cutSum + dropped; got != total {
		t.Fatalf("coverage = %v, want %v (keep %v, cuts %v, dropped %v)", got, total, keep, cutSum, dropped)
	}

	// Disjointness: clips sorted and pairwise non-overlapping.
	for i := 1; i < len(clips); i++ {
		if clips[i].Start < clips[i-1].End {
			t.Fatalf("clips overlap: %+v", clips)
		}
	}
}

func TestComplement_TrailingSpanUnderMinimumDropped(t *testing.T) {
	cuts := []types.CutCandidate{cut(10, 99.5)}
	clips, dropped := Complement(cuts, 100, 1)
	if len(clips) != 1 || clips[0].End != 10 {
		t.Fatalf("clips = %+v", clips)
	}
	if dropped != 0.5 {
		t.Fatalf("dropped = %v, want 0.5", dropped)
	}
}

func TestComputeStats_ScenarioA(t *testing.T) {
	cands := []types.CutCandidate{
		cut(10, 15),
		cut(50, 52),
		{Start: 70, End: 70, Type: types.CutSceneChange, IsMarker: true},
	}
	clips, _ := Complement(cands, 100, 1)
	stats := ComputeStats(cands, clips, 100)

	if stats.TotalCutDuration != 7 {
		t.Fatalf("total cut = %v, want 7", stats.TotalCutDuration)
	}
	if stats.FinalDuration != 93 {
		t.Fatalf("final duration = %v, want 93", stats.FinalDuration)
	}
	if stats.ReductionRate != "7.0%" {
		t.Fatalf("reduction rate = %q, want 7.0%%", stats.ReductionRate)
	}
	if stats.MarkerCount != 1 || stats.CandidateCount != 3 {
		t.Fatalf("counts = %+v", stats)
	}
	if stats.CutCounts[types.CutSilence] != 2 {
		t.Fatalf("cut counts = %+v", stats.CutCounts)
	}
	if stats.CutCounts[types.CutSceneChange] != 0 {
		t.Fatalf("marker counted as cut: %+v", stats.CutCounts)
	}
}

func TestComputeStats_ZeroDuration(t *testing.T) {
	stats := ComputeStats(nil, nil, 0)
	if stats.ReductionRate != "0.0%" {
		t.Fatalf("reduction rate = %q", stats.ReductionRate)
	}
}
