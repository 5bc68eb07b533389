package candidates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/forPelevin/autocut/internal/config"
	"github.com/forPelevin/autocut/internal/types"
)

// Generate converts raw detector outputs into a uniform, sorted cut-candidate
// list. It is a pure function of its inputs and config: every downstream stage
// relies on the returned slice being sorted by start ascending.
//
// Confidence values are fixed rules, not learned:
//   - silence: step function of duration (0.3 / 0.6 / 0.8 / 0.95)
//   - filler word: 0.7
//   - scene change: 0.6, emitted as a marker unless scene cuts are enabled
//   - speech rate / pause: scaled by deviation, capped at 0.9
//   - monotone: punctuation/filler heuristic, capped at 0.7
func Generate(video types.VideoAnalysis, speech types.SpeechAnalysis, cfg config.DetectionConfig) []types.CutCandidate {
	var out []types.CutCandidate

	out = append(out, fromSilences(video.Silences, cfg.SilenceMinDuration)...)
	out = append(out, fromFillerWords(speech.FillerWords, cfg.CutBuffer)...)
	out = append(out, fromSceneChanges(video.SceneChanges, cfg.UseSceneChangesForCuts, cfg.SceneChangeBuffer)...)

	if cfg.SpeechRate.Enabled {
		out = append(out, fromSpeechRate(speech.Segments, cfg.SpeechRate)...)
	}
	if cfg.Pause.Enabled {
		out = append(out, fromPauses(speech.Segments, cfg.Pause)...)
	}
	if cfg.Sentiment.Enabled {
		out = append(out, fromMonotone(speech.Segments, speech.FillerWords, cfg.Sentiment)...)
	}

	for i := range out {
		if out[i].Start < 0 {
			out[i].Start = 0
		}
		if video.Duration > 0 && out[i].End > video.Duration {
			out[i].End = video.Duration
		}
		if out[i].End < out[i].Start {
			out[i].End = out[i].Start
		}
		out[i].Duration = out[i].End - out[i].Start
	}

	// Tie-break on end and type so equal-start candidates always merge in
	// the same order.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		if out[i].End != out[j].End {
			return out[i].End < out[j].End
		}
		return out[i].Type < out[j].Type
	})
	return out
}

func fromSilences(silences []types.SilenceInterval, minDuration float64) []types.CutCandidate {
	var out []types.CutCandidate
	for _, s := range silences {
		d := s.End - s.Start
		if d < minDuration {
			continue
		}
		dur := d
		out = append(out, types.CutCandidate{
			Start:      s.Start,
			End:        s.End,
			Type:       types.CutSilence,
			Reason:     fmt.Sprintf("silence %.2fs", d),
			Confidence: silenceConfidence(d),
			Meta:       types.CandidateMeta{SilenceDuration: &dur},
		})
	}
	return out
}

func silenceConfidence(d float64) float64 {
	switch {
	case d < 0.5:
		return 0.3
	case d < 1.0:
		return 0.6
	case d < 2.0:
		return 0.8
	default:
		return 0.95
	}
}

func fromFillerWords(fillers []types.FillerWord, buffer float64) []types.CutCandidate {
	var out []types.CutCandidate
	for _, f := range fillers {
		word := f.Word
		out = append(out, types.CutCandidate{
			Start:      f.Start - buffer,
			End:        f.End + buffer,
			Type:       types.CutFiller,
			Reason:     fmt.Sprintf("filler word %q", f.Word),
			Confidence: 0.7,
			Meta:       types.CandidateMeta{Word: &word},
		})
	}
	return out
}

func fromSceneChanges(timestamps []float64, cutOnScene bool, buffer float64) []types.CutCandidate {
	var out []types.CutCandidate
	for _, ts := range timestamps {
		sceneTS := ts
		c := types.CutCandidate{
			Type:       types.CutSceneChange,
			Reason:     fmt.Sprintf("scene change at %.2fs", ts),
			Confidence: 0.6,
			Meta:       types.CandidateMeta{SceneTimestamp: &sceneTS},
		}
		if cutOnScene {
			c.Start = ts - buffer
			c.End = ts + buffer
		} else {
			// Zero-width marker: annotate only, never cut.
			c.Start = ts
			c.End = ts
			c.IsMarker = true
		}
		out = append(out, c)
	}
	return out
}

func fromSpeechRate(segments []types.Segment, cfg config.SpeechRateConfig) []types.CutCandidate {
	var out []types.CutCandidate
	for _, s := range segments {
		d := s.End - s.Start
		n := wordCount(s)
		if d <= 0 || n == 0 {
			continue
		}
		wpm := float64(n) / (d / 60)

		var deviation float64
		var label string
		switch {
		case wpm > cfg.MaxWPM:
			deviation = (wpm - cfg.MaxWPM) / cfg.MaxWPM
			label = "fast"
		case wpm < cfg.MinWPM:
			deviation = (cfg.MinWPM - wpm) / cfg.MinWPM
			label = "slow"
		default:
			continue
		}

		rate := wpm
		out = append(out, types.CutCandidate{
			Start:      s.Start,
			End:        s.End,
			Type:       types.CutSpeechRate,
			Reason:     fmt.Sprintf("%s speech %.0f wpm", label, wpm),
			Confidence: clamp(0.4+deviation, 0, 0.9),
			Meta:       types.CandidateMeta{WordsPerMinute: &rate},
		})
	}
	return out
}

func fromPauses(segments []types.Segment, cfg config.PauseConfig) []types.CutCandidate {
	var out []types.CutCandidate
	for i := 1; i < len(segments); i++ {
		gap := segments[i].Start - segments[i-1].End
		if gap < cfg.MinDuration {
			continue
		}
		g := gap
		scale := (gap - cfg.MinDuration) / (cfg.MaxDuration - cfg.MinDuration)
		out = append(out, types.CutCandidate{
			Start:      segments[i-1].End,
			End:        segments[i].Start,
			Type:       types.CutPause,
			Reason:     fmt.Sprintf("unnatural pause %.2fs", gap),
			Confidence: clamp(0.3+0.6*scale, 0, 0.9),
			Meta:       types.CandidateMeta{GapSeconds: &g},
		})
	}
	return out
}

func fromMonotone(segments []types.Segment, fillers []types.FillerWord, cfg config.SentimentConfig) []types.CutCandidate {
	var out []types.CutCandidate
	for _, s := range segments {
		d := s.End - s.Start
		if d < cfg.MinSegmentDuration {
			continue
		}
		n := wordCount(s)
		if n == 0 {
			continue
		}
		// Flat delivery shows up as zero emphatic punctuation plus a high
		// filler ratio.
		if strings.Count(s.Text, "!")+strings.Count(s.Text, "?") > 0 {
			continue
		}
		fillerN := 0
		for _, f := range fillers {
			if f.Start >= s.Start && f.End <= s.End {
				fillerN++
			}
		}
		score := clamp(0.4+float64(fillerN)/float64(n), 0, 0.7)
		sc := score
		out = append(out, types.CutCandidate{
			Start:      s.Start,
			End:        s.End,
			Type:       types.CutSentiment,
			Reason:     "monotone delivery",
			Confidence: score,
			Meta:       types.CandidateMeta{MonotoneScore: &sc},
		})
	}
	return out
}

func wordCount(s types.Segment) int {
	if len(s.Words) > 0 {
		return len(s.Words)
	}
	return len(strings.Fields(s.Text))
}

func clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}
