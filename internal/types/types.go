package types

// CutType identifies which detector produced a cut candidate. The set is
// closed; anything else is a validation error.
type CutType string

const (
	CutSilence     CutType = "silence"
	CutFiller      CutType = "filler_word"
	CutSceneChange CutType = "scene_change"
	CutSpeechRate  CutType = "speech_rate"
	CutPause       CutType = "unnatural_pause"
	CutSentiment   CutType = "monotone"
)

// Valid reports whether t is one of the known cut types.
func (t CutType) Valid() bool {
	switch t {
	case CutSilence, CutFiller, CutSceneChange, CutSpeechRate, CutPause, CutSentiment:
		return true
	}
	return false
}

// CandidateMeta carries the detector-specific measurement behind a candidate.
// Exactly one field is set, matching the candidate's Type.
type CandidateMeta struct {
	SilenceDuration *float64 `json:"silence_duration,omitempty"`
	Word            *string  `json:"word,omitempty"`
	SceneTimestamp  *float64 `json:"scene_timestamp,omitempty"`
	WordsPerMinute  *float64 `json:"words_per_minute,omitempty"`
	GapSeconds      *float64 `json:"gap_seconds,omitempty"`
	MonotoneScore   *float64 `json:"monotone_score,omitempty"`
}

// CutCandidate is a proposed interval to remove from the source timeline.
// IsMarker means annotate only, never cut (e.g. a scene-change note when
// scene-based cutting is disabled).
type CutCandidate struct {
	Start      float64       `json:"start"`
	End        float64       `json:"end"`
	Duration   float64       `json:"duration"`
	Type       CutType       `json:"type"`
	Reason     string        `json:"reason"`
	Confidence float64       `json:"confidence"`
	IsMarker   bool          `json:"is_marker"`
	Meta       CandidateMeta `json:"meta"`
}

// KeepClip is a retained span of the source timeline, in source seconds.
type KeepClip struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
}

// Caption is a subtitle/overlay entry produced by the transcription pipeline.
// ID is a 1-based sequence number.
type Caption struct {
	ID       int          `json:"id"`
	Text     string       `json:"text"`
	Start    float64      `json:"start"`
	End      float64      `json:"end"`
	Duration float64      `json:"duration"`
	Style    CaptionStyle `json:"style"`
}

// CaptionStyle is a flat record of caption presentation fields. Zero values
// are replaced by DefaultCaptionStyle at export time.
type CaptionStyle struct {
	Font         string  `json:"font"`
	FontSize     float64 `json:"font_size"`
	Color        string  `json:"color"`
	OutlineColor string  `json:"outline_color"`
	Position     string  `json:"position"`
	Animation    string  `json:"animation"`
}

// DefaultCaptionStyle returns the style applied when the upstream pipeline
// does not specify one.
func DefaultCaptionStyle() CaptionStyle {
	return CaptionStyle{
		Font:         "Hiragino Sans W6",
		FontSize:     48,
		Color:        "#FFFFFF",
		OutlineColor: "#000000",
		Position:     "bottom",
		Animation:    "none",
	}
}

// CutStats aggregates what the pipeline removed and kept.
type CutStats struct {
	TotalDuration    float64         `json:"total_duration"`
	TotalCutDuration float64         `json:"total_cut_duration"`
	FinalDuration    float64         `json:"final_duration"`
	ReductionPercent float64         `json:"reduction_percent"`
	ReductionRate    string          `json:"reduction_rate"`
	CutCounts        map[CutType]int `json:"cut_counts"`
	CandidateCount   int             `json:"candidate_count"`
	MarkerCount      int             `json:"marker_count"`
	KeepClipCount    int             `json:"keep_clip_count"`
}

// VideoAnalysis is the Video Analysis Service output the engine consumes.
type VideoAnalysis struct {
	Duration     float64           `json:"duration"`
	Silences     []SilenceInterval `json:"silences"`
	SceneChanges []float64         `json:"scene_changes"`
}

type SilenceInterval struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
}

// SpeechAnalysis is the Speech Recognition Service output the engine consumes.
type SpeechAnalysis struct {
	Captions    []Caption    `json:"captions"`
	FillerWords []FillerWord `json:"filler_words"`
	Segments    []Segment    `json:"segments"`
}

type FillerWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
	Words []Word  `json:"words,omitempty"`
}

type Word struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Word  string  `json:"word"`
}

// LearnedStyle is an optional adjustment profile from the Style Learning
// Service. Absence is the common case.
type LearnedStyle struct {
	CutPattern    CutPattern    `json:"cut_pattern"`
	TimingPattern TimingPattern `json:"timing_pattern"`
}

type CutPattern struct {
	AvgCutInterval         float64   `json:"avg_cut_interval"`
	SceneChangeCorrelation float64   `json:"scene_change_correlation"`
	IntervalHistogram      []float64 `json:"interval_histogram,omitempty"`
}

type TimingPattern struct {
	AvgClipDuration float64   `json:"avg_clip_duration"`
	PauseHistogram  []float64 `json:"pause_histogram,omitempty"`
}
