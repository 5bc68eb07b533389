package export

import (
	"fmt"
	"math"
)

// FrameAt converts source seconds to a frame number at the given rate.
// Frames are floored, never rounded: 0.99s at 30fps is frame 29.
func FrameAt(seconds, frameRate float64) int {
	return int(math.Floor(seconds * frameRate))
}

// Timecode formats seconds as HH:MM:SS:FF at the given frame rate.
func Timecode(seconds, frameRate float64) string {
	fps := int(math.Round(frameRate))
	if fps < 1 {
		fps = 1
	}
	total := FrameAt(seconds, frameRate)
	frames := total % fps
	secs := total / fps
	return fmt.Sprintf("%02d:%02d:%02d:%02d", secs/3600, secs/60%60, secs%60, frames)
}

// SRTTimestamp formats seconds as HH:MM:SS,mmm. Milliseconds truncate.
func SRTTimestamp(seconds float64) string {
	return stampMillis(seconds, ',')
}

// VTTTimestamp formats seconds as HH:MM:SS.mmm. Milliseconds truncate.
func VTTTimestamp(seconds float64) string {
	return stampMillis(seconds, '.')
}

func stampMillis(seconds float64, sep byte) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(math.Floor(seconds * 1000))
	ms := total % 1000
	s := total / 1000
	return fmt.Sprintf("%02d:%02d:%02d%c%03d", s/3600, s/60%60, s%60, sep, ms)
}
