package export

import (
	"fmt"
	"io"

	"github.com/forPelevin/autocut/internal/types"
)

// WriteEDL emits a CMX3600-style edit-decision list: one fixed-width row per
// keep clip with sequential edit numbers. Source timecodes reference the
// original footage; record timecodes accumulate clip durations from zero.
func WriteEDL(w io.Writer, title string, clips []types.KeepClip, frameRate float64) error {
	if _, err := fmt.Fprintf(w, "TITLE: %s\nFCM: NON-DROP FRAME\n\n", title); err != nil {
		return err
	}

	record := 0.0
	for i, clip := range clips {
		srcIn := Timecode(clip.Start, frameRate)
		srcOut := Timecode(clip.End, frameRate)
		recIn := Timecode(record, frameRate)
		record += clip.Duration
		recOut := Timecode(record, frameRate)

		_, err := fmt.Fprintf(w, "%03d  AX       V     C        %s %s %s %s\n* FROM CLIP NAME: %s %03d\n\n",
			i+1, srcIn, srcOut, recIn, recOut, title, i+1)
		if err != nil {
			return err
		}
	}
	return nil
}
