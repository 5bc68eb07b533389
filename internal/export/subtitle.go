package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/forPelevin/autocut/internal/types"
)

// WriteSRT emits the caption list as SubRip subtitles, one block per caption
// in list order, numbered from 1. Timestamps use the comma separator.
func WriteSRT(w io.Writer, captions []types.Caption) error {
	for i, c := range captions {
		_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n",
			i+1, SRTTimestamp(c.Start), SRTTimestamp(c.End), strings.TrimSpace(c.Text))
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteVTT emits the web subtitle variant: same blocks with a WEBVTT header
// and dot-separated milliseconds.
func WriteVTT(w io.Writer, captions []types.Caption) error {
	if _, err := io.WriteString(w, "WEBVTT\n\n"); err != nil {
		return err
	}
	for i, c := range captions {
		_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n",
			i+1, VTTTimestamp(c.Start), VTTTimestamp(c.End), strings.TrimSpace(c.Text))
		if err != nil {
			return err
		}
	}
	return nil
}
