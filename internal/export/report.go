package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/forPelevin/autocut/internal/types"
)

// Snapshot captures the full pipeline result for downstream tooling.
type Snapshot struct {
	Source     string                `json:"source"`
	FrameRate  float64               `json:"frame_rate"`
	Candidates []types.CutCandidate  `json:"candidates"`
	KeepClips  []types.KeepClip      `json:"keep_clips"`
	Stats      types.CutStats        `json:"stats"`
	Captions   []types.Caption       `json:"captions"`
}

// WriteSnapshot emits the structured JSON snapshot.
func WriteSnapshot(w io.Writer, snap Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// WriteReport emits the flat tabular CSV report: cut, keep and caption rows
// with start/end/duration and a human-readable detail column.
func WriteReport(w io.Writer, cands []types.CutCandidate, clips []types.KeepClip, captions []types.Caption) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"kind", "start", "end", "duration", "detail"}); err != nil {
		return err
	}
	for _, c := range cands {
		kind := "cut"
		if c.IsMarker {
			kind = "marker"
		}
		if err := cw.Write([]string{kind, num(c.Start), num(c.End), num(c.Duration), c.Reason}); err != nil {
			return err
		}
	}
	for _, k := range clips {
		if err := cw.Write([]string{"keep", num(k.Start), num(k.End), num(k.Duration), ""}); err != nil {
			return err
		}
	}
	for _, c := range captions {
		if err := cw.Write([]string{"caption", num(c.Start), num(c.End), num(c.Duration), c.Text}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
