// Package export serializes the reconciled edit timeline into the
// frame-accurate interchange artifacts: editor XML, edit-decision list,
// subtitles, JSON snapshot and CSV report.
package export

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/forPelevin/autocut/internal/config"
	"github.com/forPelevin/autocut/internal/types"
)

// Exporter writes all interchange artifacts for one pipeline result.
type Exporter struct {
	frameRate float64
	width     int
	height    int
}

// New validates the export configuration up front; a missing or invalid
// frame rate must fail before any artifact is produced.
func New(cfg config.ExportConfig) (*Exporter, error) {
	if cfg.FrameRate <= 0 || math.IsNaN(cfg.FrameRate) || math.IsInf(cfg.FrameRate, 0) {
		return nil, &types.ConfigError{Field: "export.frame_rate", Reason: "frame rate is required and must be > 0"}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, &types.ConfigError{Field: "export", Reason: "width and height must be > 0"}
	}
	return &Exporter{frameRate: cfg.FrameRate, width: cfg.Width, height: cfg.Height}, nil
}

// Input is the read-only pipeline result the exporter serializes.
type Input struct {
	VideoPath  string
	Candidates []types.CutCandidate
	KeepClips  []types.KeepClip
	Stats      types.CutStats
	Captions   []types.Caption
}

// Artifacts lists the output paths, derived from the source video's base name
// plus a fixed suffix per artifact.
type Artifacts struct {
	TimelineXML string
	EDL         string
	SRT         string
	VTT         string
	Snapshot    string
	Report      string
}

func artifactPaths(dir, base string) Artifacts {
	join := func(suffix string) string { return filepath.Join(dir, base+suffix) }
	return Artifacts{
		TimelineXML: join("_timeline.xml"),
		EDL:         join("_cuts.edl"),
		SRT:         join("_captions.srt"),
		VTT:         join("_captions.vtt"),
		Snapshot:    join("_snapshot.json"),
		Report:      join("_report.csv"),
	}
}

// Validate checks the result before anything is written. Any failure here
// aborts the export with no partial artifacts on disk.
func (e *Exporter) Validate(in Input) error {
	for i, c := range in.Candidates {
		field := fmt.Sprintf("candidate[%d]", i)
		if err := checkInterval(field, c.Start, c.End); err != nil {
			return err
		}
		if !c.Type.Valid() {
			return types.Validationf(field, "unknown cut type %q", c.Type)
		}
	}
	for i, k := range in.KeepClips {
		if err := checkInterval(fmt.Sprintf("keep_clip[%d]", i), k.Start, k.End); err != nil {
			return err
		}
	}
	for i, c := range in.Captions {
		field := fmt.Sprintf("caption[%d]", i)
		if err := checkInterval(field, c.Start, c.End); err != nil {
			return err
		}
		if n := len([]byte(c.Text)); n > captionTextSize {
			return types.Validationf(field, "text is %d UTF-8 bytes, limit is %d", n, captionTextSize)
		}
	}
	return nil
}

// WriteAll validates the input, then writes every artifact into dir. Each
// artifact targets its own file with no cross-artifact ordering, so the
// writes run concurrently; the first failure is reported.
func (e *Exporter) WriteAll(dir string, in Input) (Artifacts, error) {
	if err := e.Validate(in); err != nil {
		return Artifacts{}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Artifacts{}, err
	}

	base := strings.TrimSuffix(filepath.Base(in.VideoPath), filepath.Ext(in.VideoPath))
	paths := artifactPaths(dir, base)

	writers := []struct {
		path  string
		write func(*os.File) error
	}{
		{paths.TimelineXML, func(f *os.File) error {
			return WriteXMEML(f, base, in.VideoPath, in.KeepClips, in.Captions, e.frameRate, e.width, e.height)
		}},
		{paths.EDL, func(f *os.File) error {
			return WriteEDL(f, base, in.KeepClips, e.frameRate)
		}},
		{paths.SRT, func(f *os.File) error {
			return WriteSRT(f, in.Captions)
		}},
		{paths.VTT, func(f *os.File) error {
			return WriteVTT(f, in.Captions)
		}},
		{paths.Snapshot, func(f *os.File) error {
			return WriteSnapshot(f, Snapshot{
				Source:     in.VideoPath,
				FrameRate:  e.frameRate,
				Candidates: in.Candidates,
				KeepClips:  in.KeepClips,
				Stats:      in.Stats,
				Captions:   in.Captions,
			})
		}},
		{paths.Report, func(f *os.File) error {
			return WriteReport(f, in.Candidates, in.KeepClips, in.Captions)
		}},
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, w := range writers {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := writeArtifact(w.path, w.write); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if firstErr != nil {
		return Artifacts{}, firstErr
	}
	return paths, nil
}

func writeArtifact(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func checkInterval(field string, start, end float64) error {
	for _, v := range [2]float64{start, end} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return types.Validationf(field, "non-finite timecode")
		}
	}
	if start < 0 {
		return types.Validationf(field, "negative start %v", start)
	}
	if end < start {
		return types.Validationf(field, "end %v precedes start %v", end, start)
	}
	return nil
}
