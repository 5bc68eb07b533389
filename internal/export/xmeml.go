package export

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/forPelevin/autocut/internal/types"
)

// xmeml is the editor-interchange dialect (schema version 5): one video track
// of sequential keep clips, a second video track carrying caption overlays as
// text-effect clip items, and a mirrored audio track linked to the video.
type xmeml struct {
	XMLName  xml.Name `xml:"xmeml"`
	Version  string   `xml:"version,attr"`
	Sequence sequence `xml:"sequence"`
}

type sequence struct {
	ID       string `xml:"id,attr"`
	Name     string `xml:"name"`
	Duration int    `xml:"duration"`
	Rate     rate   `xml:"rate"`
	Media    media  `xml:"media"`
}

type rate struct {
	Timebase int    `xml:"timebase"`
	NTSC     string `xml:"ntsc"`
}

type media struct {
	Video videoMedia `xml:"video"`
	Audio audioMedia `xml:"audio"`
}

type videoMedia struct {
	Format videoFormat `xml:"format"`
	Tracks []track     `xml:"track"`
}

type videoFormat struct {
	SampleCharacteristics sampleCharacteristics `xml:"samplecharacteristics"`
}

type sampleCharacteristics struct {
	Rate   rate `xml:"rate"`
	Width  int  `xml:"width"`
	Height int  `xml:"height"`
}

type audioMedia struct {
	Tracks []track `xml:"track"`
}

type track struct {
	ClipItems []clipItem `xml:"clipitem"`
}

type clipItem struct {
	ID       string   `xml:"id,attr"`
	Name     string   `xml:"name"`
	Enabled  string   `xml:"enabled"`
	Duration int      `xml:"duration"`
	Rate     rate     `xml:"rate"`
	Start    int      `xml:"start"`
	End      int      `xml:"end"`
	In       int      `xml:"in"`
	Out      int      `xml:"out"`
	File     *fileRef `xml:"file,omitempty"`
	Effect   *effect  `xml:"effect,omitempty"`
	Links    []link   `xml:"link,omitempty"`
}

type fileRef struct {
	ID      string `xml:"id,attr"`
	Name    string `xml:"name,omitempty"`
	PathURL string `xml:"pathurl,omitempty"`
	Rate    *rate  `xml:"rate,omitempty"`
}

type effect struct {
	Name           string  `xml:"name"`
	EffectID       string  `xml:"effectid"`
	EffectCategory string  `xml:"effectcategory"`
	EffectType     string  `xml:"effecttype"`
	MediaType      string  `xml:"mediatype"`
	Params         []param `xml:"parameter"`
}

type param struct {
	ParameterID string `xml:"parameterid"`
	Name        string `xml:"name"`
	Value       string `xml:"value"`
}

type link struct {
	LinkClipRef string `xml:"linkclipref"`
	MediaType   string `xml:"mediatype"`
	TrackIndex  int    `xml:"trackindex"`
	ClipIndex   int    `xml:"clipindex"`
	GroupIndex  int    `xml:"groupindex"`
}

// WriteXMEML serializes the keep timeline and caption overlays as xmeml v5.
// Keep clips become sequential clip items whose in/out reference source
// frames and whose start/end accumulate on the sequence; the audio track
// mirrors the video track item for item, with link indices incrementing per
// clip to keep the pairs coherent on import.
func WriteXMEML(w io.Writer, name, videoPath string, clips []types.KeepClip, captions []types.Caption, frameRate float64, width, height int) error {
	doc, err := buildXMEML(name, videoPath, clips, captions, frameRate, width, height)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, xml.Header+"<!DOCTYPE xmeml>\n"); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode xmeml: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return nil
}

func buildXMEML(name, videoPath string, clips []types.KeepClip, captions []types.Caption, frameRate float64, width, height int) (*xmeml, error) {
	timebase := int(frameRate)
	seqRate := rate{Timebase: timebase, NTSC: "FALSE"}

	videoTrack := track{}
	audioTrack := track{}
	cursor := 0
	for i, clip := range clips {
		in := FrameAt(clip.Start, frameRate)
		out := FrameAt(clip.End, frameRate)
		dur := out - in

		videoID := fmt.Sprintf("clipitem-%d", 2*i+1)
		audioID := fmt.Sprintf("clipitem-%d", 2*i+2)

		file := &fileRef{ID: "file-1"}
		if i == 0 {
			// Full file definition once; later items reference it by id.
			file.Name = name
			file.PathURL = "file://localhost/" + videoPath
			file.Rate = &seqRate
		}

		videoTrack.ClipItems = append(videoTrack.ClipItems, clipItem{
			ID:       videoID,
			Name:     fmt.Sprintf("%s %03d", name, i+1),
			Enabled:  "TRUE",
			Duration: dur,
			Rate:     seqRate,
			Start:    cursor,
			End:      cursor + dur,
			In:       in,
			Out:      out,
			File:     file,
			Links: []link{
				{LinkClipRef: videoID, MediaType: "video", TrackIndex: 1, ClipIndex: i + 1, GroupIndex: i + 1},
				{LinkClipRef: audioID, MediaType: "audio", TrackIndex: 1, ClipIndex: i + 1, GroupIndex: i + 1},
			},
		})
		audioTrack.ClipItems = append(audioTrack.ClipItems, clipItem{
			ID:       audioID,
			Name:     fmt.Sprintf("%s %03d", name, i+1),
			Enabled:  "TRUE",
			Duration: dur,
			Rate:     seqRate,
			Start:    cursor,
			End:      cursor + dur,
			In:       in,
			Out:      out,
			File:     &fileRef{ID: "file-1"},
			Links: []link{
				{LinkClipRef: videoID, MediaType: "video", TrackIndex: 1, ClipIndex: i + 1, GroupIndex: i + 1},
				{LinkClipRef: audioID, MediaType: "audio", TrackIndex: 1, ClipIndex: i + 1, GroupIndex: i + 1},
			},
		})
		cursor += dur
	}

	captionTrack := track{}
	for i, c := range captions {
		payload, err := CaptionPayload(c.Text)
		if err != nil {
			return nil, err
		}
		start := FrameAt(c.Start, frameRate)
		end := FrameAt(c.End, frameRate)
		captionTrack.ClipItems = append(captionTrack.ClipItems, clipItem{
			ID:       fmt.Sprintf("caption-%d", i+1),
			Name:     c.Text,
			Enabled:  "TRUE",
			Duration: end - start,
			Rate:     seqRate,
			Start:    start,
			End:      end,
			In:       0,
			Out:      end - start,
			Effect: &effect{
				Name:           "Caption",
				EffectID:       "GraphicAndType",
				EffectCategory: "Text",
				EffectType:     "generator",
				MediaType:      "video",
				Params: []param{
					{ParameterID: "data", Name: "data", Value: payload},
				},
			},
		})
	}

	return &xmeml{
		Version: "5",
		Sequence: sequence{
			ID:       "sequence-1",
			Name:     name,
			Duration: cursor,
			Rate:     seqRate,
			Media: media{
				Video: videoMedia{
					Format: videoFormat{
						SampleCharacteristics: sampleCharacteristics{
							Rate:   seqRate,
							Width:  width,
							Height: height,
						},
					},
					Tracks: []track{videoTrack, captionTrack},
				},
				Audio: audioMedia{
					Tracks: []track{audioTrack},
				},
			},
		},
	}, nil
}
