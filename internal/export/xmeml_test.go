package export

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/forPelevin/autocut/internal/types"
)

func testClips() []types.KeepClip {
	return []types.KeepClip{
		{Start: 0, End: 10, Duration: 10},
		{Start: 15, End: 50, Duration: 35},
		{Start: 52, End: 100, Duration: 48},
	}
}

func TestWriteXMEML_Structure(t *testing.T) {
	var buf bytes.Buffer
	captions := []types.Caption{
		{ID: 1, Text: "hello", Start: 1, End: 3, Duration: 2},
	}
	err := WriteXMEML(&buf, "interview", "/videos/interview.mp4", testClips(), captions, 30, 1920, 1080)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, xml.Header+"<!DOCTYPE xmeml>") {
		t.Fatalf("missing xml prolog:\n%s", out[:120])
	}
	if !strings.Contains(out, `<xmeml version="5">`) {
		t.Fatalf("missing xmeml version 5")
	}

	var doc xmeml
	if err := xml.Unmarshal([]byte(strings.SplitN(out, "\n", 3)[2]), &doc); err != nil {
		t.Fatalf("output does not parse back: %v", err)
	}

	if got := len(doc.Sequence.Media.Video.Tracks); got != 2 {
		t.Fatalf("video tracks = %d, want 2 (clips + captions)", got)
	}
	clipTrack := doc.Sequence.Media.Video.Tracks[0]
	capTrack := doc.Sequence.Media.Video.Tracks[1]
	audioTrack := doc.Sequence.Media.Audio.Tracks[0]

	if len(clipTrack.ClipItems) != 3 || len(audioTrack.ClipItems) != 3 {
		t.Fatalf("clip items: video %d audio %d, want 3 each", len(clipTrack.ClipItems), len(audioTrack.ClipItems))
	}
	if len(capTrack.ClipItems) != 1 {
		t.Fatalf("caption items = %d, want 1", len(capTrack.ClipItems))
	}

	// Sequence positions accumulate from zero while in/out stay in source
	// frames.
	second := clipTrack.ClipItems[1]
	if second.In != 450 || second.Out != 1500 {
		t.Fatalf("second clip in/out = %d/%d, want 450/1500", second.In, second.Out)
	}
	if second.Start != 300 || second.End != 1350 {
		t.Fatalf("second clip start/end = %d/%d, want 300/1350", second.Start, second.End)
	}
	if doc.Sequence.Duration != 300+1050+1440 {
		t.Fatalf("sequence duration = %d", doc.Sequence.Duration)
	}

	// Link indices increment per clip and agree between video and audio.
	for i, item := range clipTrack.ClipItems {
		if len(item.Links) != 2 {
			t.Fatalf("clip %d has %d links", i, len(item.Links))
		}
		for _, l := range item.Links {
			if l.ClipIndex != i+1 || l.GroupIndex != i+1 {
				t.Fatalf("clip %d link indices = %+v", i, l)
			}
		}
		if audioTrack.ClipItems[i].Links[1].LinkClipRef != item.Links[1].LinkClipRef {
			t.Fatalf("audio link mismatch at clip %d", i)
		}
	}

	// Caption item embeds the base64 payload as the data parameter.
	capItem := capTrack.ClipItems[0]
	if capItem.Effect == nil || len(capItem.Effect.Params) != 1 {
		t.Fatalf("caption effect missing: %+v", capItem)
	}
	want, err := CaptionPayload("hello")
	if err != nil {
		t.Fatal(err)
	}
	if capItem.Effect.Params[0].Value != want {
		t.Fatalf("caption payload differs")
	}
}

func TestWriteXMEML_OversizeCaptionFails(t *testing.T) {
	var buf bytes.Buffer
	captions := []types.Caption{{ID: 1, Text: strings.Repeat("x", 400), Start: 0, End: 1}}
	err := WriteXMEML(&buf, "v", "/v.mp4", testClips(), captions, 30, 1920, 1080)
	if err == nil {
		t.Fatalf("expected error for oversize caption")
	}
}

func TestWriteXMEML_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	caps := []types.Caption{{ID: 1, Text: "x", Start: 0, End: 1}}
	if err := WriteXMEML(&a, "v", "/v.mp4", testClips(), caps, 30, 1920, 1080); err != nil {
		t.Fatal(err)
	}
	if err := WriteXMEML(&b, "v", "/v.mp4", testClips(), caps, 30, 1920, 1080); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Fatalf("output is not byte-stable")
	}
}
