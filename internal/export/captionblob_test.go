package export

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/forPelevin/autocut/internal/types"
)

func TestEncodeCaption_Layout(t *testing.T) {
	text := "0123456789" // exactly 10 UTF-8 bytes
	raw, err := EncodeCaption(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != CaptionPayloadSize {
		t.Fatalf("payload is %d bytes, want %d", len(raw), CaptionPayloadSize)
	}
	if !bytes.Equal(raw[:captionHeaderSize], CaptionHeader()) {
		t.Fatalf("header section differs from fixed header")
	}
	if !bytes.Equal(raw[len(raw)-captionFooterSize:], CaptionFooter()) {
		t.Fatalf("footer section differs from fixed footer")
	}

	textSection := raw[captionHeaderSize : captionHeaderSize+captionTextSize]
	if string(textSection[:len(text)]) != text {
		t.Fatalf("text not left-aligned: %q", textSection[:len(text)])
	}
	for i, b := range textSection[len(text):] {
		if b != 0 {
			t.Fatalf("text padding not zero at offset %d", len(text)+i)
		}
	}
}

func TestEncodeCaption_MultibyteText(t *testing.T) {
	text := "こんにちは" // 15 UTF-8 bytes
	raw, err := EncodeCaption(text)
	if err != nil {
		t.Fatal(err)
	}
	got := raw[captionHeaderSize : captionHeaderSize+15]
	if string(got) != text {
		t.Fatalf("text section = %q", got)
	}
}

func TestEncodeCaption_AtLimitAndOver(t *testing.T) {
	exact := strings.Repeat("x", 302)
	if _, err := EncodeCaption(exact); err != nil {
		t.Fatalf("302-byte text must be accepted: %v", err)
	}

	over := strings.Repeat("x", 303)
	_, err := EncodeCaption(over)
	var verr *types.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for oversize text, got %v", err)
	}
}

func TestCaptionPayload_DecodesToFixedSize(t *testing.T) {
	payload, err := CaptionPayload("0123456789")
	if err != nil {
		t.Fatal(err)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if len(raw) != 668 {
		t.Fatalf("decoded payload is %d bytes, want 668", len(raw))
	}
}

func TestCaptionHeaderFooter_Stable(t *testing.T) {
	if len(CaptionHeader()) != 240 {
		t.Fatalf("header is %d bytes", len(CaptionHeader()))
	}
	if len(CaptionFooter()) != 126 {
		t.Fatalf("footer is %d bytes", len(CaptionFooter()))
	}
	a, _ := EncodeCaption("a")
	b, _ := EncodeCaption("b")
	if !bytes.Equal(a[:captionHeaderSize], b[:captionHeaderSize]) {
		t.Fatalf("header varies with text")
	}
	if !bytes.Equal(a[668-captionFooterSize:], b[668-captionFooterSize:]) {
		t.Fatalf("footer varies with text")
	}
}
