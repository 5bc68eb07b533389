package export

import (
	"encoding/base64"
	"encoding/binary"
	"math"
	"unicode/utf16"

	"github.com/forPelevin/autocut/internal/types"
)

// The consuming editor embeds caption overlays as an opaque fixed-layout
// binary effect blob: a 240-byte style header, a 302-byte UTF-8 text section
// (left-aligned, zero-padded), and a 126-byte positioning footer. The layout
// is dictated by the editor's internal effect format and must be reproduced
// byte for byte to remain importable.
const (
	CaptionPayloadSize = 668
	captionHeaderSize  = 240
	captionTextSize    = 302
	captionFooterSize  = 126
)

var (
	captionHeader = buildCaptionHeader()
	captionFooter = buildCaptionFooter()
)

// EncodeCaption produces the raw 668-byte payload for one caption text.
// Text whose UTF-8 encoding exceeds the 302-byte text section is rejected;
// silently overflowing the fixed buffer would corrupt the footer.
func EncodeCaption(text string) ([]byte, error) {
	raw := []byte(text)
	if len(raw) > captionTextSize {
		return nil, types.Validationf("caption", "text is %d UTF-8 bytes, limit is %d", len(raw), captionTextSize)
	}
	b := make([]byte, 0, CaptionPayloadSize)
	b = append(b, captionHeader...)
	b = append(b, raw...)
	b = append(b, make([]byte, captionTextSize-len(raw))...)
	b = append(b, captionFooter...)
	return b, nil
}

// CaptionPayload returns the base64 form embedded in the editor XML.
func CaptionPayload(text string) (string, error) {
	raw, err := EncodeCaption(text)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// CaptionHeader returns a copy of the fixed 240-byte style header.
func CaptionHeader() []byte {
	return append([]byte(nil), captionHeader...)
}

// CaptionFooter returns a copy of the fixed 126-byte positioning footer.
func CaptionFooter() []byte {
	return append([]byte(nil), captionFooter...)
}

// Header layout (little-endian):
//
//	0   u32   layout version
//	4   u32   flags
//	8   [64]  font name, UTF-16LE, zero-padded
//	72  f64   font size
//	80  u32   bold
//	84  u32   italic
//	88  u32   fill color RGBA
//	92  u32   outline color RGBA
//	96  f64   outline width
//	104 f64   tracking
//	112 f64   leading
//	120..239  reserved, zero
func buildCaptionHeader() []byte {
	b := make([]byte, captionHeaderSize)
	le := binary.LittleEndian

	le.PutUint32(b[0:], 1)
	le.PutUint32(b[4:], 0)

	style := types.DefaultCaptionStyle()
	name := utf16.Encode([]rune(style.Font))
	if len(name) > 32 {
		name = name[:32]
	}
	for i, u := range name {
		le.PutUint16(b[8+2*i:], u)
	}

	le.PutUint64(b[72:], f64bits(style.FontSize))
	le.PutUint32(b[80:], 1) // bold
	le.PutUint32(b[84:], 0)
	le.PutUint32(b[88:], 0xFFFFFFFF) // white fill
	le.PutUint32(b[92:], 0x000000FF) // black outline
	le.PutUint64(b[96:], f64bits(4.0))
	le.PutUint64(b[104:], f64bits(0))
	le.PutUint64(b[112:], f64bits(0))
	return b
}

// Footer layout (little-endian):
//
//	0   f64   position x, normalized
//	8   f64   position y, normalized
//	16  u32   anchor (2 = bottom center)
//	20  f64   scale percent
//	28  f64   rotation degrees
//	36  u32   opacity (0-255)
//	40  u32   shadow enabled
//	44  f64   shadow offset
//	52..125   reserved, zero
func buildCaptionFooter() []byte {
	b := make([]byte, captionFooterSize)
	le := binary.LittleEndian

	le.PutUint64(b[0:], f64bits(0.5))
	le.PutUint64(b[8:], f64bits(0.85))
	le.PutUint32(b[16:], 2)
	le.PutUint64(b[20:], f64bits(100))
	le.PutUint64(b[28:], f64bits(0))
	le.PutUint32(b[36:], 255)
	le.PutUint32(b[40:], 1)
	le.PutUint64(b[44:], f64bits(5.0))
	return b
}

func f64bits(v float64) uint64 {
	return math.Float64bits(v)
}
