package library

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names reported by Detect
const (
	EncodingUTF8    = "utf-8"
	EncodingUTF16LE = "utf-16le"
	EncodingUTF16BE = "utf-16be"
	EncodingCP1252  = "windows-1252"
)

// Detect guesses the encoding of an LTspice file. A BOM wins; otherwise
// NUL high bytes in the first code unit mean UTF-16LE (LTspice XVII and
// later write BOM-less UTF-16LE); text that is not valid UTF-8 is taken
// as Windows-1252.
func Detect(raw []byte) string {
	switch {
	case len(raw) >= 3 && raw[0] == 0xEF && raw[1] == 0xBB && raw[2] == 0xBF:
		return EncodingUTF8
	case len(raw) >= 2 && raw[0] == 0xFF && raw[1] == 0xFE:
		return EncodingUTF16LE
	case len(raw) >= 2 && raw[0] == 0xFE && raw[1] == 0xFF:
		return EncodingUTF16BE
	case len(raw) >= 2 && raw[0] != 0 && raw[1] == 0:
		return EncodingUTF16LE
	case utf8.Valid(raw):
		return EncodingUTF8
	}
	return EncodingCP1252
}

func decoderFor(name string) *encoding.Decoder {
	switch name {
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	case EncodingCP1252:
		return charmap.Windows1252.NewDecoder()
	}
	return unicode.UTF8.NewDecoder()
}

// Decode normalizes raw file content to UTF-8 text
func Decode(raw []byte) (string, error) {
	t := unicode.BOMOverride(decoderFor(Detect(raw)))
	out, _, err := transform.Bytes(t, raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s text: %w", Detect(raw), err)
	}
	return string(out), nil
}
