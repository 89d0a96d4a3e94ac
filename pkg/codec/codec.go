// Package codec decodes and encodes the text values stored in a PDF
// Info dictionary.
//
// Info values in the wild arrive in several encodings that must be told
// apart from the raw bytes alone: UTF-16 with a BOM (either endianness),
// hex strings wrapped in angle brackets, a base64 payload behind a
// "UTF16BE:" tag, or plain bytes treated as UTF-8. Decode tries these in
// a fixed priority order and never fails; undecodable bytes degrade to
// replacement characters instead of errors.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// TagPrefix marks a value whose base64 payload holds UTF-16BE text.
const TagPrefix = "UTF16BE:"

// Decode interprets raw Info value bytes as text.
//
// Priority: UTF-16BE BOM, UTF-16LE BOM, angle-bracket hex wrapper (with
// its own BOM detection on the decoded bytes), "UTF16BE:"+base64 tag,
// then UTF-8 with lossy replacement. A tagged value whose payload cannot
// be decoded is returned unchanged, tag included.
func Decode(raw []byte) string {
	if s, ok := decodeBOM(raw); ok {
		return s
	}

	text := lossyUTF8(raw)

	if inner, ok := hexContent(text); ok {
		if b, err := hex.DecodeString(inner); err == nil {
			if s, ok := decodeBOM(b); ok {
				return s
			}
			return lossyUTF8(b)
		}
	}

	if payload, ok := strings.CutPrefix(text, TagPrefix); ok {
		if s, ok := decodeTagged(payload); ok {
			return s
		}
		return text
	}

	return text
}

// Encode converts text to the byte form stored in the document: the
// literal UTF-8 bytes. Callers that need a UTF-16BE value on the wire
// pre-encode with TagUTF16BE before calling Encode.
func Encode(text string) []byte {
	return []byte(text)
}

// TagUTF16BE wraps text as "UTF16BE:" plus the base64 of its BOM-prefixed
// UTF-16BE code units. Decode reverses it exactly, so non-ASCII values
// survive channels that mangle raw high bytes.
func TagUTF16BE(text string) string {
	units := utf16.Encode([]rune(text))
	buf := make([]byte, 0, 2+2*len(units))
	buf = append(buf, 0xFE, 0xFF)
	for _, u := range units {
		buf = append(buf, byte(u>>8), byte(u))
	}
	return TagPrefix + base64.StdEncoding.EncodeToString(buf)
}

// decodeBOM recognizes a leading UTF-16 byte order mark and decodes the
// remainder in that endianness.
func decodeBOM(b []byte) (string, bool) {
	if len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF {
		return decodeUTF16(b[2:], true)
	}
	if len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE {
		return decodeUTF16(b[2:], false)
	}
	return "", false
}

// decodeUTF16 requires an even byte count and fully paired surrogates;
// anything else reports failure so the caller can fall through.
func decodeUTF16(b []byte, bigEndian bool) (string, bool) {
	if len(b)%2 != 0 {
		return "", false
	}
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i < len(b); i += 2 {
		if bigEndian {
			units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
		} else {
			units = append(units, uint16(b[i+1])<<8|uint16(b[i]))
		}
	}
	for i := 0; i < len(units); i++ {
		switch u := units[i]; {
		case u >= 0xD800 && u < 0xDC00:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] >= 0xE000 {
				return "", false
			}
			i++
		case u >= 0xDC00 && u < 0xE000:
			return "", false
		}
	}
	return string(utf16.Decode(units)), true
}

// hexContent extracts the body of an angle-bracket hex string when the
// body has even length.
func hexContent(text string) (string, bool) {
	if len(text) < 2 || text[0] != '<' || text[len(text)-1] != '>' {
		return "", false
	}
	inner := text[1 : len(text)-1]
	if len(inner)%2 != 0 {
		return "", false
	}
	return inner, true
}

// decodeTagged decodes the base64 payload of a tagged value as UTF-16BE,
// with or without its own BOM.
func decodeTagged(payload string) (string, bool) {
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", false
	}
	if s, ok := decodeBOM(b); ok {
		return s, true
	}
	return decodeUTF16(b, true)
}

func lossyUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
