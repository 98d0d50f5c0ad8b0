// Package encoding normalizes the text encoding of pack files.
package encoding

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ToUTF8 returns data as UTF-8.
//
// A byte order mark selects UTF-8 or UTF-16 and is dropped. Data without one
// that is not valid UTF-8 is decoded as GB18030, which is what Chinese
// Windows editors save in. Data that fails to decode is returned unchanged.
func ToUTF8(data []byte) []byte {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[len(bomUTF8):]
	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		// ExpectBOM follows the mark's byte order.
		return decode(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder(), data)
	case utf8.Valid(data):
		return data
	default:
		return decode(simplifiedchinese.GB18030.NewDecoder(), data)
	}
}

func decode(t transform.Transformer, data []byte) []byte {
	out, _, err := transform.Bytes(t, data)
	if err != nil {
		return data
	}
	return out
}
