// Package transcode converts text between Go strings, code points and the
// UTF-8 and UTF-16LE byte encodings used by serialized archives.
//
// Encoding work is delegated to [golang.org/x/text/encoding/unicode].
// Invalid input is replaced with U+FFFD rather than rejected, so a decode
// never fails on malformed code units alone.
package transcode

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

var (
	utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf8enc = unicode.UTF8
)

// CodepointToString returns the one-character string for cp.  It reports
// false for surrogate halves and values beyond U+10FFFF.
func CodepointToString(cp rune) (string, bool) {
	if !utf8.ValidRune(cp) {
		return "", false
	}
	return string(cp), true
}

// EncodeUTF16LE encodes s as UTF-16 little-endian code units without a BOM.
func EncodeUTF16LE(s string) ([]byte, error) {
	return run(utf16le.NewEncoder(), []byte(s), "encode UTF-16LE")
}

// DecodeUTF16LE decodes UTF-16 little-endian code units.  An odd trailing
// byte and unpaired surrogates decode to U+FFFD.
func DecodeUTF16LE(b []byte) (string, error) {
	out, err := run(utf16le.NewDecoder(), b, "decode UTF-16LE")
	return string(out), err
}

// EncodeUTF8 returns the UTF-8 bytes of s with invalid sequences replaced.
func EncodeUTF8(s string) ([]byte, error) {
	return run(utf8enc.NewEncoder(), []byte(s), "encode UTF-8")
}

// DecodeUTF8 validates b as UTF-8 and returns it as a string, replacing
// invalid sequences.
func DecodeUTF8(b []byte) (string, error) {
	out, err := run(utf8enc.NewDecoder(), b, "decode UTF-8")
	return string(out), err
}

// UTF16Len returns the number of UTF-16 code units needed to encode s.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

type transformer interface {
	Bytes(b []byte) ([]byte, error)
}

var (
	_ transformer = (*encoding.Encoder)(nil)
	_ transformer = (*encoding.Decoder)(nil)
)

func run(t transformer, b []byte, op string) ([]byte, error) {
	out, err := t.Bytes(b)
	if err != nil {
		return nil, errors.Wrap(err, "transcode: "+op)
	}
	return out, nil
}
