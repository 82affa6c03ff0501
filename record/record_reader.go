// Package record provides a little-endian byte archive for numbers and
// length-prefixed UTF-16 strings.
//
// [Writer] serializes values into any [io.Writer]; [RecordReader] reads them
// back from an in-memory payload.  Strings are stored as a uint32 UTF-16
// code-unit count followed by the UTF-16LE code units, so characters outside
// the Basic Multilingual Plane survive a round trip.
package record

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/TsubasaBE/go-lexnum/transcode"
)

// MaxStringChars is the largest UTF-16 code-unit count accepted for a single
// string.  It keeps count*2 within int range on 32-bit platforms.
const MaxStringChars = 0x3FFFFFFF

// RecordReader wraps a serialized payload and provides typed read helpers.
type RecordReader struct {
	data []byte
	pos  int
}

// NewRecordReader creates a RecordReader over the given byte slice.
func NewRecordReader(data []byte) *RecordReader {
	return &RecordReader{data: data}
}

// remaining returns the number of unread bytes.
func (r *RecordReader) remaining() int {
	return len(r.data) - r.pos
}

// Remaining returns the number of unread bytes.
func (r *RecordReader) Remaining() int {
	return r.remaining()
}

// Skip advances the read position by n bytes.
func (r *RecordReader) Skip(n int) error {
	if n < 0 {
		return errors.Errorf("record: skip count %d is negative", n)
	}
	if r.remaining() < n {
		return errors.Errorf("record: skip %d bytes but only %d remain", n, r.remaining())
	}
	r.pos += n
	return nil
}

// Read reads exactly len(p) bytes into p.
func (r *RecordReader) Read(p []byte) error {
	n := len(p)
	if r.remaining() < n {
		return io.ErrUnexpectedEOF
	}
	copy(p, r.data[r.pos:r.pos+n])
	r.pos += n
	return nil
}

// ReadUint8 reads one unsigned byte.
func (r *RecordReader) ReadUint8() (uint8, error) {
	if r.remaining() < 1 {
		return 0, io.ErrUnexpectedEOF
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// ReadUint16 reads a little-endian uint16.
func (r *RecordReader) ReadUint16() (uint16, error) {
	if r.remaining() < 2 {
		return 0, io.ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadUint32 reads a little-endian uint32.
func (r *RecordReader) ReadUint32() (uint32, error) {
	if r.remaining() < 4 {
		return 0, io.ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadInt32 reads a little-endian int32.
func (r *RecordReader) ReadInt32() (int32, error) {
	u, err := r.ReadUint32()
	return int32(u), err
}

// ReadDouble reads a little-endian IEEE-754 double (8 bytes).
func (r *RecordReader) ReadDouble() (float64, error) {
	if r.remaining() < 8 {
		return 0, io.ErrUnexpectedEOF
	}
	bits := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return math.Float64frombits(bits), nil
}

// ReadString reads a 4-byte little-endian code-unit count followed by that
// many UTF-16LE code units and decodes them to a Go string.  Unpaired
// surrogates decode to U+FFFD.
func (r *RecordReader) ReadString() (string, error) {
	charCount, err := r.ReadUint32()
	if err != nil {
		return "", err
	}
	if charCount > MaxStringChars {
		return "", errors.Errorf("record: string length %d is too large", charCount)
	}
	byteCount := int(charCount) * 2
	if r.remaining() < byteCount {
		return "", errors.Wrapf(io.ErrUnexpectedEOF, "record: string of %d code units", charCount)
	}
	raw := r.data[r.pos : r.pos+byteCount]
	r.pos += byteCount
	s, err := transcode.DecodeUTF16LE(raw)
	if err != nil {
		return "", errors.Wrap(err, "record: read string")
	}
	return s, nil
}
