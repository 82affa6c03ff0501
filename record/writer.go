package record

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/TsubasaBE/go-lexnum/transcode"
)

// Writer serializes values in the layout read by [RecordReader].
//
// Errors are sticky: after the first failed write every later call is a
// no-op, and [Writer.Err] reports the first one.
type Writer struct {
	w       io.Writer
	err     error
	scratch [8]byte
}

// NewWriter returns a Writer appending to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	if _, err := w.w.Write(p); err != nil {
		w.err = errors.Wrap(err, "record: write")
	}
}

// WriteUint8 writes one byte.
func (w *Writer) WriteUint8(v uint8) {
	w.scratch[0] = v
	w.write(w.scratch[:1])
}

// WriteUint16 writes a little-endian uint16.
func (w *Writer) WriteUint16(v uint16) {
	binary.LittleEndian.PutUint16(w.scratch[:2], v)
	w.write(w.scratch[:2])
}

// WriteUint32 writes a little-endian uint32.
func (w *Writer) WriteUint32(v uint32) {
	binary.LittleEndian.PutUint32(w.scratch[:4], v)
	w.write(w.scratch[:4])
}

// WriteInt32 writes a little-endian int32.
func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

// WriteDouble writes a little-endian IEEE-754 double.
func (w *Writer) WriteDouble(v float64) {
	binary.LittleEndian.PutUint64(w.scratch[:8], math.Float64bits(v))
	w.write(w.scratch[:8])
}

// WriteString writes s as a uint32 UTF-16 code-unit count followed by the
// UTF-16LE code units.
func (w *Writer) WriteString(s string) {
	if w.err != nil {
		return
	}
	b, err := transcode.EncodeUTF16LE(s)
	if err != nil {
		w.err = errors.Wrap(err, "record: write string")
		return
	}
	n := len(b) / 2
	if n > MaxStringChars {
		w.err = errors.Errorf("record: string length %d is too large", n)
		return
	}
	w.WriteUint32(uint32(n))
	w.write(b)
}
