package cursor

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrWriteOverflow is returned when a write does not fit in the
// remaining buffer space. The buffer and position are left untouched.
var ErrWriteOverflow = errors.New("write past end of buffer")

// Writer fills a caller-supplied buffer front to back with little-endian
// values. It is the outbound mirror of Reader, used to encode command
// packets into preallocated transport buffers.
type Writer struct {
	buf []byte
	pos int
}

func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int {
	return w.pos
}

// Remaining returns the unwritten space left in the buffer.
func (w *Writer) Remaining() int {
	return len(w.buf) - w.pos
}

// Bytes returns the written prefix of the buffer.
func (w *Writer) Bytes() []byte {
	return w.buf[:w.pos]
}

// WriteBytes copies b into the buffer.
func (w *Writer) WriteBytes(b []byte) error {
	if w.Remaining() < len(b) {
		return ErrWriteOverflow
	}
	copy(w.buf[w.pos:], b)
	w.pos += len(b)
	return nil
}

func (w *Writer) WriteUint8(v uint8) error {
	if w.Remaining() < 1 {
		return ErrWriteOverflow
	}
	w.buf[w.pos] = v
	w.pos++
	return nil
}

func (w *Writer) WriteUint16(v uint16) error {
	if w.Remaining() < 2 {
		return ErrWriteOverflow
	}
	binary.LittleEndian.PutUint16(w.buf[w.pos:], v)
	w.pos += 2
	return nil
}

func (w *Writer) WriteUint32(v uint32) error {
	if w.Remaining() < 4 {
		return ErrWriteOverflow
	}
	binary.LittleEndian.PutUint32(w.buf[w.pos:], v)
	w.pos += 4
	return nil
}

func (w *Writer) WriteUint64(v uint64) error {
	if w.Remaining() < 8 {
		return ErrWriteOverflow
	}
	binary.LittleEndian.PutUint64(w.buf[w.pos:], v)
	w.pos += 8
	return nil
}

func (w *Writer) WriteUint128(v Uint128) error {
	if w.Remaining() < 16 {
		return ErrWriteOverflow
	}
	binary.LittleEndian.PutUint64(w.buf[w.pos:], v.Lo)
	binary.LittleEndian.PutUint64(w.buf[w.pos+8:], v.Hi)
	w.pos += 16
	return nil
}
