// Package cursor provides bounds-checked, position-tracked access to an
// immutable byte buffer. Every view a Reader hands out is a sub-slice of
// the original buffer: nothing is copied, and a view is valid exactly as
// long as the buffer it came from. The buffer must not be mutated while
// any derived view is in use.
//
// Multi-byte scalars are little-endian, per the HCI wire format. The
// reinterpreting slice reads return native-endian element views and
// assume a little-endian host, matching the wire.
package cursor

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Uint128 is a 128-bit little-endian scalar, as used by 128-bit UUIDs.
type Uint128 struct {
	Lo, Hi uint64
}

// Reader walks a byte buffer front to back. A read that would cross the
// end of the buffer returns the zero value and false, and leaves the
// position untouched; a successful read advances the position by exactly
// the bytes consumed. No read ever touches memory outside the buffer.
type Reader struct {
	buf []byte
	pos int
}

func New(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// Seek moves the read position to an absolute offset. Seeking to
// len(buf) is legal and leaves the reader exhausted.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.buf) {
		return errors.Errorf("seek to %d outside buffer of %d", pos, len(r.buf))
	}
	r.pos = pos
	return nil
}

// ReadBytes returns the next n bytes as a view into the buffer.
func (r *Reader) ReadBytes(n int) ([]byte, bool) {
	if n < 0 || r.Remaining() < n {
		return nil, false
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, true
}

func (r *Reader) ReadUint8() (uint8, bool) {
	b, ok := r.ReadBytes(1)
	if !ok {
		return 0, false
	}
	return b[0], true
}

func (r *Reader) ReadUint16() (uint16, bool) {
	b, ok := r.ReadBytes(2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(b), true
}

func (r *Reader) ReadUint32() (uint32, bool) {
	b, ok := r.ReadBytes(4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

func (r *Reader) ReadUint64() (uint64, bool) {
	b, ok := r.ReadBytes(8)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint64(b), true
}

func (r *Reader) ReadUint128() (Uint128, bool) {
	b, ok := r.ReadBytes(16)
	if !ok {
		return Uint128{}, false
	}
	return Uint128{
		Lo: binary.LittleEndian.Uint64(b),
		Hi: binary.LittleEndian.Uint64(b[8:]),
	}, true
}

// ReadUint16Slice reinterprets the next n bytes as a []uint16 view.
// Fails, consuming nothing, unless n is a multiple of 2.
func (r *Reader) ReadUint16Slice(n int) ([]uint16, bool) {
	if n < 0 || r.Remaining() < n {
		return nil, false
	}
	s, ok := AsUint16Slice(r.buf[r.pos : r.pos+n])
	if !ok {
		return nil, false
	}
	r.pos += n
	return s, true
}

// ReadUint32Slice reinterprets the next n bytes as a []uint32 view.
// Fails, consuming nothing, unless n is a multiple of 4.
func (r *Reader) ReadUint32Slice(n int) ([]uint32, bool) {
	if n < 0 || r.Remaining() < n {
		return nil, false
	}
	s, ok := AsUint32Slice(r.buf[r.pos : r.pos+n])
	if !ok {
		return nil, false
	}
	r.pos += n
	return s, true
}

// ReadUint64Slice reinterprets the next n bytes as a []uint64 view.
// Fails, consuming nothing, unless n is a multiple of 8.
func (r *Reader) ReadUint64Slice(n int) ([]uint64, bool) {
	if n < 0 || r.Remaining() < n {
		return nil, false
	}
	s, ok := AsUint64Slice(r.buf[r.pos : r.pos+n])
	if !ok {
		return nil, false
	}
	r.pos += n
	return s, true
}

// ReadUUID128Slice reinterprets the next n bytes as a view of 16-byte
// UUIDs. Fails, consuming nothing, unless n is a multiple of 16.
func (r *Reader) ReadUUID128Slice(n int) ([][16]byte, bool) {
	if n < 0 || r.Remaining() < n {
		return nil, false
	}
	s, ok := AsUUID128Slice(r.buf[r.pos : r.pos+n])
	if !ok {
		return nil, false
	}
	r.pos += n
	return s, true
}
