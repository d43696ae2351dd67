package cursor

import "unsafe"

// Zero-copy reinterpretation of a byte slice as a slice of wider
// elements. The element view aliases the byte slice; element values are
// native-endian. Reinterpretation is refused when the byte count is not
// evenly divisible by the element width, never truncated.

// AsUint16Slice views b as a []uint16.
func AsUint16Slice(b []byte) ([]uint16, bool) {
	if len(b)%2 != 0 {
		return nil, false
	}
	if len(b) == 0 {
		return nil, true
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&b[0])), len(b)/2), true
}

// AsUint32Slice views b as a []uint32.
func AsUint32Slice(b []byte) ([]uint32, bool) {
	if len(b)%4 != 0 {
		return nil, false
	}
	if len(b) == 0 {
		return nil, true
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&b[0])), len(b)/4), true
}

// AsUint64Slice views b as a []uint64.
func AsUint64Slice(b []byte) ([]uint64, bool) {
	if len(b)%8 != 0 {
		return nil, false
	}
	if len(b) == 0 {
		return nil, true
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&b[0])), len(b)/8), true
}

// AsUUID128Slice views b as a slice of 16-byte UUIDs.
func AsUUID128Slice(b []byte) ([][16]byte, bool) {
	if len(b)%16 != 0 {
		return nil, false
	}
	if len(b) == 0 {
		return nil, true
	}
	return unsafe.Slice((*[16]byte)(unsafe.Pointer(&b[0])), len(b)/16), true
}
