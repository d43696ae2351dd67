package adv

import (
	"reflect"
	"testing"
)

type testPdu struct {
	b []byte
}

func (t *testPdu) add(typ byte, value []byte) {
	t.b = append(t.b, byte(len(value)+1), typ)
	t.b = append(t.b, value...)
}

func (t *testPdu) bytes() []byte {
	return t.b
}

func collect(b []byte) []Data {
	var out []Data
	it := NewDataIterator(b)
	for {
		d, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, d)
	}
}

func TestEmptyBlock(t *testing.T) {
	if dd := collect(nil); len(dd) != 0 {
		t.Fatalf("empty block yielded %v entries", len(dd))
	}
	if dd := collect([]byte{}); len(dd) != 0 {
		t.Fatalf("empty block yielded %v entries", len(dd))
	}
}

func TestFlagsAndName(t *testing.T) {
	p := testPdu{}
	p.add(TypeFlags, []byte{0x06})
	p.add(TypeCompleteLocalName, []byte("thermo"))

	dd := collect(p.bytes())
	if len(dd) != 2 {
		t.Fatalf("got %v entries", len(dd))
	}
	if f, ok := dd[0].(Flags); !ok || f != 0x06 {
		t.Fatalf("got %#v", dd[0])
	}
	if n, ok := dd[1].(CompleteLocalName); !ok || n != "thermo" {
		t.Fatalf("got %#v", dd[1])
	}
}

func TestShortenedName(t *testing.T) {
	p := testPdu{}
	p.add(TypeShortenedLocalName, []byte("th"))

	dd := collect(p.bytes())
	if len(dd) != 1 {
		t.Fatalf("got %v entries", len(dd))
	}
	if n, ok := dd[0].(ShortenedLocalName); !ok || n != "th" {
		t.Fatalf("got %#v", dd[0])
	}
}

func TestInvalidUTF8NameEndsIteration(t *testing.T) {
	p := testPdu{}
	p.add(TypeCompleteLocalName, []byte{0xff, 0xfe})
	p.add(TypeFlags, []byte{0x06}) // never reached

	if dd := collect(p.bytes()); len(dd) != 0 {
		t.Fatalf("got %v entries", len(dd))
	}
}

func TestUUIDLists(t *testing.T) {
	p := testPdu{}
	p.add(TypeCompleteUUID16, []byte{0x0f, 0x18, 0x0a, 0x18})
	p.add(TypeIncompleteUUID32, []byte{0x01, 0x02, 0x03, 0x04})

	u128 := make([]byte, 16)
	for i := range u128 {
		u128[i] = byte(i)
	}
	p.add(TypeCompleteUUID128, u128)

	dd := collect(p.bytes())
	if len(dd) != 3 {
		t.Fatalf("got %v entries", len(dd))
	}

	if l, ok := dd[0].(CompleteUUID16List); !ok || !reflect.DeepEqual([]uint16(l), []uint16{0x180f, 0x180a}) {
		t.Fatalf("got %#v", dd[0])
	}
	if l, ok := dd[1].(IncompleteUUID32List); !ok || !reflect.DeepEqual([]uint32(l), []uint32{0x04030201}) {
		t.Fatalf("got %#v", dd[1])
	}
	l, ok := dd[2].(CompleteUUID128List)
	if !ok || len(l) != 1 {
		t.Fatalf("got %#v", dd[2])
	}
	if l[0][0] != 0x00 || l[0][15] != 0x0f {
		t.Fatalf("got %x", l[0])
	}
}

func TestUUIDListBadWidthEndsIteration(t *testing.T) {
	p := testPdu{}
	p.add(TypeCompleteUUID16, []byte{0x0f, 0x18, 0x0a}) // 3 bytes

	if dd := collect(p.bytes()); len(dd) != 0 {
		t.Fatalf("got %v entries", len(dd))
	}
}

func TestScalars(t *testing.T) {
	p := testPdu{}
	p.add(TypeTxPowerLevel, []byte{0xf4}) // -12 dBm
	p.add(TypeAppearance, []byte{0x41, 0x03})
	p.add(TypeClassOfDevice, []byte{0x04, 0x01, 0x02, 0x00})

	dd := collect(p.bytes())
	if len(dd) != 3 {
		t.Fatalf("got %v entries", len(dd))
	}
	if v, ok := dd[0].(TxPowerLevel); !ok || v != -12 {
		t.Fatalf("got %#v", dd[0])
	}
	if v, ok := dd[1].(Appearance); !ok || v != 0x0341 {
		t.Fatalf("got %#v", dd[1])
	}
	if v, ok := dd[2].(ClassOfDevice); !ok || v != 0x00020104 {
		t.Fatalf("got %#v", dd[2])
	}
}

func TestOpaquePayloads(t *testing.T) {
	p := testPdu{}
	p.add(TypeServiceData, []byte{0x0f, 0x18, 0x64})
	p.add(TypeManufacturerData, []byte{0x4c, 0x00, 0x02, 0x15})
	p.add(TypeConnIntervalRange, []byte{0x06, 0x00, 0x10, 0x00})
	p.add(TypeDeviceAddress, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x00})

	dd := collect(p.bytes())
	if len(dd) != 4 {
		t.Fatalf("got %v entries", len(dd))
	}
	if v, ok := dd[0].(ServiceData); !ok || !reflect.DeepEqual([]byte(v), []byte{0x0f, 0x18, 0x64}) {
		t.Fatalf("got %#v", dd[0])
	}
	if v, ok := dd[1].(ManufacturerData); !ok || !reflect.DeepEqual([]byte(v), []byte{0x4c, 0x00, 0x02, 0x15}) {
		t.Fatalf("got %#v", dd[1])
	}
	if _, ok := dd[2].(ConnIntervalRange); !ok {
		t.Fatalf("got %#v", dd[2])
	}
	if _, ok := dd[3].(DeviceAddress); !ok {
		t.Fatalf("got %#v", dd[3])
	}
}

func TestUnknownTypeCodeEndsIteration(t *testing.T) {
	p := testPdu{}
	p.add(TypeFlags, []byte{0x06})
	p.add(0x3D, []byte{0xaa, 0xbb}) // unassigned type
	p.add(TypeFlags, []byte{0x05})  // never reached

	dd := collect(p.bytes())
	if len(dd) != 1 {
		t.Fatalf("got %v entries", len(dd))
	}
}

func TestTruncatedEntryEndsIteration(t *testing.T) {
	p := testPdu{}
	p.add(TypeFlags, []byte{0x06})
	// declares 5 value bytes, supplies 2
	b := append(p.bytes(), 0x06, TypeManufacturerData, 0xaa, 0xbb)

	dd := collect(b)
	if len(dd) != 1 {
		t.Fatalf("got %v entries", len(dd))
	}
}

func TestZeroLengthEntryEndsIteration(t *testing.T) {
	if dd := collect([]byte{0x00, 0x01}); len(dd) != 0 {
		t.Fatalf("got %v entries", len(dd))
	}
}

func TestEntriesBorrow(t *testing.T) {
	p := testPdu{}
	p.add(TypeManufacturerData, []byte{0x4c, 0x00, 0xaa})
	buf := p.bytes()

	dd := collect(buf)
	if len(dd) != 1 {
		t.Fatalf("got %v entries", len(dd))
	}

	buf[2] = 0x11
	if md := dd[0].(ManufacturerData); md[0] != 0x11 {
		t.Fatal("manufacturer data is a copy, not a view")
	}
}
