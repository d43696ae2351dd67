package hci

import (
	"reflect"
	"testing"

	"github.com/btkit/hci/cursor"
)

func TestFrameCommandRoundTrip(t *testing.T) {
	// build the packet with the outbound writer, frame it back
	buf := make([]byte, 8)
	w := cursor.NewWriter(buf)
	w.WriteUint8(PktTypeCommand)
	w.WriteUint16(0x200D) // LE Create Connection
	w.WriteUint8(4)
	w.WriteBytes([]byte{0xde, 0xad, 0xbe, 0xef})

	p, ok := Frame(w.Bytes())
	if !ok {
		t.Fatal("framing failed")
	}

	cmd, ok := p.(Command)
	if !ok {
		t.Fatalf("got %T", p)
	}
	if cmd.Opcode != 0x200D {
		t.Fatalf("opcode 0x%04X", cmd.Opcode)
	}
	if cmd.Len != 4 {
		t.Fatalf("len %v", cmd.Len)
	}
	if !reflect.DeepEqual(cmd.Parameters, []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Fatalf("parameters % X", cmd.Parameters)
	}
}

func TestFrameACLData(t *testing.T) {
	// handle 0x0ABC in the low 12 bits, boundary 0b10 and broadcast
	// 0b01 in the high nibble: header word 0x9ABC
	p, ok := Frame([]byte{PktTypeACLData, 0xbc, 0x9a, 0x02, 0x00, 0x11, 0x22})
	if !ok {
		t.Fatal("framing failed")
	}

	a, ok := p.(ACLData)
	if !ok {
		t.Fatalf("got %T", p)
	}
	if a.Handle != 0x0ABC {
		t.Fatalf("handle 0x%03X", a.Handle)
	}
	if a.PacketBoundaryFlag != 0x02 {
		t.Fatalf("boundary %v", a.PacketBoundaryFlag)
	}
	if a.BroadcastFlag != 0x01 {
		t.Fatalf("broadcast %v", a.BroadcastFlag)
	}
	if a.Len != 2 || !reflect.DeepEqual(a.Data, []byte{0x11, 0x22}) {
		t.Fatalf("data % X", a.Data)
	}
}

func TestFrameEvent(t *testing.T) {
	p, ok := Frame([]byte{PktTypeEvent, 0x05, 0x04, 0x00, 0x01, 0x00, 0x00})
	if !ok {
		t.Fatal("framing failed")
	}

	e, ok := p.(Event)
	if !ok {
		t.Fatalf("got %T", p)
	}
	if e.Code != 0x05 || e.Len != 4 {
		t.Fatalf("code 0x%02X len %v", e.Code, e.Len)
	}
	if !reflect.DeepEqual(e.Parameters, []byte{0x00, 0x01, 0x00, 0x00}) {
		t.Fatalf("parameters % X", e.Parameters)
	}
}

func TestFrameEventBorrows(t *testing.T) {
	buf := []byte{PktTypeEvent, 0x05, 0x01, 0x42}
	p, _ := Frame(buf)
	e := p.(Event)

	buf[3] = 0x43
	if e.Parameters[0] != 0x43 {
		t.Fatal("parameters are a copy, not a view")
	}
}

func TestFrameUnhandledTypes(t *testing.T) {
	for _, tag := range []uint8{PktTypeSCOData, PktTypeISOData, 0x42, 0xFF} {
		buf := []byte{tag, 0x01, 0x02, 0x03}
		p, ok := Frame(buf)
		if !ok {
			t.Fatalf("tag 0x%02X: framing failed", tag)
		}
		u, ok := p.(Unknown)
		if !ok {
			t.Fatalf("tag 0x%02X: got %T", tag, p)
		}
		if !reflect.DeepEqual(u.Raw, buf) {
			t.Fatalf("tag 0x%02X: raw % X", tag, u.Raw)
		}
	}
}

func TestFrameTruncated(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		{PktTypeCommand},
		{PktTypeCommand, 0x0D},
		{PktTypeCommand, 0x0D, 0x20},
		{PktTypeCommand, 0x0D, 0x20, 0x02, 0xaa}, // declares 2, has 1
		{PktTypeACLData, 0xbc},
		{PktTypeACLData, 0xbc, 0x9a, 0x02},
		{PktTypeACLData, 0xbc, 0x9a, 0x02, 0x00, 0x11}, // declares 2, has 1
		{PktTypeEvent},
		{PktTypeEvent, 0x05},
		{PktTypeEvent, 0x05, 0x04, 0x00}, // declares 4, has 1
	}

	for _, c := range cases {
		if p, ok := Frame(c); ok {
			t.Fatalf("% X framed as %T", c, p)
		}
	}
}
