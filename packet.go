// Package hci decodes the binary packets exchanged across the Bluetooth
// Host Controller Interface transport. Every decoded value borrows from
// the caller's buffer; the decoder never copies payload bytes, so a
// decoded packet is valid only as long as the buffer it was framed from
// and the buffer must stay immutable for that long.
package hci

import "github.com/btkit/hci/cursor"

// Packet is one framed HCI transport packet: Command, ACLData, Event or
// Unknown. Consumers type-switch on the concrete type.
type Packet interface {
	packet()
}

// Command is a host-to-controller command packet.
type Command struct {
	Opcode     uint16
	Len        int
	Parameters []byte
}

// ACLData is an asynchronous data packet.
type ACLData struct {
	Handle             uint16 // 12 bits
	PacketBoundaryFlag uint8  // 2 bits
	BroadcastFlag      uint8  // 2 bits
	Len                int
	Data               []byte
}

// Event is a controller-to-host event packet. Parameters is the raw
// parameter block; hand the packet to evt.FromPacket to interpret it.
type Event struct {
	Code       uint8
	Len        int
	Parameters []byte
}

// Unknown holds the full original buffer of a packet whose type tag is
// either unrecognized or recognized but not decoded (SCO, ISO).
type Unknown struct {
	Raw []byte
}

func (Command) packet() {}
func (ACLData) packet() {}
func (Event) packet()   {}
func (Unknown) packet() {}

// Frame classifies a raw transport buffer by its leading type tag and
// slices out the header fields of the matching packet type. All payload
// slices borrow from buf.
//
// A truncated buffer yields ok=false with no further diagnosis: framing
// sits on the transport boundary where truncation is the only expected
// failure, so field-level errors are left to the event decoder.
func Frame(buf []byte) (Packet, bool) {
	r := cursor.New(buf)
	t, ok := r.ReadUint8()
	if !ok {
		return nil, false
	}

	switch t {
	case PktTypeCommand:
		opcode, ok := r.ReadUint16()
		if !ok {
			return nil, false
		}
		plen, ok := r.ReadUint8()
		if !ok {
			return nil, false
		}
		params, ok := r.ReadBytes(int(plen))
		if !ok {
			return nil, false
		}
		return Command{Opcode: opcode, Len: int(plen), Parameters: params}, true

	case PktTypeACLData:
		header, ok := r.ReadUint16()
		if !ok {
			return nil, false
		}
		handle := header & 0x0FFF
		flags := uint8(header >> 12)
		dlen, ok := r.ReadUint16()
		if !ok {
			return nil, false
		}
		data, ok := r.ReadBytes(int(dlen))
		if !ok {
			return nil, false
		}
		return ACLData{
			Handle:             handle,
			PacketBoundaryFlag: (flags >> 2) & 0x03,
			BroadcastFlag:      flags & 0x03,
			Len:                int(dlen),
			Data:               data,
		}, true

	case PktTypeEvent:
		code, ok := r.ReadUint8()
		if !ok {
			return nil, false
		}
		plen, ok := r.ReadUint8()
		if !ok {
			return nil, false
		}
		params, ok := r.ReadBytes(int(plen))
		if !ok {
			return nil, false
		}
		return Event{Code: code, Len: int(plen), Parameters: params}, true

	case PktTypeSCOData:
		GetLogger().Warnf("synchronous data packet not implemented, passing through raw")
		return Unknown{Raw: buf}, true

	case PktTypeISOData:
		GetLogger().Warnf("ISO data packet not implemented, passing through raw")
		return Unknown{Raw: buf}, true

	default:
		GetLogger().Warnf("unknown HCI packet type 0x%02X", t)
		return Unknown{Raw: buf}, true
	}
}
