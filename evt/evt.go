// Package evt interprets HCI event packets. FromPacket turns an event
// packet's parameter bytes into one typed Event value, recursing into
// subevent dispatch for the LE Meta event. Decoded values borrow from
// the packet's buffer and are valid only as long as it is.
package evt

import (
	"github.com/btkit/hci"
	"github.com/btkit/hci/cursor"
)

// Event is one decoded controller event: DisconnectionComplete,
// CommandComplete or LEMeta.
type Event interface {
	event()
}

// DisconnectionComplete [Vol 4, Part E, 7.7.5].
type DisconnectionComplete struct {
	Status           uint8
	ConnectionHandle uint16
	Reason           uint8
}

// CommandComplete [Vol 4, Part E, 7.7.14]. ReturnParameters is the
// variable tail of the packet: everything after the opcode, up to the
// packet's declared parameter length.
type CommandComplete struct {
	NumHCICommandPackets uint8
	CommandOpcode        uint16
	ReturnParameters     []byte
}

// LEMeta wraps one decoded LE Meta subevent [Vol 4, Part E, 7.7.65].
type LEMeta struct {
	Subevent Subevent
}

func (DisconnectionComplete) event() {}
func (CommandComplete) event()       {}
func (LEMeta) event()                {}

// Subevent is one decoded LE Meta subevent.
type Subevent interface {
	subevent()
}

// LEConnectionComplete [Vol 4, Part E, 7.7.65.1].
type LEConnectionComplete struct {
	Status               uint8
	ConnectionHandle     uint16
	Role                 uint8
	PeerAddressType      uint8
	PeerAddress          []byte // 6 bytes, borrowed
	ConnectionInterval   uint16
	PeripheralLatency    uint16
	SupervisionTimeout   uint16
	CentralClockAccuracy uint8
}

// LEConnectionUpdateComplete [Vol 4, Part E, 7.7.65.3].
type LEConnectionUpdateComplete struct {
	Status             uint8
	ConnectionHandle   uint16
	ConnectionInterval uint16
	PeripheralLatency  uint16
	SupervisionTimeout uint16
}

func (LEConnectionComplete) event()          {}
func (LEConnectionUpdateComplete) event()    {}
func (LEConnectionComplete) subevent()       {}
func (LEConnectionUpdateComplete) subevent() {}
func (*AdvertisingReportIterator) subevent() {}

// FromPacket decodes an event packet's parameters into a typed Event.
// Recognized but unhandled event and subevent codes return
// *hci.NotImplementedError after a logged warning; truncated or
// malformed parameters return a field-tagged decode error.
func FromPacket(p hci.Event) (Event, error) {
	if p.Len != len(p.Parameters) {
		return nil, &hci.InvalidLengthError{
			Field:    "parameters",
			Expected: p.Len,
			Found:    len(p.Parameters),
		}
	}

	r := cursor.New(p.Parameters)

	switch p.Code {
	case DisconnectionCompleteCode:
		return decodeDisconnectionComplete(r)
	case CommandCompleteCode:
		return decodeCommandComplete(r, p.Len)
	case LEMetaCode:
		return decodeLEMeta(r, p.Len)
	default:
		if name, ok := EventCodeName(p.Code); ok {
			hci.GetLogger().Warnf("event %s (0x%02X) not implemented, skipping", name, p.Code)
		} else {
			hci.GetLogger().Warnf("unknown event code 0x%02X, skipping", p.Code)
		}
		return nil, &hci.NotImplementedError{EventCode: p.Code}
	}
}

func decodeDisconnectionComplete(r *cursor.Reader) (Event, error) {
	var e DisconnectionComplete
	var err error
	if e.Status, err = u8(r, "status"); err != nil {
		return nil, err
	}
	if e.ConnectionHandle, err = u16(r, "connection_handle"); err != nil {
		return nil, err
	}
	if e.Reason, err = u8(r, "reason"); err != nil {
		return nil, err
	}
	return e, nil
}

func decodeCommandComplete(r *cursor.Reader, plen int) (Event, error) {
	var e CommandComplete
	var err error
	if e.NumHCICommandPackets, err = u8(r, "num_hci_command_packets"); err != nil {
		return nil, err
	}
	if e.CommandOpcode, err = u16(r, "command_opcode"); err != nil {
		return nil, err
	}
	// Variable tail: whatever the declared length leaves after the
	// fixed fields belongs to the completed command's return block.
	if e.ReturnParameters, err = tail(r, plen-r.Pos(), "return_parameters"); err != nil {
		return nil, err
	}
	return e, nil
}

func decodeLEMeta(r *cursor.Reader, plen int) (Event, error) {
	sub, err := u8(r, "subevent_code")
	if err != nil {
		return nil, err
	}

	switch sub {
	case LEConnectionCompleteSubCode:
		return decodeLEConnectionComplete(r)
	case LEAdvertisingReportSubCode:
		return decodeLEAdvertisingReport(r, plen)
	case LEConnectionUpdateCompleteSubCode:
		return decodeLEConnectionUpdateComplete(r)
	default:
		if name, ok := SubeventCodeName(sub); ok {
			hci.GetLogger().Warnf("LE subevent %s (0x%02X) not implemented, skipping", name, sub)
		} else {
			hci.GetLogger().Warnf("unknown LE subevent code 0x%02X, skipping", sub)
		}
		return nil, &hci.NotImplementedError{
			EventCode:    LEMetaCode,
			SubeventCode: sub,
			HasSubevent:  true,
		}
	}
}

func decodeLEConnectionComplete(r *cursor.Reader) (Event, error) {
	var s LEConnectionComplete
	var err error
	if s.Status, err = u8(r, "status"); err != nil {
		return nil, err
	}
	if s.ConnectionHandle, err = u16(r, "connection_handle"); err != nil {
		return nil, err
	}
	if s.Role, err = u8(r, "role"); err != nil {
		return nil, err
	}
	if s.PeerAddressType, err = u8(r, "peer_address_type"); err != nil {
		return nil, err
	}
	if s.PeerAddress, err = bytes(r, 6, "peer_address"); err != nil {
		return nil, err
	}
	if s.ConnectionInterval, err = u16(r, "connection_interval"); err != nil {
		return nil, err
	}
	if s.PeripheralLatency, err = u16(r, "peripheral_latency"); err != nil {
		return nil, err
	}
	if s.SupervisionTimeout, err = u16(r, "supervision_timeout"); err != nil {
		return nil, err
	}
	if s.CentralClockAccuracy, err = u8(r, "central_clock_accuracy"); err != nil {
		return nil, err
	}
	return LEMeta{Subevent: s}, nil
}

func decodeLEAdvertisingReport(r *cursor.Reader, plen int) (Event, error) {
	num, err := u8(r, "num_reports")
	if err != nil {
		return nil, err
	}
	reports, err := tail(r, plen-r.Pos(), "reports")
	if err != nil {
		return nil, err
	}
	return LEMeta{Subevent: &AdvertisingReportIterator{
		NumReports: num,
		r:          cursor.New(reports),
	}}, nil
}

func decodeLEConnectionUpdateComplete(r *cursor.Reader) (Event, error) {
	var s LEConnectionUpdateComplete
	var err error
	if s.Status, err = u8(r, "status"); err != nil {
		return nil, err
	}
	if s.ConnectionHandle, err = u16(r, "connection_handle"); err != nil {
		return nil, err
	}
	if s.ConnectionInterval, err = u16(r, "connection_interval"); err != nil {
		return nil, err
	}
	if s.PeripheralLatency, err = u16(r, "peripheral_latency"); err != nil {
		return nil, err
	}
	if s.SupervisionTimeout, err = u16(r, "supervision_timeout"); err != nil {
		return nil, err
	}
	return LEMeta{Subevent: s}, nil
}

// Read helpers. Each relabels a cursor failure with the logical field
// name and the position at failure time, so a truncated packet is
// diagnosable from the error alone.

func u8(r *cursor.Reader, field string) (uint8, error) {
	v, ok := r.ReadUint8()
	if !ok {
		return 0, &hci.OutOfBoundsError{Field: field, Position: r.Pos()}
	}
	return v, nil
}

func u16(r *cursor.Reader, field string) (uint16, error) {
	v, ok := r.ReadUint16()
	if !ok {
		return 0, &hci.OutOfBoundsError{Field: field, Position: r.Pos()}
	}
	return v, nil
}

func bytes(r *cursor.Reader, n int, field string) ([]byte, error) {
	v, ok := r.ReadBytes(n)
	if !ok {
		return nil, &hci.OutOfBoundsError{Field: field, Position: r.Pos()}
	}
	return v, nil
}

func tail(r *cursor.Reader, n int, field string) ([]byte, error) {
	if n < 0 {
		return nil, &hci.InvalidLengthError{Field: field, Expected: 0, Found: n}
	}
	return bytes(r, n, field)
}
