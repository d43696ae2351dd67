// Package h4 implements the UART (H4) transport framing: it reassembles
// the controller's byte stream into complete HCI transport packets and
// pumps them to and from a serial port. The framed buffers it emits are
// what hci.Frame consumes.
package h4

import (
	"time"

	"github.com/pkg/errors"

	"github.com/btkit/hci"
)

const assembleTimeout = 500 * time.Millisecond

// assembler accumulates serial chunks until one complete transport
// packet, delimited by its declared length, is available. Controller to
// host traffic only carries Event and ACL Data packets, so those are
// the start tags it hunts for.
type assembler struct {
	b        []byte
	pktType  byte
	deadline time.Time
	out      chan []byte
}

func newAssembler(out chan []byte) *assembler {
	return &assembler{
		b:   make([]byte, 0, 256),
		out: out,
	}
}

// Assemble feeds one serial chunk in. Complete packets are copied out
// to the channel; a stale partial frame is dropped after a timeout.
func (a *assembler) Assemble(b []byte) {
	switch {
	case len(b) == 0:
		return
	case !a.deadline.IsZero() && time.Now().After(a.deadline):
		fallthrough
	case a.b == nil:
		a.reset()
	default:
		// ok
	}

	if len(a.b) == 0 {
		if err := a.findStart(b); err != nil {
			return
		}
	} else {
		a.b = append(a.b, b...)
	}

	full, err := a.frame()
	if err != nil {
		return
	}

	out := make([]byte, len(full))
	copy(out, full)
	a.out <- out

	// keep whatever trails the frame
	if len(a.b) > len(full) {
		rem := make([]byte, len(a.b)-len(full))
		copy(rem, a.b[len(full):])
		a.reset()
		a.Assemble(rem)
	} else {
		a.reset()
	}
}

func (a *assembler) reset() {
	a.b = a.b[:0]
	a.deadline = time.Time{}
}

func (a *assembler) findStart(b []byte) error {
	for i, v := range b {
		switch v {
		case hci.PktTypeEvent, hci.PktTypeACLData:
			a.pktType = v
			a.deadline = time.Now().Add(assembleTimeout)
			a.b = append(a.b, b[i:]...)
			return nil
		}
	}
	return errors.New("no packet start byte")
}

// packetLength returns the full packet length, tag included, once
// enough header bytes are buffered to know it.
func (a *assembler) packetLength() (int, error) {
	switch a.pktType {
	case hci.PktTypeEvent:
		// tag, code, param-len
		if len(a.b) < 1+hci.EventHeaderSize {
			return 0, errors.New("incomplete event header")
		}
		return 1 + hci.EventHeaderSize + int(a.b[2]), nil
	case hci.PktTypeACLData:
		// tag, handle word, data-len word
		if len(a.b) < 1+hci.ACLDataHeaderSize {
			return 0, errors.New("incomplete ACL header")
		}
		return 1 + hci.ACLDataHeaderSize + (int(a.b[3]) | int(a.b[4])<<8), nil
	default:
		return 0, errors.Errorf("invalid packet type 0x%02X", a.pktType)
	}
}

func (a *assembler) frame() ([]byte, error) {
	tl, err := a.packetLength()
	if err != nil {
		return nil, err
	}
	if len(a.b) < tl {
		return nil, errors.New("incomplete packet")
	}
	return a.b[:tl], nil
}
