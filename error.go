package hci

import "fmt"

// Decode errors. All four are ordinary values — malformed or unhandled
// controller input must never panic the host. Match with errors.As.

// InvalidFieldError reports a field whose bytes were present but
// structurally invalid (e.g. a local name that is not UTF-8).
type InvalidFieldError struct {
	Field    string
	Position int
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %q at offset %d", e.Field, e.Position)
}

// OutOfBoundsError reports a field whose bytes are not available in the
// buffer, i.e. a truncated packet.
type OutOfBoundsError struct {
	Field    string
	Position int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("field %q out of bounds at offset %d", e.Field, e.Position)
}

// InvalidLengthError reports a declared length that disagrees with the
// bytes actually present.
type InvalidLengthError struct {
	Field    string
	Expected int
	Found    int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("field %q length mismatch: declared %d, have %d", e.Field, e.Expected, e.Found)
}

// NotImplementedError reports a recognized but currently unhandled event
// or subevent code. This is expected protocol surface, not malformation:
// a controller is free to send events the host has no decoder for yet.
type NotImplementedError struct {
	EventCode    uint8
	SubeventCode uint8
	HasSubevent  bool
}

func (e *NotImplementedError) Error() string {
	if e.HasSubevent {
		return fmt.Sprintf("event 0x%02X subevent 0x%02X not implemented", e.EventCode, e.SubeventCode)
	}
	return fmt.Sprintf("event 0x%02X not implemented", e.EventCode)
}
