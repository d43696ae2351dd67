package hci

// HCI packet type tags [Vol 4, Part A, 2].
const (
	PktTypeCommand uint8 = 0x01
	PktTypeACLData uint8 = 0x02
	PktTypeSCOData uint8 = 0x03
	PktTypeEvent   uint8 = 0x04
	PktTypeISOData uint8 = 0x05
)

// Packet boundary flags of an HCI ACL Data packet [Vol 4, Part E, 5.4.2].
const (
	PbfHostToControllerStart uint8 = 0x00
	PbfContinuing            uint8 = 0x01
	PbfControllerToHostStart uint8 = 0x02
	PbfCompleteL2CAPPDU      uint8 = 0x03
)

// Fixed header sizes, excluding the leading type tag.
const (
	CommandHeaderSize = 3 // opcode:u16, param-len:u8
	ACLDataHeaderSize = 4 // handle+flags:u16, data-len:u16
	EventHeaderSize   = 2 // event-code:u8, param-len:u8
)

// MaxParameterLength is the wire bound on command and event parameter
// blocks; the framer does not enforce it separately, a one-byte length
// field cannot exceed it.
const MaxParameterLength = 255
