// Package adv decodes the type-length-value Advertising Data entries
// carried inside advertising reports and scan responses. Refer to the
// Supplement to the Bluetooth Core Specification, Part A, and the
// assigned numbers for the AD type codes.
//
// Decoded entries borrow from the caller's data block; nothing copies.
package adv

import (
	"unicode/utf8"
	"unsafe"

	"github.com/btkit/hci"
	"github.com/btkit/hci/cursor"
)

// AD type codes.
const (
	TypeFlags              uint8 = 0x01
	TypeIncompleteUUID16   uint8 = 0x02
	TypeCompleteUUID16     uint8 = 0x03
	TypeIncompleteUUID32   uint8 = 0x04
	TypeCompleteUUID32     uint8 = 0x05
	TypeIncompleteUUID128  uint8 = 0x06
	TypeCompleteUUID128    uint8 = 0x07
	TypeShortenedLocalName uint8 = 0x08
	TypeCompleteLocalName  uint8 = 0x09
	TypeTxPowerLevel       uint8 = 0x0A
	TypeClassOfDevice      uint8 = 0x0D
	TypeConnIntervalRange  uint8 = 0x12
	TypeServiceData        uint8 = 0x16
	TypeAppearance         uint8 = 0x19
	TypeDeviceAddress      uint8 = 0x1B
	TypeManufacturerData   uint8 = 0xFF
)

// Data is one decoded advertising data entry. The concrete type
// identifies the AD type; the value borrows from the data block.
type Data interface {
	adData()
}

type (
	// Flags is the AD flags octet.
	Flags uint8
	// IncompleteUUID16List is a partial list of 16-bit service UUIDs.
	IncompleteUUID16List []uint16
	// CompleteUUID16List is the full list of 16-bit service UUIDs.
	CompleteUUID16List []uint16
	// IncompleteUUID32List is a partial list of 32-bit service UUIDs.
	IncompleteUUID32List []uint32
	// CompleteUUID32List is the full list of 32-bit service UUIDs.
	CompleteUUID32List []uint32
	// IncompleteUUID128List is a partial list of 128-bit service UUIDs.
	IncompleteUUID128List [][16]byte
	// CompleteUUID128List is the full list of 128-bit service UUIDs.
	CompleteUUID128List [][16]byte
	// ShortenedLocalName is a truncated device name, validated UTF-8.
	ShortenedLocalName string
	// CompleteLocalName is the full device name, validated UTF-8.
	CompleteLocalName string
	// TxPowerLevel is the radiated power level in dBm.
	TxPowerLevel int8
	// ClassOfDevice is the device class word.
	ClassOfDevice uint32
	// ConnIntervalRange is the peripheral connection interval range,
	// kept as raw bytes.
	ConnIntervalRange []byte
	// ServiceData is a service UUID followed by its data, kept raw.
	ServiceData []byte
	// Appearance is the external appearance category.
	Appearance uint16
	// DeviceAddress is the LE Bluetooth device address entry, kept raw.
	DeviceAddress []byte
	// ManufacturerData is company-specific data, company ID included.
	ManufacturerData []byte
)

func (Flags) adData()                 {}
func (IncompleteUUID16List) adData()  {}
func (CompleteUUID16List) adData()    {}
func (IncompleteUUID32List) adData()  {}
func (CompleteUUID32List) adData()    {}
func (IncompleteUUID128List) adData() {}
func (CompleteUUID128List) adData()   {}
func (ShortenedLocalName) adData()    {}
func (CompleteLocalName) adData()     {}
func (TxPowerLevel) adData()          {}
func (ClassOfDevice) adData()         {}
func (ConnIntervalRange) adData()     {}
func (ServiceData) adData()           {}
func (Appearance) adData()            {}
func (DeviceAddress) adData()         {}
func (ManufacturerData) adData()      {}

// DataIterator lazily decodes one report's AD block. It stops when no
// bytes remain or an entry is malformed; a partial trailing entry is
// normal wire telemetry and never surfaces as an error.
type DataIterator struct {
	r *cursor.Reader
}

// NewDataIterator returns an iterator over one AD block. The iterator
// borrows b for its entire lifetime.
func NewDataIterator(b []byte) *DataIterator {
	return &DataIterator{r: cursor.New(b)}
}

// Next returns the next decoded entry, or ok=false when the block is
// exhausted, an entry is truncated, its value is structurally invalid,
// or its type code is unrecognized.
func (it *DataIterator) Next() (Data, bool) {
	if it.r.Remaining() == 0 {
		return nil, false
	}

	// Entry layout: length (covering type byte + value), type, value.
	l, ok := it.r.ReadUint8()
	if !ok || l < 1 {
		return nil, false
	}
	typ, ok := it.r.ReadUint8()
	if !ok {
		return nil, false
	}
	value, ok := it.r.ReadBytes(int(l) - 1)
	if !ok {
		return nil, false
	}

	d, err := decodeValue(typ, value)
	if err != nil {
		return nil, false
	}
	return d, true
}

// decodeValue reinterprets an entry's value bytes per its type code.
// Errors carry the field detail for callers that want per-entry
// diagnosis; the iterator itself discards them.
func decodeValue(typ uint8, value []byte) (Data, error) {
	r := cursor.New(value)

	switch typ {
	case TypeFlags:
		v, err := scalar8(r, "flags")
		return Flags(v), err

	case TypeIncompleteUUID16:
		v, err := uuid16s(r, "incomplete_uuid16_list")
		return IncompleteUUID16List(v), err
	case TypeCompleteUUID16:
		v, err := uuid16s(r, "complete_uuid16_list")
		return CompleteUUID16List(v), err
	case TypeIncompleteUUID32:
		v, err := uuid32s(r, "incomplete_uuid32_list")
		return IncompleteUUID32List(v), err
	case TypeCompleteUUID32:
		v, err := uuid32s(r, "complete_uuid32_list")
		return CompleteUUID32List(v), err
	case TypeIncompleteUUID128:
		v, err := uuid128s(r, "incomplete_uuid128_list")
		return IncompleteUUID128List(v), err
	case TypeCompleteUUID128:
		v, err := uuid128s(r, "complete_uuid128_list")
		return CompleteUUID128List(v), err

	case TypeShortenedLocalName:
		v, err := name(value, "shortened_local_name")
		return ShortenedLocalName(v), err
	case TypeCompleteLocalName:
		v, err := name(value, "complete_local_name")
		return CompleteLocalName(v), err

	case TypeTxPowerLevel:
		v, err := scalar8(r, "tx_power_level")
		return TxPowerLevel(int8(v)), err
	case TypeClassOfDevice:
		v, ok := r.ReadUint32()
		if !ok {
			return nil, &hci.OutOfBoundsError{Field: "class_of_device", Position: r.Pos()}
		}
		return ClassOfDevice(v), nil
	case TypeAppearance:
		v, ok := r.ReadUint16()
		if !ok {
			return nil, &hci.OutOfBoundsError{Field: "appearance", Position: r.Pos()}
		}
		return Appearance(v), nil

	case TypeConnIntervalRange:
		return ConnIntervalRange(value), nil
	case TypeServiceData:
		return ServiceData(value), nil
	case TypeDeviceAddress:
		return DeviceAddress(value), nil
	case TypeManufacturerData:
		return ManufacturerData(value), nil

	default:
		return nil, &hci.InvalidFieldError{Field: "ad_type", Position: 0}
	}
}

func scalar8(r *cursor.Reader, field string) (uint8, error) {
	v, ok := r.ReadUint8()
	if !ok {
		return 0, &hci.OutOfBoundsError{Field: field, Position: r.Pos()}
	}
	return v, nil
}

func uuid16s(r *cursor.Reader, field string) ([]uint16, error) {
	v, ok := r.ReadUint16Slice(r.Remaining())
	if !ok {
		return nil, &hci.InvalidLengthError{Field: field, Expected: 2, Found: r.Remaining()}
	}
	return v, nil
}

func uuid32s(r *cursor.Reader, field string) ([]uint32, error) {
	v, ok := r.ReadUint32Slice(r.Remaining())
	if !ok {
		return nil, &hci.InvalidLengthError{Field: field, Expected: 4, Found: r.Remaining()}
	}
	return v, nil
}

func uuid128s(r *cursor.Reader, field string) ([][16]byte, error) {
	v, ok := r.ReadUUID128Slice(r.Remaining())
	if !ok {
		return nil, &hci.InvalidLengthError{Field: field, Expected: 16, Found: r.Remaining()}
	}
	return v, nil
}

func name(value []byte, field string) (string, error) {
	if !utf8.Valid(value) {
		return "", &hci.InvalidFieldError{Field: field, Position: 0}
	}
	// string(value) would copy; view the bytes instead. The caller's
	// aliasing rule already forbids mutating the buffer under a view.
	return unsafeString(value), nil
}

func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&b))
}
