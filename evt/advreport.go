package evt

import (
	"github.com/btkit/hci/adv"
	"github.com/btkit/hci/cursor"
)

// AdvertisingReport is one per-device scan observation from an LE
// Advertising Report event. Address and the data block borrow from the
// event buffer.
type AdvertisingReport struct {
	EventType   uint8
	AddressType uint8
	Address     []byte // 6 bytes, borrowed
	Data        *adv.DataIterator
	RSSI        int8
}

// AdvertisingReportIterator lazily decodes the report records of an LE
// Advertising Report event. NumReports is the controller's advisory
// count; iteration is bounded by the actual bytes present, never by it,
// so a controller that lies about the count cannot push a read out of
// bounds.
type AdvertisingReportIterator struct {
	NumReports uint8
	r          *cursor.Reader
}

// Next returns the next report, or ok=false when the payload is
// exhausted or a record is truncated mid-field. A partial trailing
// record ends iteration silently; on a correctly framed buffer that is
// the only way a field read can fail here.
func (it *AdvertisingReportIterator) Next() (AdvertisingReport, bool) {
	if it.r.Remaining() == 0 {
		return AdvertisingReport{}, false
	}

	var rep AdvertisingReport
	var ok bool
	if rep.EventType, ok = it.r.ReadUint8(); !ok {
		return AdvertisingReport{}, false
	}
	if rep.AddressType, ok = it.r.ReadUint8(); !ok {
		return AdvertisingReport{}, false
	}
	if rep.Address, ok = it.r.ReadBytes(6); !ok {
		return AdvertisingReport{}, false
	}
	dlen, ok := it.r.ReadUint8()
	if !ok {
		return AdvertisingReport{}, false
	}
	data, ok := it.r.ReadBytes(int(dlen))
	if !ok {
		return AdvertisingReport{}, false
	}
	rep.Data = adv.NewDataIterator(data)
	rssi, ok := it.r.ReadUint8()
	if !ok {
		return AdvertisingReport{}, false
	}
	rep.RSSI = int8(rssi)

	return rep, true
}
