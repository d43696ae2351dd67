package evt

import (
	"reflect"
	"testing"

	"github.com/btkit/hci"
)

// report appends one advertising report record: event type, address
// type, 6-byte address, data length, data, rssi.
func report(b []byte, evtTyp, addrTyp uint8, addr []byte, data []byte, rssi int8) []byte {
	b = append(b, evtTyp, addrTyp)
	b = append(b, addr...)
	b = append(b, uint8(len(data)))
	b = append(b, data...)
	b = append(b, uint8(rssi))
	return b
}

func advReportEvent(t *testing.T, numReports uint8, records []byte) *AdvertisingReportIterator {
	t.Helper()

	params := append([]byte{LEAdvertisingReportSubCode, numReports}, records...)
	e, err := FromPacket(hci.Event{Code: LEMetaCode, Len: len(params), Parameters: params})
	if err != nil {
		t.Fatal(err)
	}

	it, ok := e.(LEMeta).Subevent.(*AdvertisingReportIterator)
	if !ok {
		t.Fatalf("got %T", e)
	}
	return it
}

func TestAdvertisingReportIterator(t *testing.T) {
	addr1 := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	addr2 := []byte{0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}

	var records []byte
	records = report(records, 0x00, 0x01, addr1, []byte{0x02, 0x01, 0x06}, -42)
	records = report(records, 0x04, 0x00, addr2, nil, -70)

	it := advReportEvent(t, 2, records)
	if it.NumReports != 2 {
		t.Fatalf("num reports %v", it.NumReports)
	}

	r1, ok := it.Next()
	if !ok {
		t.Fatal("first report missing")
	}
	if r1.EventType != 0x00 || r1.AddressType != 0x01 {
		t.Fatalf("got %+v", r1)
	}
	if !reflect.DeepEqual(r1.Address, addr1) {
		t.Fatalf("address % X", r1.Address)
	}
	if r1.RSSI != -42 {
		t.Fatalf("rssi %v", r1.RSSI)
	}

	r2, ok := it.Next()
	if !ok {
		t.Fatal("second report missing")
	}
	if !reflect.DeepEqual(r2.Address, addr2) || r2.RSSI != -70 {
		t.Fatalf("got %+v", r2)
	}

	if _, ok := it.Next(); ok {
		t.Fatal("iterator yielded a third report")
	}
	if _, ok := it.Next(); ok {
		t.Fatal("exhausted iterator yielded again")
	}
}

func TestAdvisoryCountIgnored(t *testing.T) {
	addr := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	records := report(nil, 0x00, 0x01, addr, []byte{0x02, 0x01, 0x06}, -42)

	// the controller claims 5 reports but sent bytes for one
	it := advReportEvent(t, 5, records)

	n := 0
	for {
		if _, ok := it.Next(); !ok {
			break
		}
		n++
	}
	if n != 1 {
		t.Fatalf("yielded %v reports", n)
	}
}

func TestTruncatedTrailingReportStops(t *testing.T) {
	addr := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	records := report(nil, 0x00, 0x01, addr, []byte{0x02, 0x01, 0x06}, -42)
	// second record cut off inside the address field
	records = append(records, 0x00, 0x01, 0xaa, 0xbb)

	it := advReportEvent(t, 2, records)

	if _, ok := it.Next(); !ok {
		t.Fatal("first report missing")
	}
	if r, ok := it.Next(); ok {
		t.Fatalf("truncated record decoded as %+v", r)
	}
}

func TestReportDataHandedToDataIterator(t *testing.T) {
	addr := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	// flags entry plus a complete local name
	data := []byte{0x02, 0x01, 0x06, 0x05, 0x09, 'r', 'u', 'u', 'v'}
	records := report(nil, 0x00, 0x01, addr, data, -42)

	it := advReportEvent(t, 1, records)
	r, ok := it.Next()
	if !ok {
		t.Fatal("report missing")
	}

	n := 0
	for {
		if _, ok := r.Data.Next(); !ok {
			break
		}
		n++
	}
	if n != 2 {
		t.Fatalf("decoded %v AD entries", n)
	}
}

func TestEmptyReportPayload(t *testing.T) {
	it := advReportEvent(t, 0, nil)
	if _, ok := it.Next(); ok {
		t.Fatal("empty payload yielded a report")
	}
}
