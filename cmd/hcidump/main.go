// hcidump frames and decodes hex-encoded HCI transport packets and
// prints one JSON object per packet. Packets are taken from the command
// line or, with no arguments, one per line from stdin.
//
//	hcidump 040504000001000013
//	cat capture.txt | hcidump --events-only
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/btkit/hci"
	"github.com/btkit/hci/adv"
	"github.com/btkit/hci/evt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	app := cli.NewApp()
	app.Name = "hcidump"
	app.Usage = "decode hex-encoded HCI transport packets to JSON"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "events-only, e",
			Usage: "print only event packets",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "turn on trace logging",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		hci.SetLogLevelMax()
	}

	out := json.NewEncoder(os.Stdout)

	dump := func(s string) error {
		buf, err := hex.DecodeString(strings.TrimSpace(s))
		if err != nil {
			return errors.Wrap(err, "bad hex input")
		}
		v := decode(buf, c.Bool("events-only"))
		if v == nil {
			return nil
		}
		return errors.Wrap(out.Encode(v), "can't encode")
	}

	if c.NArg() > 0 {
		for _, arg := range c.Args() {
			if err := dump(arg); err != nil {
				return err
			}
		}
		return nil
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if sc.Text() == "" {
			continue
		}
		if err := dump(sc.Text()); err != nil {
			return err
		}
	}
	return errors.Wrap(sc.Err(), "can't read stdin")
}

func decode(buf []byte, eventsOnly bool) interface{} {
	p, ok := hci.Frame(buf)
	if !ok {
		return map[string]interface{}{"error": "truncated packet"}
	}

	switch p := p.(type) {
	case hci.Command:
		if eventsOnly {
			return nil
		}
		return map[string]interface{}{
			"type":       "command",
			"opcode":     fmt.Sprintf("0x%04X", p.Opcode),
			"len":        p.Len,
			"parameters": hex.EncodeToString(p.Parameters),
		}
	case hci.ACLData:
		if eventsOnly {
			return nil
		}
		return map[string]interface{}{
			"type":      "acl",
			"handle":    p.Handle,
			"boundary":  p.PacketBoundaryFlag,
			"broadcast": p.BroadcastFlag,
			"len":       p.Len,
			"data":      hex.EncodeToString(p.Data),
		}
	case hci.Event:
		return decodeEvent(p)
	case hci.Unknown:
		if eventsOnly {
			return nil
		}
		return map[string]interface{}{
			"type": "unknown",
			"raw":  hex.EncodeToString(p.Raw),
		}
	default:
		return nil
	}
}

func decodeEvent(p hci.Event) interface{} {
	m := map[string]interface{}{
		"type": "event",
		"code": fmt.Sprintf("0x%02X", p.Code),
	}
	if name, ok := evt.EventCodeName(p.Code); ok {
		m["name"] = name
	}

	e, err := evt.FromPacket(p)
	if err != nil {
		m["error"] = err.Error()
		return m
	}

	switch e := e.(type) {
	case evt.DisconnectionComplete, evt.CommandComplete:
		m["event"] = e
	case evt.LEMeta:
		if it, ok := e.Subevent.(*evt.AdvertisingReportIterator); ok {
			m["event"] = reports(it)
		} else {
			m["event"] = e.Subevent
		}
	}
	return m
}

func reports(it *evt.AdvertisingReportIterator) []interface{} {
	var out []interface{}
	for {
		r, ok := it.Next()
		if !ok {
			return out
		}

		var data []interface{}
		for {
			d, ok := r.Data.Next()
			if !ok {
				break
			}
			data = append(data, adEntry(d))
		}

		out = append(out, map[string]interface{}{
			"event_type":   r.EventType,
			"address_type": r.AddressType,
			"address":      hex.EncodeToString(r.Address),
			"rssi":         r.RSSI,
			"data":         data,
		})
	}
}

func adEntry(d adv.Data) interface{} {
	switch d := d.(type) {
	case adv.Flags:
		return map[string]interface{}{"flags": fmt.Sprintf("0x%02X", uint8(d))}
	case adv.IncompleteUUID16List:
		return map[string]interface{}{"incomplete_uuid16": []uint16(d)}
	case adv.CompleteUUID16List:
		return map[string]interface{}{"complete_uuid16": []uint16(d)}
	case adv.IncompleteUUID32List:
		return map[string]interface{}{"incomplete_uuid32": []uint32(d)}
	case adv.CompleteUUID32List:
		return map[string]interface{}{"complete_uuid32": []uint32(d)}
	case adv.IncompleteUUID128List:
		return map[string]interface{}{"incomplete_uuid128": uuidStrings(d)}
	case adv.CompleteUUID128List:
		return map[string]interface{}{"complete_uuid128": uuidStrings(d)}
	case adv.ShortenedLocalName:
		return map[string]interface{}{"shortened_local_name": string(d)}
	case adv.CompleteLocalName:
		return map[string]interface{}{"complete_local_name": string(d)}
	case adv.TxPowerLevel:
		return map[string]interface{}{"tx_power_level": int8(d)}
	case adv.ClassOfDevice:
		return map[string]interface{}{"class_of_device": fmt.Sprintf("0x%06X", uint32(d))}
	case adv.ConnIntervalRange:
		return map[string]interface{}{"conn_interval_range": hex.EncodeToString(d)}
	case adv.ServiceData:
		return map[string]interface{}{"service_data": hex.EncodeToString(d)}
	case adv.Appearance:
		return map[string]interface{}{"appearance": uint16(d)}
	case adv.DeviceAddress:
		return map[string]interface{}{"device_address": hex.EncodeToString(d)}
	case adv.ManufacturerData:
		return map[string]interface{}{"manufacturer_data": hex.EncodeToString(d)}
	default:
		return fmt.Sprintf("%v", d)
	}
}

func uuidStrings(uu [][16]byte) []string {
	out := make([]string, 0, len(uu))
	for _, u := range uu {
		out = append(out, hex.EncodeToString(u[:]))
	}
	return out
}
