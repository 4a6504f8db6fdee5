// Package dot11 decodes the 802.11 MAC header (MPDU) that follows a
// Radiotap pseudo-header: frame control, duration/ID, the address set
// implied by frame type and to-DS/from-DS, sequence control, QoS and HT
// control, and the encryption header/trailer when the protected-frame
// flag is set. See spec.md §§4.4-4.7.
//
// Parse is a pure function over a caller-owned byte slice: no I/O, no
// shared mutable state.
package dot11

import (
	"fmt"

	"github.com/heistp/radtap/internal/bits"
)

// qosMask picks out the QoS-capable half of the data subtype space
// (0x8-0xf), grounded on the teacher's radiotap_80211.go.
const qosMask = 0x8

// ctrlAddrCount maps control-frame subtypes to how many address fields
// follow duration/ID (control frames carry no sequence control). Values (and the uncertainty noted for the
// subtypes this decoder has never observed on the wire) are carried over
// from the teacher's cfMACs map.
var ctrlAddrCount = map[uint8]int{
	SubtypeCtrlWrapper:     1, // haven't seen, expect 1
	SubtypeCtrlBlockAckReq: 2, // ok
	SubtypeCtrlBlockAck:    2, // ok
	SubtypeCtrlPSPoll:      2, // BSSID/RA, then TA (spec.md §4.5)
	SubtypeCtrlRTS:         2, // ok
	SubtypeCtrlCTS:         1, // ok
	SubtypeCtrlACK:         1, // ok
	SubtypeCtrlCFEnd:       1, // haven't seen, expect 1
	SubtypeCtrlCFEndCFAck:  2, // haven't seen, expect 2
}

// MPDU is one decoded 802.11 MAC header.
type MPDU struct {
	Vers    uint8
	Type    Type
	Subtype uint8
	Flags   FCFlags

	Duration Duration

	Addr       []string // addr1..addrN, in wire order; role is type/flag-dependent and not stored
	AddrOffset []int    // byte offset of each entry in Addr, relative to the buffer passed to Parse

	HasSeqCtrl bool
	SeqCtrl    uint16 // fragment number (low 4 bits) | sequence number (high 12 bits)

	HasQoS bool
	QoS    QoS

	HasCtrlWrapperFC bool
	CtrlWrapperFC    uint16

	HasHTC bool
	HTC    uint32

	HasCrypt bool
	Crypt    Crypt

	HasFCS bool
	FCS    uint32

	Size     int
	Offset   int // byte offset where the frame body starts
	Stripped int // trailer bytes (FCS + crypt MIC/ICV) excluded from the body

	Present []string
	Errors  []*FieldError
}

func parseFC(fc uint16) (vers uint8, typ Type, subtype uint8, flags FCFlags) {
	vers = uint8(fc & 0x3)
	typ = Type((fc >> 2) & 0x3)
	subtype = uint8((fc >> 4) & 0xf)
	flags = FCFlags(fc >> 8)
	return
}

// SeqNum returns the 12-bit sequence number and 4-bit fragment number
// packed into SeqCtrl.
func (m *MPDU) SeqNum() (seq uint16, frag uint8) {
	return m.SeqCtrl >> 4, uint8(m.SeqCtrl & 0xf)
}

// Parse decodes the MPDU at the start of buf. hasFCS tells it whether the
// capture retained the trailing 4-byte frame check sequence (Radiotap's
// "fcs" flag, spec.md §4.3).
//
// Only a frame-control-and-duration truncation is fatal. Every later
// bounds failure is appended to the returned MPDU's Errors and stops
// further field decode, per spec.md §4.7 step 11; the partial record is
// still returned.
func Parse(buf []byte, hasFCS bool) (*MPDU, error) {
	if len(buf) < 10 {
		return nil, &Truncated{Context: "framectrl"}
	}

	m := &MPDU{Size: len(buf)}

	fcRaw, _ := bits.U16LE(buf, 0, "framectrl")
	m.Vers, m.Type, m.Subtype, m.Flags = parseFC(fcRaw)
	m.Present = append(m.Present, "framectrl")

	durRaw, _ := bits.U16LE(buf, 2, "duration")
	m.Duration = parseDuration(durRaw, m.Type, m.Subtype)
	m.Present = append(m.Present, "duration")

	offset := 4

	if hasFCS && len(buf) >= offset+4 {
		fcsOff := len(buf) - 4
		if fcsOff >= offset {
			if v, err := bits.U32LE(buf, fcsOff, "fcs"); err == nil {
				m.HasFCS = true
				m.FCS = v
				m.Stripped += 4
				m.Present = append(m.Present, "fcs")
			}
		}
	}

	nAddr, hasSeq, qosCapable := addressShape(m.Type, m.Subtype)

	stop := false
	fail := func(field string, err error) {
		m.Errors = append(m.Errors, &FieldError{Field: field, Reason: err})
		stop = true
	}

	m.Addr = make([]string, 0, nAddr)
	m.AddrOffset = make([]int, 0, nAddr)
	for i := 1; i <= nAddr && !stop; i++ {
		mac, err := bits.MAC(buf, offset, fmt.Sprintf("addr%d", i))
		if err != nil {
			fail(fmt.Sprintf("addr%d", i), err)
			break
		}
		m.Addr = append(m.Addr, mac)
		m.AddrOffset = append(m.AddrOffset, offset)
		m.Present = append(m.Present, fmt.Sprintf("addr%d", i))
		offset += 6
	}

	if !stop && hasSeq {
		v, err := bits.U16LE(buf, offset, "seqctrl")
		if err != nil {
			fail("seqctrl", err)
		} else {
			m.HasSeqCtrl = true
			m.SeqCtrl = v
			m.Present = append(m.Present, "seqctrl")
			offset += 2
		}
	}

	if !stop && m.Type == TypeData && m.Flags.ToDS() && m.Flags.FromDS() {
		mac, err := bits.MAC(buf, offset, "addr4")
		if err != nil {
			fail("addr4", err)
		} else {
			m.Addr = append(m.Addr, mac)
			m.AddrOffset = append(m.AddrOffset, offset)
			m.Present = append(m.Present, "addr4")
			offset += 6
		}
	}

	qosDataFrame := false
	if !stop && qosCapable {
		b0, err0 := bits.U8(buf, offset, "qos")
		b1, err1 := bits.U8(buf, offset+1, "qos")
		if err0 != nil {
			fail("qos", err0)
		} else if err1 != nil {
			fail("qos", err1)
		} else {
			qosDataFrame = true
			m.HasQoS = true
			m.QoS = parseQoS(b0, b1)
			m.Present = append(m.Present, "qos")
			offset += 2
		}
	}

	if !stop && m.Type == TypeCtrl && m.Subtype == SubtypeCtrlWrapper {
		v, err := bits.U16LE(buf, offset, "ctrlwrapperfc")
		if err != nil {
			fail("ctrlwrapperfc", err)
		} else {
			m.HasCtrlWrapperFC = true
			m.CtrlWrapperFC = v
			m.Present = append(m.Present, "ctrlwrapperfc")
			offset += 2
		}
	}

	htcExpected := (m.Type == TypeCtrl && m.Subtype == SubtypeCtrlWrapper) ||
		(qosDataFrame && m.Flags.Order()) ||
		(m.Type == TypeMgmt && m.Flags.Order())
	if !stop && htcExpected {
		v, err := bits.U32LE(buf, offset, "htc")
		if err != nil {
			fail("htc", err)
		} else {
			m.HasHTC = true
			m.HTC = v
			m.Present = append(m.Present, "htc")
			offset += 4
		}
	}

	if !stop && m.Flags.Protected() {
		c, err := parseCrypt(buf, offset)
		if err != nil {
			fail("crypt", err)
		} else {
			m.HasCrypt = true
			m.Crypt = c
			m.Present = append(m.Present, "crypt")
			offset += c.HeaderLen
			m.Stripped += c.TrailerLen
		}
	}

	m.Offset = offset
	return m, nil
}

// addressShape returns the number of address fields before sequence
// control, whether sequence control is present at all, and whether the
// subtype carries QoS control. Management and data frames always carry
// three addresses (plus an optional fourth, handled separately, for
// WDS data frames); control frames vary per subtype per ctrlAddrCount;
// the reserved type carries none.
func addressShape(typ Type, subtype uint8) (nAddr int, hasSeq bool, qosCapable bool) {
	switch typ {
	case TypeMgmt:
		return 3, true, false
	case TypeData:
		return 3, true, subtype&qosMask != 0
	case TypeCtrl:
		return ctrlAddrCount[subtype], false, false
	default:
		return 0, false, false
	}
}
