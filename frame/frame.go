// Package frame ties a Radiotap pseudo-header to the 802.11 MPDU that
// follows it, giving callers a single object to query for either layer's
// fields instead of threading two parse results through their own code.
package frame

import (
	"github.com/heistp/radtap/dot11"
	"github.com/heistp/radtap/radiotap"
)

// Frame is one captured 802.11 frame: its Radiotap metadata, its decoded
// MAC header, and the body bytes remaining after both headers and any
// trailer (FCS, encryption MIC/ICV) are accounted for.
type Frame struct {
	Radiotap *radiotap.Record
	MPDU     *dot11.MPDU
	Body     []byte
}

// Parse decodes buf as Radiotap header + 802.11 MPDU + body. Whether the
// MPDU carries a trailing FCS is read from the Radiotap flags field
// itself (bit 1, spec.md §6); captures that omit the flags field are
// assumed not to carry one.
func Parse(buf []byte) (*Frame, error) {
	rt, err := radiotap.Parse(buf)
	if err != nil {
		return nil, err
	}

	hasFCS := false
	if fl, ok := rt.Fields[radiotap.FieldFlags].(radiotap.Flags); ok {
		hasFCS = fl.FCS()
	}

	start := rt.PaddedSize()
	if start > len(buf) {
		return nil, &dot11.Truncated{Context: "mpdu: radiotap header exceeds buffer"}
	}
	mpdu, err := dot11.Parse(buf[start:], hasFCS)
	if err != nil {
		return nil, err
	}

	bodyStart := start + mpdu.Offset
	bodyEnd := len(buf) - mpdu.Stripped
	var body []byte
	if bodyStart <= bodyEnd && bodyEnd <= len(buf) {
		body = buf[bodyStart:bodyEnd]
	}

	return &Frame{Radiotap: rt, MPDU: mpdu, Body: body}, nil
}

// Rate reports the derived data rate in Mb/s from the Radiotap layer.
func (f *Frame) Rate() (float64, bool) {
	return f.Radiotap.Rate()
}

// Encrypted reports whether the MAC header's protected-frame flag was set
// and an encryption header was successfully decoded.
func (f *Frame) Encrypted() bool {
	return f.MPDU.HasCrypt
}
