// Package radiotap decodes the Radiotap pseudo-header that capture
// drivers prepend to 802.11 frames in monitor mode: a versioned,
// self-describing bitmap of physical-layer capture metadata (channel,
// rate, signal strength, modulation details). See spec.md §4.3 and §6.
//
// Parse is a pure function over a caller-owned byte slice: no I/O, no
// shared mutable state beyond the immutable field catalog.
package radiotap

import (
	"fmt"

	"github.com/heistp/radtap/internal/bits"
	"github.com/heistp/radtap/internal/mcs"
	"github.com/pkg/errors"
)

// minHeaderLen is the fixed portion before any presence-bitmap words:
// version(1) + pad(1) + it_len(2).
const minHeaderLen = 4

// Record is one parsed Radiotap pseudo-header.
type Record struct {
	Vers    uint8
	Sz      uint16
	Present []FieldName
	Fields  map[FieldName]interface{}
	Errors  []*FieldError
}

// Parse decodes the Radiotap header at the start of buf. It fails with
// *BadVersion, *BadLength, or a wrapped *bits.Truncated when buf ends
// inside the fixed header or the presence bitmap; individual field decode failures are
// accumulated into the returned Record's Errors and do not abort the
// parse.
func Parse(buf []byte) (*Record, error) {
	vers, err := bits.U8(buf, 0, "vers")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if vers != 0 {
		return nil, &BadVersion{Got: vers}
	}

	itlen, err := bits.U16LE(buf, 2, "it_len")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if itlen < 8 || int(itlen) > len(buf) {
		return nil, &BadLength{ItLen: int(itlen), BufLen: len(buf)}
	}

	// Walk the presence-bitmap chain.
	var words []uint32
	cursor := minHeaderLen
	for {
		w, err := bits.U32LE(buf, cursor, "present")
		if err != nil {
			return nil, errors.WithStack(err)
		}
		words = append(words, w)
		cursor += 4
		if w&(1<<31) == 0 {
			break
		}
	}

	rec := &Record{
		Vers:   vers,
		Sz:     itlen,
		Fields: make(map[FieldName]interface{}),
	}

	for wi, word := range words {
		if word&(1<<30) != 0 {
			// Vendor namespace: this decoder knows no vendor namespaces, so
			// the rest of this word's bits (canonical or not) are left
			// uninterpreted rather than risk misdecoding vendor-private
			// data as a canonical field.
			rec.Errors = append(rec.Errors, &FieldError{
				Field:  FieldName(fmt.Sprintf("word%d", wi)),
				Reason: &VendorNamespace{Word: wi},
			})
			continue
		}
	bitLoop:
		for bit := 0; bit <= 29; bit++ {
			if word&(1<<uint(bit)) == 0 {
				continue
			}
			global := wi*32 + bit
			entry, ok := catalog[global]
			if !ok {
				rec.Errors = append(rec.Errors, &FieldError{
					Field:  FieldName(fmt.Sprintf("bit%d", global)),
					Reason: &UnknownField{Bit: global},
				})
				break bitLoop
			}
			cursor = bits.Align(cursor, entry.align)
			v, err := entry.decode(buf, cursor)
			if err != nil {
				rec.Errors = append(rec.Errors, &FieldError{Field: entry.name, Reason: err})
				continue
			}
			rec.Present = append(rec.Present, entry.name)
			rec.Fields[entry.name] = v
			cursor += entry.size
		}
	}

	return rec, nil
}

// PaddedSize returns the MPDU start offset relative to the Radiotap
// header: Sz itself, unless the Flags field's Datapad bit is set, in
// which case Sz is rounded up to a 4-byte boundary (spec.md §9's Atheros
// padding open question).
func (r *Record) PaddedSize() int {
	sz := int(r.Sz)
	if fl, ok := r.Fields[FieldFlags].(Flags); ok && fl.Datapad() {
		return bits.Align(sz, 4)
	}
	return sz
}

// Rate returns the derived data rate in Mb/s: rate_field*0.5 if the "rate"
// field is present, else the MCS table lookup if "mcs" is present, else
// (0, false).
func (r *Record) Rate() (float64, bool) {
	if v, ok := r.Fields[FieldRate].(uint8); ok {
		return float64(v) * 0.5, true
	}
	if m, ok := r.Fields[FieldMCS].(MCS); ok {
		bw := mcs.BW20
		switch m.Flags.Bandwidth() {
		case 0:
			bw = mcs.BW20
		case 1:
			bw = mcs.BW40
		case 2:
			bw = mcs.BW20L
		case 3:
			bw = mcs.BW20U
		}
		gi := mcs.GILong
		if m.Flags.ShortGI() {
			gi = mcs.GIShort
		}
		return mcs.Rate(int(m.Index), bw, gi)
	}
	return 0, false
}

// ChannelFlagTags returns the decoded channel-flags tag set, or nil if no
// "channel" field was decoded.
func (r *Record) ChannelFlagTags() []string {
	ch, ok := r.Fields[FieldChannel].(Channel)
	if !ok {
		return nil
	}
	return ch.Flags.Tags()
}

// RSS returns the antenna signal strength in dBm, as the "antsignal"
// field, and whether it was present.
func (r *Record) RSS() (int8, bool) {
	v, ok := r.Fields[FieldAntSignal].(int8)
	return v, ok
}

// MCSFlagsParams projects the mcs field's known/flags bytes into a map
// keyed by the subset of {bw, gi, ht, fec, stbc, ness} whose "known" bit
// is set, per spec.md §4.3.
func (r *Record) MCSFlagsParams() map[string]interface{} {
	m, ok := r.Fields[FieldMCS].(MCS)
	if !ok {
		return nil
	}
	out := make(map[string]interface{})
	if m.Known.Bandwidth() {
		out["bw"] = m.Flags.Bandwidth()
	}
	if m.Known.GuardInterval() {
		out["gi"] = m.Flags.ShortGI()
	}
	if m.Known.HTFormat() {
		out["ht"] = m.Flags.Greenfield()
	}
	if m.Known.FECType() {
		out["fec"] = m.Flags.FECLDPC()
	}
	if m.Known.STBC() {
		out["stbc"] = m.Flags.STBC()
	}
	if m.Known.NESS() {
		out["ness"] = m.Flags.NESS0()
	}
	return out
}
