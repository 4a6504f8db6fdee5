package dot11

import "github.com/heistp/radtap/internal/bits"

// CryptType identifies which encryption header shape was found after the
// MAC header (spec.md §4.6).
type CryptType uint8

const (
	CryptWEP CryptType = iota
	CryptTKIP
	CryptCCMP
	CryptWPA
)

func (t CryptType) String() string {
	switch t {
	case CryptWEP:
		return "wep"
	case CryptTKIP:
		return "tkip"
	case CryptCCMP:
		return "ccmp"
	case CryptWPA:
		return "wpa"
	default:
		return "unknown"
	}
}

// Crypt is the decoded encryption header. Fields not meaningful for Type
// are left zero. WEP uses IV0..IV2; TKIP and CCMP reconstruct a 6-byte
// packet/sequence number in PN0..PN5 (TKIP calls this the TSC, CCMP the
// PN). CCMP sends PN0, PN1 first; TKIP sends TSC1, a WEP seed byte, then
// TSC0, and the seed byte is not kept. The MIC and ICV
// trailers are never decoded — their contents aren't meaningful without
// the session key — only their lengths are tracked via TrailerLen so the
// caller can strip them.
//
// CryptWPA is never produced by decode: legacy WPA1 shares TKIP's header
// shape and is indistinguishable from raw MAC-header bytes alone, absent
// the RSN/WPA information element exchanged at association (out of scope
// per spec.md's higher-layer-protocol non-goal). The type is kept so a
// caller that has that out-of-band context can relabel a CryptTKIP result.
type Crypt struct {
	Type       CryptType
	KeyID      uint8
	ExtIV      bool
	IV0        uint8
	IV1        uint8
	IV2        uint8
	PN0        uint8
	PN1        uint8
	PN2        uint8
	PN3        uint8
	PN4        uint8
	PN5        uint8
	HeaderLen  int
	TrailerLen int
}

// parseCrypt reads the encryption header starting at off. It returns the
// decoded Crypt, whose HeaderLen is the number of header bytes consumed,
// or an error if buf ends before the 4-byte (WEP) or 8-byte (ext-iv)
// header does.
func parseCrypt(buf []byte, off int) (Crypt, error) {
	b0, err := bits.U8(buf, off, "crypt")
	if err != nil {
		return Crypt{}, err
	}
	b1, err := bits.U8(buf, off+1, "crypt")
	if err != nil {
		return Crypt{}, err
	}
	b2, err := bits.U8(buf, off+2, "crypt")
	if err != nil {
		return Crypt{}, err
	}
	b3, err := bits.U8(buf, off+3, "crypt")
	if err != nil {
		return Crypt{}, err
	}
	keyID := (b3 >> 6) & 0x3
	extIV := b3&0x20 != 0

	if !extIV {
		return Crypt{
			Type:       CryptWEP,
			KeyID:      keyID,
			ExtIV:      false,
			IV0:        b0,
			IV1:        b1,
			IV2:        b2,
			HeaderLen:  4,
			TrailerLen: 4, // ICV
		}, nil
	}

	pn2, err := bits.U8(buf, off+4, "crypt")
	if err != nil {
		return Crypt{}, err
	}
	pn3, err := bits.U8(buf, off+5, "crypt")
	if err != nil {
		return Crypt{}, err
	}
	pn4, err := bits.U8(buf, off+6, "crypt")
	if err != nil {
		return Crypt{}, err
	}
	pn5, err := bits.U8(buf, off+7, "crypt")
	if err != nil {
		return Crypt{}, err
	}

	c := Crypt{
		KeyID: keyID,
		ExtIV: true,
		PN0:   b0,
		PN1:   b1,
		PN2:   pn2,
		PN3:   pn3,
		PN4:   pn4,
		PN5:   pn5,
	}
	if b1&0x01 != 0 {
		c.Type = CryptCCMP
		c.HeaderLen = 8
		c.TrailerLen = 8 // MIC only
	} else {
		c.Type = CryptTKIP
		c.PN0 = b2 // TSC0; b1 is the WEP seed
		c.PN1 = b0 // TSC1
		c.HeaderLen = 8
		c.TrailerLen = 12 // MIC + ICV
	}
	return c, nil
}
