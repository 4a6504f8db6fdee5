// Package anon anonymizes MAC addresses extracted from decoded 802.11
// frames, by encryption or by consistent pseudonym substitution. Adapted
// from the teacher's DefaultAnonymizer (main.go) and array helpers
// (array.go); where the teacher anonymized addresses it located by
// re-deriving MAC offsets inline, this package is driven by the offsets
// dot11.MPDU already decoded.
package anon

import "crypto/cipher"

// Method is how one class of address gets anonymized.
type Method int

const (
	// Encrypt replaces the address in place with its AES-CTR keystream XOR.
	Encrypt Method = iota
	// Pseudonym substitutes a stable per-run alias for repeat addresses.
	Pseudonym
	// Leave passes the address through unchanged.
	Leave
)

func ParseMethod(s string) (Method, error) {
	switch s {
	case "encrypt":
		return Encrypt, nil
	case "pseudonym":
		return Pseudonym, nil
	case "leave":
		return Leave, nil
	default:
		return 0, &badMethod{s}
	}
}

type badMethod struct{ s string }

func (e *badMethod) Error() string { return "anon: unknown method: " + e.s }

// MACAnonymizer anonymizes the OUI (first 3 bytes) and NIC (last 3 bytes)
// halves of a MAC address independently, since OUI values are low
// cardinality and often worth preserving for vendor analysis while NIC
// bytes identify a specific device.
type MACAnonymizer struct {
	oui, nic Method
	stream   cipher.Stream

	ouiMap map[[3]byte][3]byte
	nicMap map[[3]byte][3]byte
	n      uint64
}

// NewMACAnonymizer builds an anonymizer keyed by stream, which should be
// seeded from a caller-supplied passphrase the way cmd/radanon does.
func NewMACAnonymizer(oui, nic Method, stream cipher.Stream) *MACAnonymizer {
	return &MACAnonymizer{
		oui:    oui,
		nic:    nic,
		stream: stream,
		ouiMap: make(map[[3]byte][3]byte),
		nicMap: make(map[[3]byte][3]byte),
	}
}

// Anonymize rewrites b, a 6-byte MAC address, in place.
func (a *MACAnonymizer) Anonymize(b []byte) {
	if len(b) != 6 {
		return
	}
	a.apply(b[:3], a.oui, a.ouiMap)
	a.apply(b[3:], a.nic, a.nicMap)
	a.n++
}

func (a *MACAnonymizer) apply(b []byte, m Method, table map[[3]byte][3]byte) {
	switch m {
	case Encrypt:
		a.stream.XORKeyStream(b, b)
	case Pseudonym:
		key := toArray3(b)
		if alias, ok := table[key]; ok {
			fromArray3(b, alias)
			return
		}
		a.stream.XORKeyStream(b, b)
		table[key] = toArray3(b)
	case Leave:
	}
}

// Count returns how many addresses have been anonymized.
func (a *MACAnonymizer) Count() uint64 { return a.n }

func toArray3(b []byte) (a [3]byte) {
	copy(a[:], b)
	return
}

func fromArray3(b []byte, a [3]byte) {
	copy(b, a[:])
}
