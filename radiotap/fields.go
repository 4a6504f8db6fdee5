package radiotap

// FieldName tags a decoded Radiotap field. Values match the catalog names
// in spec.md §6 verbatim so present/fields stay self-describing.
type FieldName string

const (
	FieldTSFT            FieldName = "tsft"
	FieldFlags           FieldName = "flags"
	FieldRate            FieldName = "rate"
	FieldChannel         FieldName = "channel"
	FieldFHSS            FieldName = "fhss"
	FieldAntSignal       FieldName = "antsignal"
	FieldAntNoise        FieldName = "antnoise"
	FieldLockQuality     FieldName = "lock-quality"
	FieldTxAttenuation   FieldName = "tx-attenuation"
	FieldDBTxAttenuation FieldName = "db-tx-attenuation"
	FieldDBMTxPower      FieldName = "dbm-tx-power"
	FieldAntenna         FieldName = "antenna"
	FieldDBAntSignal     FieldName = "db-antsignal"
	FieldDBAntNoise      FieldName = "db-antnoise"
	FieldRxFlags         FieldName = "rx-flags"
	FieldMCS             FieldName = "mcs"
	FieldAMPDU           FieldName = "a-mpdu"
	FieldVHT             FieldName = "vht"
)

// catalogEntry describes one canonical (non-vendor) field: its name, byte
// size, required alignment, and a decode function that reads the field
// body starting at cursor and returns its value. The caller advances the
// cursor by size.
type catalogEntry struct {
	name  FieldName
	size  int
	align int
	decode func(buf []byte, cursor int) (interface{}, error)
}

// catalog maps a presence-bitmap bit index (within the canonical,
// non-vendor namespace) to its field definition, per spec.md §6.
var catalog = map[int]catalogEntry{
	0:  {FieldTSFT, 8, 8, decodeTSFT},
	1:  {FieldFlags, 1, 1, decodeFlags},
	2:  {FieldRate, 1, 1, decodeRate},
	3:  {FieldChannel, 4, 2, decodeChannel},
	4:  {FieldFHSS, 2, 1, decodeFHSS},
	5:  {FieldAntSignal, 1, 1, decodeAntSignal},
	6:  {FieldAntNoise, 1, 1, decodeAntNoise},
	7:  {FieldLockQuality, 2, 2, decodeLockQuality},
	8:  {FieldTxAttenuation, 2, 2, decodeTxAttenuation},
	9:  {FieldDBTxAttenuation, 2, 2, decodeDBTxAttenuation},
	10: {FieldDBMTxPower, 1, 1, decodeDBMTxPower},
	11: {FieldAntenna, 1, 1, decodeAntenna},
	12: {FieldDBAntSignal, 1, 1, decodeDBAntSignal},
	13: {FieldDBAntNoise, 1, 1, decodeDBAntNoise},
	14: {FieldRxFlags, 2, 2, decodeRxFlags},
	19: {FieldMCS, 3, 1, decodeMCS},
	20: {FieldAMPDU, 8, 4, decodeAMPDU},
	21: {FieldVHT, 12, 2, decodeVHT},
}

// Channel is the decoded value of the "channel" field: frequency in MHz
// and the channel-flags bitmap.
type Channel struct {
	FreqMHz uint16
	Flags   ChannelFlags
}

// FHSS is the decoded value of the "fhss" field.
type FHSS struct {
	Hop     uint8
	Pattern uint8
}

// MCS is the decoded value of the "mcs" field: which sub-fields are known,
// the flags byte, and the raw MCS index.
type MCS struct {
	Known MCSKnown
	Flags MCSFlags
	Index uint8
}

// AMPDU is the decoded value of the "a-mpdu" field.
type AMPDU struct {
	Reference uint32
	Flags     uint16
	CRC       uint8
}

// VHT is the decoded value of the "vht" field.
type VHT struct {
	Known      uint16
	Flags      uint8
	Bandwidth  uint8
	MCSNSS     [4]uint8
	Coding     uint8
	GroupID    uint8
	PartialAID uint16
}
