package dot11

import "fmt"

// Type is the 2-bit frame-control type field.
type Type uint8

const (
	TypeMgmt Type = iota
	TypeCtrl
	TypeData
	TypeReserved
)

func (t Type) String() string {
	switch t {
	case TypeMgmt:
		return "mgmt"
	case TypeCtrl:
		return "ctrl"
	case TypeData:
		return "data"
	default:
		return "reserved"
	}
}

// Control-frame subtypes this decoder recognizes (802.11-2016 Table 9-1).
const (
	SubtypeCtrlWrapper      uint8 = 7
	SubtypeCtrlBlockAckReq  uint8 = 8
	SubtypeCtrlBlockAck     uint8 = 9
	SubtypeCtrlPSPoll       uint8 = 10
	SubtypeCtrlRTS          uint8 = 11
	SubtypeCtrlCTS          uint8 = 12
	SubtypeCtrlACK          uint8 = 13
	SubtypeCtrlCFEnd        uint8 = 14
	SubtypeCtrlCFEndCFAck   uint8 = 15
)

// FCFlags is the frame control byte 2 (to-DS .. order).
type FCFlags uint8

const (
	FlagToDS FCFlags = 1 << iota
	FlagFromDS
	FlagMoreFrag
	FlagRetry
	FlagPwrMgt
	FlagMoreData
	FlagProtected
	FlagOrder
)

func (f FCFlags) ToDS() bool      { return f&FlagToDS != 0 }
func (f FCFlags) FromDS() bool    { return f&FlagFromDS != 0 }
func (f FCFlags) MoreFrag() bool  { return f&FlagMoreFrag != 0 }
func (f FCFlags) Retry() bool     { return f&FlagRetry != 0 }
func (f FCFlags) PwrMgt() bool    { return f&FlagPwrMgt != 0 }
func (f FCFlags) MoreData() bool  { return f&FlagMoreData != 0 }
func (f FCFlags) Protected() bool { return f&FlagProtected != 0 }
func (f FCFlags) Order() bool     { return f&FlagOrder != 0 }

// DurationKind classifies how the duration/ID field should be read
// (spec.md §4.4): a plain virtual carrier-sense value, a CF-Parameter-Set
// fixed value, a PS-Poll or bits15..14="11" association ID, or a
// bits15..14="11" value outside the valid AID range, which spec.md
// reserves rather than treating as a second CFP encoding.
type DurationKind uint8

const (
	DurationVCS DurationKind = iota
	DurationCFP
	DurationAID
	DurationRsrv
)

func (k DurationKind) String() string {
	switch k {
	case DurationVCS:
		return "vcs"
	case DurationCFP:
		return "cfp"
	case DurationAID:
		return "aid"
	case DurationRsrv:
		return "rsrv"
	default:
		return "unknown"
	}
}

// Duration is the tagged duration/ID value.
type Duration struct {
	Kind  DurationKind
	Value uint16
}

// minAID and maxAID bound the valid association-ID range spec.md §4.4
// gives for the bits15..14="11" case; values outside it are reserved.
const (
	minAID = 1
	maxAID = 2007
)

// parseDuration tags raw per spec.md §4.4: PS-Poll frames always carry an
// association ID; everything else is classified by its top two bits,
// independent of the PS-Poll special case (bits15..14="11" still needs
// the [1,2007] range check to distinguish aid from rsrv).
func parseDuration(raw uint16, typ Type, subtype uint8) Duration {
	if typ == TypeCtrl && subtype == SubtypeCtrlPSPoll {
		return Duration{Kind: DurationAID, Value: raw & 0x3fff}
	}
	switch raw & 0xc000 {
	case 0x8000: // bit15 set, bit14 clear
		return Duration{Kind: DurationCFP, Value: raw &^ 0x8000}
	case 0xc000: // bit15 and bit14 both set
		low14 := raw & 0x3fff
		if low14 >= minAID && low14 <= maxAID {
			return Duration{Kind: DurationAID, Value: low14}
		}
		return Duration{Kind: DurationRsrv, Value: low14}
	default: // bit15 clear
		return Duration{Kind: DurationVCS, Value: raw}
	}
}

// QoS is the decoded QoS Control field (802.11-2016 9.2.4.7). Only the
// TID/EOSP/AckPolicy/A-MSDU sub-fields of byte 0 are interpreted; byte 1
// is direction-dependent (TXOP limit vs. queue size vs. AP PS buffer
// state) and is kept raw.
type QoS struct {
	TID       uint8
	EOSP      bool
	AckPolicy uint8
	AMSDU     bool
	Byte1     uint8
}

func parseQoS(b0, b1 uint8) QoS {
	return QoS{
		TID:       b0 & 0x0f,
		EOSP:      b0&0x10 != 0,
		AckPolicy: (b0 >> 5) & 0x03,
		AMSDU:     b0&0x80 != 0,
		Byte1:     b1,
	}
}

func (q QoS) String() string {
	return fmt.Sprintf("tid=%d eosp=%t ackpolicy=%d amsdu=%t", q.TID, q.EOSP, q.AckPolicy, q.AMSDU)
}
