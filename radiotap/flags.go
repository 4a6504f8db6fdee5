package radiotap

import "strings"

// Flags is the Radiotap "flags" field: a bitset of per-packet capture
// properties (spec.md §6 field catalog, bit 1).
type Flags uint8

const (
	FlagCFP Flags = 1 << iota
	FlagPreamble
	FlagWEP
	FlagFrag
	FlagFCS
	FlagDatapad
	FlagBadFCS
	FlagShortGI
)

func (f Flags) CFP() bool      { return f&FlagCFP != 0 }
func (f Flags) Preamble() bool { return f&FlagPreamble != 0 }
func (f Flags) WEP() bool      { return f&FlagWEP != 0 }
func (f Flags) Frag() bool     { return f&FlagFrag != 0 }
func (f Flags) FCS() bool      { return f&FlagFCS != 0 }
func (f Flags) Datapad() bool  { return f&FlagDatapad != 0 }
func (f Flags) BadFCS() bool   { return f&FlagBadFCS != 0 }
func (f Flags) ShortGI() bool  { return f&FlagShortGI != 0 }

func (f Flags) String() string {
	names := []struct {
		bool
		string
	}{
		{f.CFP(), "cfp"}, {f.Preamble(), "preamble"}, {f.WEP(), "wep"},
		{f.Frag(), "frag"}, {f.FCS(), "fcs"}, {f.Datapad(), "datapad"},
		{f.BadFCS(), "badfcs"}, {f.ShortGI(), "shortgi"},
	}
	var tok []string
	for _, n := range names {
		if n.bool {
			tok = append(tok, n.string)
		}
	}
	return strings.Join(tok, ",")
}

// ChannelFlags is the 16-bit channel-properties bitmap carried in the
// second half of the "channel" field. spec.md §6 names the flag set but
// does not pin specific bit positions, so this decoder assigns them
// sequentially in the order spec.md lists them (see DESIGN.md).
type ChannelFlags uint16

const (
	ChanTurbo ChannelFlags = 1 << iota
	ChanCCK
	ChanOFDM
	ChanISM
	ChanUNII
	ChanPassive
	ChanDCCK
	ChanGFSK
	ChanGSM
	ChanSCCK
	ChanSOFDM
	ChanQuarter
	ChanHalf
	ChanHT
)

var channelFlagNames = []struct {
	flag ChannelFlags
	name string
}{
	{ChanTurbo, "turbo"}, {ChanCCK, "cck"}, {ChanOFDM, "ofdm"},
	{ChanISM, "ism"}, {ChanUNII, "unii"}, {ChanPassive, "passive"},
	{ChanDCCK, "dcck"}, {ChanGFSK, "gfsk"}, {ChanGSM, "gsm"},
	{ChanSCCK, "scck"}, {ChanSOFDM, "sofdm"}, {ChanQuarter, "quarter"},
	{ChanHalf, "half"}, {ChanHT, "ht"},
}

// Tags returns the set of channel-flag names set in f, in catalog order.
func (f ChannelFlags) Tags() []string {
	var tags []string
	for _, n := range channelFlagNames {
		if f&n.flag != 0 {
			tags = append(tags, n.name)
		}
	}
	return tags
}

func (f ChannelFlags) String() string {
	return strings.Join(f.Tags(), ",")
}

// MCSKnown is the "known" byte of the mcs field: which of the MCS
// sub-fields the sender populated.
type MCSKnown uint8

const (
	MCSKnownBandwidth MCSKnown = 1 << iota
	MCSKnownMCSIndex
	MCSKnownGuardInterval
	MCSKnownHTFormat
	MCSKnownFECType
	MCSKnownSTBC
	MCSKnownNESS
	MCSKnownNESS1
)

func (k MCSKnown) Bandwidth() bool     { return k&MCSKnownBandwidth != 0 }
func (k MCSKnown) MCSIndex() bool      { return k&MCSKnownMCSIndex != 0 }
func (k MCSKnown) GuardInterval() bool { return k&MCSKnownGuardInterval != 0 }
func (k MCSKnown) HTFormat() bool      { return k&MCSKnownHTFormat != 0 }
func (k MCSKnown) FECType() bool       { return k&MCSKnownFECType != 0 }
func (k MCSKnown) STBC() bool          { return k&MCSKnownSTBC != 0 }
func (k MCSKnown) NESS() bool          { return k&MCSKnownNESS != 0 }
func (k MCSKnown) NESS1() bool         { return k&MCSKnownNESS1 != 0 }

// MCSFlags is the "flags" byte of the mcs field.
type MCSFlags uint8

const (
	MCSFlagsBandwidthMask MCSFlags = 0x03
	MCSFlagsShortGI       MCSFlags = 0x04
	MCSFlagsGreenfield    MCSFlags = 0x08
	MCSFlagsFECLDPC       MCSFlags = 0x10
	MCSFlagsSTBCMask      MCSFlags = 0x60
	MCSFlagsNESS0         MCSFlags = 0x80
)

func (f MCSFlags) Bandwidth() int    { return int(f & MCSFlagsBandwidthMask) }
func (f MCSFlags) ShortGI() bool     { return f&MCSFlagsShortGI != 0 }
func (f MCSFlags) Greenfield() bool  { return f&MCSFlagsGreenfield != 0 }
func (f MCSFlags) FECLDPC() bool     { return f&MCSFlagsFECLDPC != 0 }
func (f MCSFlags) STBC() int         { return int(f&MCSFlagsSTBCMask) >> 5 }
func (f MCSFlags) NESS0() bool       { return f&MCSFlagsNESS0 != 0 }
