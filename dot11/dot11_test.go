package dot11

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fcByte(typ Type, subtype uint8) byte {
	return byte(subtype<<4) | byte(typ<<2)
}

func mac(b byte) []byte {
	return []byte{b, b, b, b, b, b}
}

func TestParseMgmtBeacon(t *testing.T) {
	buf := []byte{}
	buf = append(buf, fcByte(TypeMgmt, 8), 0x00) // framectrl
	buf = append(buf, 0x00, 0x00)                // duration
	buf = append(buf, mac(0x01)...)               // addr1
	buf = append(buf, mac(0x02)...)               // addr2
	buf = append(buf, mac(0x03)...)               // addr3
	buf = append(buf, 0x10, 0x00)                 // seqctrl

	m, err := Parse(buf, false)
	require.NoError(t, err)
	assert.Empty(t, m.Errors)
	assert.Equal(t, TypeMgmt, m.Type)
	assert.Equal(t, uint8(8), m.Subtype)
	require.Len(t, m.Addr, 3)
	assert.Equal(t, "01:01:01:01:01:01", m.Addr[0])
	assert.True(t, m.HasSeqCtrl)
	assert.False(t, m.HasQoS)
	assert.Equal(t, len(buf), m.Offset)
	assert.Equal(t, 0, m.Stripped)

	wantPresent := []string{"framectrl", "duration", "addr1", "addr2", "addr3", "seqctrl"}
	if diff := cmp.Diff(wantPresent, m.Present); diff != "" {
		t.Errorf("present mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCtrlRTS(t *testing.T) {
	buf := []byte{}
	buf = append(buf, fcByte(TypeCtrl, SubtypeCtrlRTS), 0x00)
	buf = append(buf, 0x00, 0x00)
	buf = append(buf, mac(0x0a)...) // addr1 (RA)
	buf = append(buf, mac(0x0b)...) // addr2 (TA)

	m, err := Parse(buf, false)
	require.NoError(t, err)
	assert.Empty(t, m.Errors)
	require.Len(t, m.Addr, 2)
	assert.False(t, m.HasSeqCtrl)
	assert.Equal(t, len(buf), m.Offset)
}

func TestParseDataWDSAddr4(t *testing.T) {
	buf := []byte{}
	buf = append(buf, fcByte(TypeData, 0), 0x03) // ToDS|FromDS
	buf = append(buf, 0x00, 0x00)
	buf = append(buf, mac(0x01)...)
	buf = append(buf, mac(0x02)...)
	buf = append(buf, mac(0x03)...)
	buf = append(buf, 0x00, 0x00) // seqctrl
	buf = append(buf, mac(0x04)...) // addr4

	m, err := Parse(buf, false)
	require.NoError(t, err)
	assert.Empty(t, m.Errors)
	require.Len(t, m.Addr, 4)
	assert.Equal(t, "04:04:04:04:04:04", m.Addr[3])
	assert.False(t, m.HasQoS)
}

func TestParseQoSData(t *testing.T) {
	buf := []byte{}
	buf = append(buf, fcByte(TypeData, 8), 0x00) // qos subtype, no ToDS/FromDS
	buf = append(buf, 0x00, 0x00)
	buf = append(buf, mac(0x01)...)
	buf = append(buf, mac(0x02)...)
	buf = append(buf, mac(0x03)...)
	buf = append(buf, 0x00, 0x00) // seqctrl
	buf = append(buf, 0x05, 0x00) // qos: tid=5

	m, err := Parse(buf, false)
	require.NoError(t, err)
	assert.Empty(t, m.Errors)
	require.True(t, m.HasQoS)
	assert.Equal(t, uint8(5), m.QoS.TID)
	assert.Equal(t, len(buf), m.Offset)
}

func TestParseProtectedDataCCMP(t *testing.T) {
	buf := []byte{}
	buf = append(buf, fcByte(TypeData, 0), 0x40) // protected
	buf = append(buf, 0x00, 0x00)
	buf = append(buf, mac(0x01)...)
	buf = append(buf, mac(0x02)...)
	buf = append(buf, mac(0x03)...)
	buf = append(buf, 0x00, 0x00) // seqctrl
	// crypt: PN0, PN1(bit0 set => ccmp), rsv, keyid(extiv bit set, key 1), PN2..PN5
	buf = append(buf, 0x01, 0x01, 0x00, 0x20|(1<<6), 0x00, 0x00, 0x00, 0x00)

	m, err := Parse(buf, false)
	require.NoError(t, err)
	assert.Empty(t, m.Errors)
	require.True(t, m.HasCrypt)
	assert.Equal(t, CryptCCMP, m.Crypt.Type)
	assert.Equal(t, uint8(1), m.Crypt.KeyID)
	assert.Equal(t, 8, m.Crypt.TrailerLen)
	assert.Equal(t, len(buf), m.Offset)
}

func TestParseProtectedDataTKIP(t *testing.T) {
	buf := []byte{}
	buf = append(buf, fcByte(TypeData, 0), 0x40)
	buf = append(buf, 0x00, 0x00)
	buf = append(buf, mac(0x01)...)
	buf = append(buf, mac(0x02)...)
	buf = append(buf, mac(0x03)...)
	buf = append(buf, 0x00, 0x00)
	// byte1 bit0 clear => tkip
	buf = append(buf, 0x01, 0x20, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00)

	m, err := Parse(buf, false)
	require.NoError(t, err)
	assert.Empty(t, m.Errors)
	require.True(t, m.HasCrypt)
	assert.Equal(t, CryptTKIP, m.Crypt.Type)
	assert.Equal(t, 12, m.Crypt.TrailerLen)
}

func TestParseProtectedDataWEP(t *testing.T) {
	buf := []byte{}
	buf = append(buf, fcByte(TypeData, 0), 0x40)
	buf = append(buf, 0x00, 0x00)
	buf = append(buf, mac(0x01)...)
	buf = append(buf, mac(0x02)...)
	buf = append(buf, mac(0x03)...)
	buf = append(buf, 0x00, 0x00)
	buf = append(buf, 0x01, 0x02, 0x03, 0x00) // extiv bit clear

	m, err := Parse(buf, false)
	require.NoError(t, err)
	require.True(t, m.HasCrypt)
	assert.Equal(t, CryptWEP, m.Crypt.Type)
	assert.Equal(t, 4, m.Crypt.TrailerLen)
}

func TestParseWithFCS(t *testing.T) {
	buf := []byte{}
	buf = append(buf, fcByte(TypeCtrl, SubtypeCtrlACK), 0x00)
	buf = append(buf, 0x00, 0x00)
	buf = append(buf, mac(0x01)...)
	buf = append(buf, 0xde, 0xad, 0xbe, 0xef) // fcs

	m, err := Parse(buf, true)
	require.NoError(t, err)
	assert.True(t, m.HasFCS)
	assert.Equal(t, uint32(0xefbeadde), m.FCS)
	assert.Equal(t, 4, m.Stripped)
}

func TestParseTruncatedFrameControl(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00}
	_, err := Parse(buf, false)
	require.Error(t, err)
	var tr *Truncated
	require.ErrorAs(t, err, &tr)
}

func TestParseTruncatedAddressStopsDecode(t *testing.T) {
	buf := []byte{}
	buf = append(buf, fcByte(TypeMgmt, 8), 0x00)
	buf = append(buf, 0x00, 0x00)
	buf = append(buf, mac(0x01)...) // only one of three addresses present

	m, err := Parse(buf, false)
	require.NoError(t, err)
	require.Len(t, m.Errors, 1)
	assert.Equal(t, "addr2", m.Errors[0].Field)
	assert.False(t, m.HasSeqCtrl)
}

func TestParseDurationKinds(t *testing.T) {
	buf := []byte{}
	buf = append(buf, fcByte(TypeCtrl, SubtypeCtrlPSPoll), 0x00)
	buf = append(buf, 0xcf, 0x07) // AID 1999 (0x07cf), masked to low 14 bits
	buf = append(buf, mac(0x01)...) // addr1 (BSSID/RA)
	buf = append(buf, mac(0x02)...) // addr2 (TA)

	m, err := Parse(buf, false)
	require.NoError(t, err)
	assert.Empty(t, m.Errors)
	assert.Equal(t, DurationAID, m.Duration.Kind)
	assert.Equal(t, uint16(1999), m.Duration.Value)
	require.Len(t, m.Addr, 2)
	assert.Equal(t, "02:02:02:02:02:02", m.Addr[1])
}

func TestParseDurationAIDOutsidePSPoll(t *testing.T) {
	buf := []byte{}
	buf = append(buf, fcByte(TypeMgmt, 8), 0x00)
	buf = append(buf, 0xcf, 0xc7) // bits15..14=11, low14=1999: valid AID
	buf = append(buf, mac(0x01)...)
	buf = append(buf, mac(0x02)...)
	buf = append(buf, mac(0x03)...)
	buf = append(buf, 0x00, 0x00)

	m, err := Parse(buf, false)
	require.NoError(t, err)
	assert.Equal(t, DurationAID, m.Duration.Kind)
	assert.Equal(t, uint16(1999), m.Duration.Value)
}

func TestParseDurationReserved(t *testing.T) {
	buf := []byte{}
	buf = append(buf, fcByte(TypeMgmt, 8), 0x00)
	buf = append(buf, 0x00, 0xc0) // bits15..14=11, low14=0: outside [1,2007]
	buf = append(buf, mac(0x01)...)
	buf = append(buf, mac(0x02)...)
	buf = append(buf, mac(0x03)...)
	buf = append(buf, 0x00, 0x00)

	m, err := Parse(buf, false)
	require.NoError(t, err)
	assert.Equal(t, DurationRsrv, m.Duration.Kind)
	assert.Equal(t, uint16(0), m.Duration.Value)
}

func TestParseDurationCFP(t *testing.T) {
	buf := []byte{}
	buf = append(buf, fcByte(TypeMgmt, 8), 0x00)
	buf = append(buf, 0x34, 0x82) // bit15 set, bit14 clear
	buf = append(buf, mac(0x01)...)
	buf = append(buf, mac(0x02)...)
	buf = append(buf, mac(0x03)...)
	buf = append(buf, 0x00, 0x00)

	m, err := Parse(buf, false)
	require.NoError(t, err)
	assert.Equal(t, DurationCFP, m.Duration.Kind)
	assert.Equal(t, uint16(0x0234), m.Duration.Value)
}

func TestSeqNum(t *testing.T) {
	m := &MPDU{SeqCtrl: 0x1234}
	seq, frag := m.SeqNum()
	assert.Equal(t, uint16(0x123), seq)
	assert.Equal(t, uint8(0x4), frag)
}
