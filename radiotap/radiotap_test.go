package radiotap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildHeader assembles a minimal Radiotap header: version, pad, it_len,
// a single presence word, then the field bodies in catalog order.
func buildHeader(present uint32, body []byte) []byte {
	h := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	h[2] = byte(8 + len(body))
	h[3] = byte((8 + len(body)) >> 8)
	h[4] = byte(present)
	h[5] = byte(present >> 8)
	h[6] = byte(present >> 16)
	h[7] = byte(present >> 24)
	return append(h, body...)
}

func TestParseFlagsRateChannel(t *testing.T) {
	present := uint32(1<<1 | 1<<2 | 1<<3) // flags, rate, channel
	body := []byte{
		0x20,       // flags = datapad
		36,         // rate = 18 Mb/s (36 * 0.5)
		0x6c, 0x09, // freq 2412
		0x08, 0x00, // channel flags: bit3 = ism (per our sequential mapping)
	}
	buf := buildHeader(present, body)

	rec, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), rec.Vers)
	assert.Equal(t, uint16(len(buf)), rec.Sz)
	assert.Empty(t, rec.Errors)

	rate, ok := rec.Rate()
	require.True(t, ok)
	assert.Equal(t, 18.0, rate)

	fl, ok := rec.Fields[FieldFlags].(Flags)
	require.True(t, ok)
	assert.True(t, fl.Datapad())

	ch, ok := rec.Fields[FieldChannel].(Channel)
	require.True(t, ok)
	assert.Equal(t, uint16(2412), ch.FreqMHz)

	wantPresent := []FieldName{FieldFlags, FieldRate, FieldChannel}
	if diff := cmp.Diff(wantPresent, rec.Present); diff != "" {
		t.Errorf("present mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMCSRate(t *testing.T) {
	present := uint32(1 << 19) // mcs
	body := []byte{
		0x07, // known: bandwidth, index, gi
		0x00, // flags: 20MHz, long GI
		5,    // index 5
	}
	buf := buildHeader(present, body)

	rec, err := Parse(buf)
	require.NoError(t, err)

	_, ok := rec.Fields[FieldRate]
	assert.False(t, ok)

	rate, ok := rec.Rate()
	require.True(t, ok)
	assert.Equal(t, 52.0, rate)
}

func TestParseAntSignal(t *testing.T) {
	present := uint32(1 << 5)
	body := []byte{byte(int8(-75))}
	buf := buildHeader(present, body)

	rec, err := Parse(buf)
	require.NoError(t, err)
	rss, ok := rec.RSS()
	require.True(t, ok)
	assert.Equal(t, int8(-75), rss)
}

func TestParseBadVersion(t *testing.T) {
	buf := buildHeader(0, nil)
	buf[0] = 1
	_, err := Parse(buf)
	require.Error(t, err)
	var bv *BadVersion
	require.ErrorAs(t, err, &bv)
}

func TestParseBadLength(t *testing.T) {
	buf := buildHeader(0, nil)
	buf[2], buf[3] = 4, 0 // it_len < 8
	_, err := Parse(buf)
	require.Error(t, err)
	var bl *BadLength
	require.ErrorAs(t, err, &bl)
}

func TestParseTruncatedBuffer(t *testing.T) {
	buf := []byte{0, 0, 1}
	_, err := Parse(buf)
	require.Error(t, err)
}

func TestParseUnknownFieldAbortsWord(t *testing.T) {
	// Bit 15 has no canonical catalog entry (between rx-flags and mcs).
	present := uint32(1<<5 | 1<<15 | 1<<19)
	body := []byte{byte(int8(-40))} // only antsignal body; rest never read
	buf := buildHeader(present, body)

	rec, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, rec.Errors, 1)
	var uf *UnknownField
	require.ErrorAs(t, rec.Errors[0].Reason, &uf)
	assert.Equal(t, 15, uf.Bit)

	// Fields after the unknown bit in the same word are not decoded.
	_, ok := rec.Fields[FieldMCS]
	assert.False(t, ok)
}

func TestParseVendorNamespaceSkipsWholeWord(t *testing.T) {
	// bit2 (rate) and bit30 (vendor namespace) set in the same word; rate
	// must not be decoded even though its bit number is lower than 30.
	present := uint32(1<<2 | 1<<30)
	buf := buildHeader(present, nil)

	rec, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, rec.Errors, 1)
	var vn *VendorNamespace
	require.ErrorAs(t, rec.Errors[0].Reason, &vn)
	assert.Equal(t, 0, vn.Word)

	_, ok := rec.Fields[FieldRate]
	assert.False(t, ok)
}

func TestPaddedSize(t *testing.T) {
	present := uint32(1 << 1)
	body := []byte{byte(FlagDatapad)}
	buf := buildHeader(present, body)
	rec, err := Parse(buf)
	require.NoError(t, err)

	want := (int(rec.Sz) + 3) &^ 3
	assert.Equal(t, want, rec.PaddedSize())
}
