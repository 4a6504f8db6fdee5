package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRadiotap(present uint32, body []byte) []byte {
	h := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	h[2] = byte(8 + len(body))
	h[3] = byte((8 + len(body)) >> 8)
	h[4] = byte(present)
	h[5] = byte(present >> 8)
	h[6] = byte(present >> 16)
	h[7] = byte(present >> 24)
	return append(h, body...)
}

func TestParseMinimalFrame(t *testing.T) {
	rt := buildRadiotap(0, nil) // 8-byte header, no fields
	mac := func(b byte) []byte { return []byte{b, b, b, b, b, b} }

	mpdu := []byte{}
	mpdu = append(mpdu, 0x80, 0x00) // mgmt beacon
	mpdu = append(mpdu, 0x00, 0x00) // duration
	mpdu = append(mpdu, mac(1)...)
	mpdu = append(mpdu, mac(2)...)
	mpdu = append(mpdu, mac(3)...)
	mpdu = append(mpdu, 0x00, 0x00) // seqctrl
	mpdu = append(mpdu, 0xAA, 0xBB) // body

	buf := append(rt, mpdu...)

	f, err := Parse(buf)
	require.NoError(t, err)
	require.NotNil(t, f.MPDU)
	assert.Equal(t, []byte{0xAA, 0xBB}, f.Body)
	assert.False(t, f.Encrypted())
}
