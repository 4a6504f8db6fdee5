// Package mcs holds the static 802.11n Modulation and Coding Scheme rate
// table: (index, bandwidth, guard interval) -> data rate in Mb/s. The table
// is reproduced bit-for-bit from the IEEE 802.11n Annex rate tables and
// never mutated at runtime.
package mcs

// Bandwidth is a channel bandwidth as decoded from the radiotap MCS flags
// byte's two-bit bandwidth field.
type Bandwidth uint8

const (
	BW20 Bandwidth = iota
	BW40
	BW20L
	BW20U
)

// GuardInterval selects the long or short guard interval rate column.
type GuardInterval uint8

const (
	GILong GuardInterval = iota
	GIShort
)

// rate holds the long/short GI rate pair for one (index, bandwidth) cell.
type rate struct {
	long, short float64
}

// table20 holds 20MHz rates for MCS indices 0-31.
var table20 = [32]rate{
	{6.5, 7.2}, {13.0, 14.4}, {19.5, 21.7}, {26.0, 28.9},
	{39.0, 43.3}, {52.0, 57.8}, {58.5, 65.0}, {65.0, 72.2},
	{13.0, 14.4}, {26.0, 28.9}, {39.0, 43.3}, {52.0, 57.8},
	{78.0, 86.7}, {104.0, 115.6}, {117.0, 130.0}, {130.0, 144.4},
	{19.5, 21.7}, {39.0, 43.3}, {58.5, 65.0}, {78.0, 86.7},
	{117.0, 130.0}, {156.0, 173.3}, {175.5, 195.0}, {195.0, 216.7},
	{26.0, 28.9}, {52.0, 57.8}, {78.0, 86.7}, {104.0, 115.6},
	{156.0, 173.3}, {208.0, 231.1}, {234.0, 260.0}, {260.0, 288.9},
}

// table40 holds 40MHz rates for MCS indices 0-31.
var table40 = [32]rate{
	{13.5, 15.0}, {27.0, 30.0}, {40.5, 45.0}, {54.0, 60.0},
	{81.0, 90.0}, {108.0, 120.0}, {121.5, 135.0}, {135.0, 150.0},
	{27.0, 30.0}, {54.0, 60.0}, {81.0, 90.0}, {108.0, 120.0},
	{162.0, 180.0}, {216.0, 240.0}, {243.0, 270.0}, {270.0, 300.0},
	{40.5, 45.0}, {81.0, 90.0}, {121.5, 135.0}, {162.0, 180.0},
	{243.0, 270.0}, {324.0, 360.0}, {364.5, 405.0}, {405.0, 450.0},
	{54.0, 60.0}, {108.0, 120.0}, {162.0, 180.0}, {216.0, 240.0},
	{324.0, 360.0}, {432.0, 480.0}, {486.0, 540.0}, {540.0, 600.0},
}

// Rate returns the data rate in Mb/s for the given MCS index, bandwidth and
// guard interval, and reports whether the tuple is in the table. The 20L
// and 20U sub-channel bandwidths (used by HT duplicate/legacy signaling
// over the two halves of a 40MHz channel) rate identically to BW20.
func Rate(index int, bw Bandwidth, gi GuardInterval) (float64, bool) {
	if index < 0 || index > 31 {
		return 0, false
	}
	var r rate
	switch bw {
	case BW20, BW20L, BW20U:
		r = table20[index]
	case BW40:
		r = table40[index]
	default:
		return 0, false
	}
	if gi == GIShort {
		return r.short, true
	}
	return r.long, true
}
