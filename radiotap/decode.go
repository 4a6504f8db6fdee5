package radiotap

import "github.com/heistp/radtap/internal/bits"

func decodeTSFT(buf []byte, c int) (interface{}, error) {
	return bits.U64LE(buf, c, string(FieldTSFT))
}

func decodeFlags(buf []byte, c int) (interface{}, error) {
	v, err := bits.U8(buf, c, string(FieldFlags))
	return Flags(v), err
}

func decodeRate(buf []byte, c int) (interface{}, error) {
	v, err := bits.U8(buf, c, string(FieldRate))
	return v, err
}

func decodeChannel(buf []byte, c int) (interface{}, error) {
	freq, err := bits.U16LE(buf, c, string(FieldChannel))
	if err != nil {
		return nil, err
	}
	fl, err := bits.U16LE(buf, c+2, string(FieldChannel))
	if err != nil {
		return nil, err
	}
	return Channel{FreqMHz: freq, Flags: ChannelFlags(fl)}, nil
}

func decodeFHSS(buf []byte, c int) (interface{}, error) {
	hop, err := bits.U8(buf, c, string(FieldFHSS))
	if err != nil {
		return nil, err
	}
	pat, err := bits.U8(buf, c+1, string(FieldFHSS))
	if err != nil {
		return nil, err
	}
	return FHSS{Hop: hop, Pattern: pat}, nil
}

func decodeAntSignal(buf []byte, c int) (interface{}, error) {
	return bits.I8(buf, c, string(FieldAntSignal))
}

func decodeAntNoise(buf []byte, c int) (interface{}, error) {
	return bits.I8(buf, c, string(FieldAntNoise))
}

func decodeLockQuality(buf []byte, c int) (interface{}, error) {
	return bits.U16LE(buf, c, string(FieldLockQuality))
}

func decodeTxAttenuation(buf []byte, c int) (interface{}, error) {
	return bits.U16LE(buf, c, string(FieldTxAttenuation))
}

func decodeDBTxAttenuation(buf []byte, c int) (interface{}, error) {
	return bits.U16LE(buf, c, string(FieldDBTxAttenuation))
}

func decodeDBMTxPower(buf []byte, c int) (interface{}, error) {
	return bits.I8(buf, c, string(FieldDBMTxPower))
}

func decodeAntenna(buf []byte, c int) (interface{}, error) {
	return bits.U8(buf, c, string(FieldAntenna))
}

func decodeDBAntSignal(buf []byte, c int) (interface{}, error) {
	return bits.U8(buf, c, string(FieldDBAntSignal))
}

func decodeDBAntNoise(buf []byte, c int) (interface{}, error) {
	return bits.U8(buf, c, string(FieldDBAntNoise))
}

func decodeRxFlags(buf []byte, c int) (interface{}, error) {
	return bits.U16LE(buf, c, string(FieldRxFlags))
}

func decodeMCS(buf []byte, c int) (interface{}, error) {
	known, err := bits.U8(buf, c, string(FieldMCS))
	if err != nil {
		return nil, err
	}
	flags, err := bits.U8(buf, c+1, string(FieldMCS))
	if err != nil {
		return nil, err
	}
	idx, err := bits.U8(buf, c+2, string(FieldMCS))
	if err != nil {
		return nil, err
	}
	return MCS{Known: MCSKnown(known), Flags: MCSFlags(flags), Index: idx}, nil
}

func decodeAMPDU(buf []byte, c int) (interface{}, error) {
	ref, err := bits.U32LE(buf, c, string(FieldAMPDU))
	if err != nil {
		return nil, err
	}
	fl, err := bits.U16LE(buf, c+4, string(FieldAMPDU))
	if err != nil {
		return nil, err
	}
	crc, err := bits.U8(buf, c+6, string(FieldAMPDU))
	if err != nil {
		return nil, err
	}
	return AMPDU{Reference: ref, Flags: fl, CRC: crc}, nil
}

func decodeVHT(buf []byte, c int) (interface{}, error) {
	known, err := bits.U16LE(buf, c, string(FieldVHT))
	if err != nil {
		return nil, err
	}
	flags, err := bits.U8(buf, c+2, string(FieldVHT))
	if err != nil {
		return nil, err
	}
	bw, err := bits.U8(buf, c+3, string(FieldVHT))
	if err != nil {
		return nil, err
	}
	var nss [4]uint8
	for i := 0; i < 4; i++ {
		v, err := bits.U8(buf, c+4+i, string(FieldVHT))
		if err != nil {
			return nil, err
		}
		nss[i] = v
	}
	coding, err := bits.U8(buf, c+8, string(FieldVHT))
	if err != nil {
		return nil, err
	}
	group, err := bits.U8(buf, c+9, string(FieldVHT))
	if err != nil {
		return nil, err
	}
	partial, err := bits.U16LE(buf, c+10, string(FieldVHT))
	if err != nil {
		return nil, err
	}
	return VHT{
		Known:      known,
		Flags:      flags,
		Bandwidth:  bw,
		MCSNSS:     nss,
		Coding:     coding,
		GroupID:    group,
		PartialAID: partial,
	}, nil
}
