package typeid

// The suffix encoding is a Crockford-style base32: the 128-bit value is
// treated as the low bits of a 130-bit quantity (two implicit leading zero
// bits), split into 26 five-bit groups most significant first, and mapped
// through a 32-symbol alphabet that drops i, l, o and u to avoid visual
// ambiguity. Both directions are fixed-width shift-and-mask over the 16-byte
// and 26-character buffers; no arbitrary-precision arithmetic is involved.

// suffixAlphabet maps a 5-bit group to its symbol.
const suffixAlphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const suffixLen = 26

// suffixReverse maps a symbol back to its 5-bit group; 0xFF marks symbols
// outside the alphabet.
var suffixReverse [256]byte

func init() {
	for i := range suffixReverse {
		suffixReverse[i] = 0xFF
	}
	for i := 0; i < len(suffixAlphabet); i++ {
		suffixReverse[suffixAlphabet[i]] = byte(i)
	}
}

// encodeSuffix encodes a 16-byte value into its 26-character suffix.
// Every 16-byte value has exactly one encoding and the result always starts
// with '0'..'7' (the first group holds only the top three bits).
func encodeSuffix(v [16]byte) string {
	var dst [suffixLen]byte

	// Group 0 carries the two implicit zero bits plus the top 3 bits of
	// v[0]; group 1 is the low 5 bits of v[0]. The remaining 120 bits fall
	// into three identical 40-bit blocks of eight groups each.
	dst[0] = suffixAlphabet[v[0]>>5]
	dst[1] = suffixAlphabet[v[0]&0x1F]

	for blk := 0; blk < 3; blk++ {
		b := 1 + blk*5
		c := 2 + blk*8
		dst[c+0] = suffixAlphabet[v[b]>>3]
		dst[c+1] = suffixAlphabet[((v[b]&0x07)<<2)|(v[b+1]>>6)]
		dst[c+2] = suffixAlphabet[(v[b+1]>>1)&0x1F]
		dst[c+3] = suffixAlphabet[((v[b+1]&0x01)<<4)|(v[b+2]>>4)]
		dst[c+4] = suffixAlphabet[((v[b+2]&0x0F)<<1)|(v[b+3]>>7)]
		dst[c+5] = suffixAlphabet[(v[b+3]>>2)&0x1F]
		dst[c+6] = suffixAlphabet[((v[b+3]&0x03)<<3)|(v[b+4]>>5)]
		dst[c+7] = suffixAlphabet[v[b+4]&0x1F]
	}

	return string(dst[:])
}

// decodeSuffix decodes a 26-character suffix back into its 16-byte value.
// It rejects wrong lengths, symbols outside the alphabet (reporting the
// first offending position) and a first symbol above '7', which would set
// one of the two implicit zero bits.
func decodeSuffix(s string) ([16]byte, error) {
	var v [16]byte

	if len(s) != suffixLen {
		return v, parseError(ErrInvalidSuffixLength, s)
	}
	for i := 0; i < suffixLen; i++ {
		if suffixReverse[s[i]] == 0xFF {
			return v, parseErrorAt(ErrInvalidSuffixAlphabet, s, i)
		}
	}
	if suffixReverse[s[0]] > 7 {
		return v, parseErrorAt(ErrSuffixOverflow, s, 0)
	}

	var r [suffixLen]byte
	for i := 0; i < suffixLen; i++ {
		r[i] = suffixReverse[s[i]]
	}

	// Inverse of encodeSuffix: byte shifts past 8 bits truncate, which is
	// exactly the masking the reassembly needs.
	v[0] = r[0]<<5 | r[1]
	for blk := 0; blk < 3; blk++ {
		b := 1 + blk*5
		c := 2 + blk*8
		v[b+0] = r[c+0]<<3 | r[c+1]>>2
		v[b+1] = r[c+1]<<6 | r[c+2]<<1 | r[c+3]>>4
		v[b+2] = r[c+3]<<4 | r[c+4]>>1
		v[b+3] = r[c+4]<<7 | r[c+5]<<2 | r[c+6]>>3
		v[b+4] = r[c+6]<<5 | r[c+7]
	}

	return v, nil
}
