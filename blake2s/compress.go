package blake2s

import "math/bits"

func g(v *[16]uint32, a, b, c, d int, x, y uint32) {
	v[a] = v[a] + v[b] + x
	v[d] = bits.RotateLeft32(v[d]^v[a], -16)
	v[c] = v[c] + v[d]
	v[b] = bits.RotateLeft32(v[b]^v[c], -12)
	v[a] = v[a] + v[b] + y
	v[d] = bits.RotateLeft32(v[d]^v[a], -8)
	v[c] = v[c] + v[d]
	v[b] = bits.RotateLeft32(v[b]^v[c], -7)
}

func round(v, m *[16]uint32, s *[16]uint8) {
	// Mix the columns.
	g(v, 0, 4, 8, 12, m[s[0]], m[s[1]])
	g(v, 1, 5, 9, 13, m[s[2]], m[s[3]])
	g(v, 2, 6, 10, 14, m[s[4]], m[s[5]])
	g(v, 3, 7, 11, 15, m[s[6]], m[s[7]])
	// Mix the diagonals.
	g(v, 0, 5, 10, 15, m[s[8]], m[s[9]])
	g(v, 1, 6, 11, 12, m[s[10]], m[s[11]])
	g(v, 2, 7, 8, 13, m[s[12]], m[s[13]])
	g(v, 3, 4, 9, 14, m[s[14]], m[s[15]])
}

// compressGeneric is the portable scalar core and the reference that any
// alternate formulation must match word for word.
func compressGeneric(h *[8]uint32, m *[16]uint32, t, f [2]uint32) {
	compressSchedule(h, m, t, f, sigma[:])
}

func compressSchedule(h *[8]uint32, m *[16]uint32, t, f [2]uint32, schedule [][16]uint8) {
	var v [16]uint32
	v[0] = h[0]
	v[1] = h[1]
	v[2] = h[2]
	v[3] = h[3]
	v[4] = h[4]
	v[5] = h[5]
	v[6] = h[6]
	v[7] = h[7]
	v[8] = iv[0]
	v[9] = iv[1]
	v[10] = iv[2]
	v[11] = iv[3]
	v[12] = iv[4] ^ t[0]
	v[13] = iv[5] ^ t[1]
	v[14] = iv[6] ^ f[0]
	v[15] = iv[7] ^ f[1]

	for r := range schedule {
		round(&v, m, &schedule[r])
	}

	for i := 0; i < 8; i++ {
		h[i] ^= v[i] ^ v[i+8]
	}
}
