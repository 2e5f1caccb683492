package blake2s

import "math/bits"

// Column-vector formulation of the transform. The 4x4 working state is
// held as four 4-lane vectors, one state column per lane:
//
//	va vb vc vd         va'vb'vc'vd'
//	+--+--+--+--+       +--+--+--+--+
//	| 0| 4| 8|12|       | 0| 5|10|15|
//	| 1| 5| 9|13|       | 1| 6|11|12|
//	| 2| 6|10|14|       | 2| 7| 8|13|
//	| 3| 7|11|15|       | 3| 4| 9|14|
//	+--+--+--+--+       +--+--+--+--+
//	 G(columns)          G(diagonals)
//
// so each application of G runs once across all four lanes, and diagonal
// mixing is a lane rotation of vb/vc/vd by 1/2/3 around the second G.
// Output is bit-identical to compressGeneric, which serves as the
// reference for this path.

func gLanes(va, vb, vc, vd, mx, my *[4]uint32) {
	for i := 0; i < 4; i++ {
		va[i] += vb[i] + mx[i]
		vd[i] = bits.RotateLeft32(vd[i]^va[i], -16)
		vc[i] += vd[i]
		vb[i] = bits.RotateLeft32(vb[i]^vc[i], -12)
		va[i] += vb[i] + my[i]
		vd[i] = bits.RotateLeft32(vd[i]^va[i], -8)
		vc[i] += vd[i]
		vb[i] = bits.RotateLeft32(vb[i]^vc[i], -7)
	}
}

func rotLanes1(v *[4]uint32) { v[0], v[1], v[2], v[3] = v[1], v[2], v[3], v[0] }
func rotLanes2(v *[4]uint32) { v[0], v[1], v[2], v[3] = v[2], v[3], v[0], v[1] }
func rotLanes3(v *[4]uint32) { v[0], v[1], v[2], v[3] = v[3], v[0], v[1], v[2] }

func compressLanes(h *[8]uint32, m *[16]uint32, t, f [2]uint32) {
	va := [4]uint32{h[0], h[1], h[2], h[3]}
	vb := [4]uint32{h[4], h[5], h[6], h[7]}
	vc := [4]uint32{iv[0], iv[1], iv[2], iv[3]}
	vd := [4]uint32{iv[4] ^ t[0], iv[5] ^ t[1], iv[6] ^ f[0], iv[7] ^ f[1]}

	for r := range sigma {
		s := &sigma[r]
		mx := [4]uint32{m[s[0]], m[s[2]], m[s[4]], m[s[6]]}
		my := [4]uint32{m[s[1]], m[s[3]], m[s[5]], m[s[7]]}
		gLanes(&va, &vb, &vc, &vd, &mx, &my)

		rotLanes1(&vb)
		rotLanes2(&vc)
		rotLanes3(&vd)
		mx = [4]uint32{m[s[8]], m[s[10]], m[s[12]], m[s[14]]}
		my = [4]uint32{m[s[9]], m[s[11]], m[s[13]], m[s[15]]}
		gLanes(&va, &vb, &vc, &vd, &mx, &my)
		rotLanes3(&vb)
		rotLanes2(&vc)
		rotLanes1(&vd)
	}

	for i := 0; i < 4; i++ {
		h[i] ^= va[i] ^ vc[i]
		h[i+4] ^= vb[i] ^ vd[i]
	}
}
