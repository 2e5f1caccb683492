package blake2s

import "encoding/binary"

func loadBlockSlow(dst *[16]uint32, b *[BlockLen]byte) {
	for i := 0; i < 16; i++ {
		dst[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
}
