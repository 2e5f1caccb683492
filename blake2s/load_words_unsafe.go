//go:build amd64 || 386 || arm64 || arm || riscv64 || ppc64le || mipsle || mips64le || loong64

package blake2s

import "unsafe"

func loadBlock(dst *[16]uint32, b *[BlockLen]byte) {
	if uintptr(unsafe.Pointer(b))&3 == 0 {
		*dst = *(*[16]uint32)(unsafe.Pointer(b))
		return
	}
	loadBlockSlow(dst, b)
}
