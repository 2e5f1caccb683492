//go:build !(amd64 || 386 || arm64 || arm || riscv64 || ppc64le || mipsle || mips64le || loong64)

package blake2s

func loadBlock(dst *[16]uint32, b *[BlockLen]byte) {
	loadBlockSlow(dst, b)
}
