package blake2s

import (
	"crypto/sha256"
	"testing"
)

func BenchmarkCompress(b *testing.B) {
	ctx := Context{H: iv}
	var block [BlockLen]byte
	for i := range block {
		block[i] = byte(i % 251)
	}
	b.SetBytes(BlockLen)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Compress(&ctx, &block)
	}
}

func BenchmarkCompressLanes(b *testing.B) {
	h := iv
	var block [BlockLen]byte
	for i := range block {
		block[i] = byte(i % 251)
	}
	var m [16]uint32
	loadBlock(&m, &block)
	b.SetBytes(BlockLen)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		compressLanes(&h, &m, [2]uint32{}, [2]uint32{})
	}
}

func BenchmarkSHA256Block(b *testing.B) {
	var block [BlockLen]byte
	for i := range block {
		block[i] = byte(i % 251)
	}
	b.SetBytes(BlockLen)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sha256.Sum256(block[:])
	}
}
