// Package blake2s implements the BLAKE2s compression function: the
// ten-round ARX transform that folds one 64-byte message block into an
// 8-word chaining value. Block framing, keying, and digest truncation
// belong to the caller.
package blake2s

// Context is the state threaded through successive compressions: the
// chaining value H, the byte counter T, and the finalization flags F.
// Compress reads T and F and overwrites H; the caller increments T and
// raises the final-block flag before the last call.
type Context struct {
	H [8]uint32
	T [2]uint32
	F [2]uint32
}

// SetFinal marks the next compressed block as the last block of the
// message.
func (c *Context) SetFinal() {
	c.F[0] = ^uint32(0)
}

// Compress folds block into the chaining value held in ctx. Block bytes
// are read as 16 little-endian 32-bit words. Concurrent calls on distinct
// contexts are independent; calls sharing a context need external
// serialization.
func Compress(ctx *Context, block *[BlockLen]byte) {
	var m [16]uint32
	loadBlock(&m, block)
	compressGeneric(&ctx.H, &m, ctx.T, ctx.F)
}
