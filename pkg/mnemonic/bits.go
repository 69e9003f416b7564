package mnemonic

// bitCursor walks a byte buffer bit by bit, most significant bit first.
// Values may straddle byte boundaries; reads and writes use the same order,
// so a sequence written with writeBits reads back unchanged with readBits.
type bitCursor struct {
	buf       []byte
	byteIndex int
	bitOffset int // bits already consumed in buf[byteIndex]
}

func newBitCursor(buf []byte) *bitCursor {
	return &bitCursor{buf: buf}
}

// readBits consumes n bits (n <= 32) and returns them right-aligned.
func (c *bitCursor) readBits(n int) uint32 {
	var v uint32
	for n > 0 {
		avail := 8 - c.bitOffset
		take := min(avail, n)
		chunk := uint32(c.buf[c.byteIndex]>>(avail-take)) & (1<<take - 1)
		v = v<<take | chunk
		c.advance(take)
		n -= take
	}
	return v
}

// writeBits ORs the low n bits of v (n <= 32) into the buffer.
func (c *bitCursor) writeBits(v uint32, n int) {
	for n > 0 {
		avail := 8 - c.bitOffset
		take := min(avail, n)
		chunk := (v >> (n - take)) & (1<<take - 1)
		c.buf[c.byteIndex] |= byte(chunk << (avail - take))
		c.advance(take)
		n -= take
	}
}

// remaining returns the number of unconsumed bits.
func (c *bitCursor) remaining() int {
	return (len(c.buf)-c.byteIndex)*8 - c.bitOffset
}

func (c *bitCursor) advance(n int) {
	c.bitOffset += n
	if c.bitOffset == 8 {
		c.bitOffset = 0
		c.byteIndex++
	}
}
