package mesh

// Multipliers used to mix each vertex ID into the seed. They are large odd
// primes, so each one is a bijection on uint32.
const (
	seedMixA uint32 = 73856093
	seedMixB uint32 = 19349663
	seedMixC uint32 = 83492791
)

// Derive a color seed from three vertex IDs. The IDs are sorted before mixing,
// so every ordering of the same three vertices gives the same seed.
//
// All arithmetic is wrapping uint32 arithmetic.
func ColorSeed(a, b, c PointID) uint32 {
	ids := sortedIDs(a, b, c)
	return uint32(ids[0])*seedMixA ^ uint32(ids[1])*seedMixB ^ uint32(ids[2])*seedMixC
}

// Map a seed to a light color. Each channel comes from its own linear
// congruential step, reduced into 128..255 so that every channel stays in the
// bright half of the range.
func PastelColor(seed uint32) RGB565 {
	r := uint8((seed*1664525+1013904223)%128) + 128
	g := uint8((seed*22695477+1)%128) + 128
	b := uint8((seed*214013+2531011)%128) + 128
	return PackRGB565(r, g, b)
}

func (t Triangle) Color() RGB565 {
	return PastelColor(ColorSeed(t.A, t.B, t.C))
}

func PackRGB565(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b>>3))
}

// Expand back to 8 bits per channel. The low bits lost in packing are filled
// by replicating the high bits, so white stays white.
func (c RGB565) RGB() (r, g, b uint8) {
	r5 := uint8(c >> 11 & 0x1F)
	g6 := uint8(c >> 5 & 0x3F)
	b5 := uint8(c & 0x1F)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

const (
	Black RGB565 = 0x0000
	White RGB565 = 0xFFFF
)
