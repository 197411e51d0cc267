package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// BinaryString returns n random '0'/'1' characters.
func (r *RNG) BinaryString(n int) string {
	if n <= 0 {
		return ""
	}
	cells := make([]uint8, n)
	FillBinary(r.r, cells)
	for i := range cells {
		cells[i] += '0'
	}
	return string(cells)
}

// FillBinary fills the buffer with 0/1 values using the RNG.
func FillBinary(r *rand.Rand, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.IntN(2))
	}
}
