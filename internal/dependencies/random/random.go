package random

import (
	"crypto/rand"
	"math"
	"math/big"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Float64 returns a value in [0, 1]
	Float64() float64

	// Intn returns a random int in [0, n)
	Intn(n int) int
}

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 1 << 31
	lcgMax        = 0x7fffffff
)

// LCG is the seeded linear congruential generator every daily puzzle is built
// from. The step is evaluated in double precision and reduced modulo 2^31 so
// that the stream matches the browser clients exactly, including for seeds
// large enough that the product loses integer precision.
type LCG struct {
	state int64
}

var _ Random = (*LCG)(nil)

// NewLCG creates a generator starting from seed
func NewLCG(seed int64) *LCG {
	return &LCG{state: seed}
}

// Uint31 advances the generator and returns the raw state in [0, 2^31)
func (g *LCG) Uint31() int64 {
	// The explicit conversions force rounding after each operation so the
	// compiler cannot fuse them.
	product := float64(float64(g.state) * lcgMultiplier)
	x := float64(product + lcgIncrement)
	m := math.Mod(math.Trunc(x), lcgModulus)
	if m < 0 {
		m += lcgModulus
	}
	g.state = int64(m)
	return g.state
}

// Float64 advances the generator and returns state / (2^31 - 1)
func (g *LCG) Float64() float64 {
	return float64(g.Uint31()) / lcgMax
}

// Intn returns floor(Float64() * n)
func (g *LCG) Intn(n int) int {
	return scale(g.Float64(), n)
}

func scale(f float64, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(math.Floor(f * float64(n)))
	if i >= n {
		// Float64 can return exactly 1 when the state is 2^31 - 1.
		i = n - 1
	}
	return i
}

// Shuffle returns a Fisher-Yates shuffled copy of items, walking from the
// last index down and swapping with Intn(i+1).
func Shuffle[T any](rng Random, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fall back to 0 on error (should never happen with crypto/rand)
		return 0
	}
	return int(result.Int64())
}

// Float64 returns a cryptographically random value in [0, 1)
func (r *CryptoRandom) Float64() float64 {
	return float64(r.Intn(1<<53)) / (1 << 53)
}
