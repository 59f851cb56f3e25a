package workload

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/purecall/purefn"
)

// Seed is the 32-byte seed of a ChaCha8 generator.
type Seed [32]byte

// Random draws from the global unseeded source. It is impure: two calls with
// the same (empty) argument almost never agree.
func Random(_ purefn.Caller[struct{}, float64], _ struct{}) float64 {
	return rand.Float64()
}

// Seeded draws the first float64 of a generator seeded with seed. The result
// depends on seed only.
func Seeded(_ purefn.Caller[Seed, float64], seed Seed) float64 {
	return rand.New(rand.NewChaCha8(seed)).Float64()
}

// NewSeed returns a fresh seed from the global source.
func NewSeed() Seed {
	var seed Seed
	for i := 0; i < len(seed); i += 8 {
		binary.LittleEndian.PutUint64(seed[i:], rand.Uint64())
	}
	return seed
}

// SeedFrom derives a seed from phrase. Equal phrases give equal seeds.
func SeedFrom(phrase string) Seed {
	var seed Seed
	d := xxhash.New()
	for i := 0; i < len(seed); i += 8 {
		d.Reset()
		_, _ = d.Write([]byte{byte(i)})
		_, _ = d.WriteString(phrase)
		binary.LittleEndian.PutUint64(seed[i:], d.Sum64())
	}
	return seed
}
