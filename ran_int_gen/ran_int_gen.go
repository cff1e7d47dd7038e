// ran_int_gen.go
// Pseudorandom integer datasets for sort_bench
// Values of a dataset of size n are drawn uniformly from [0, n)

package ran_int_gen

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidSize is returned for negative dataset sizes.
var ErrInvalidSize = errors.New("invalid dataset size")

// Generator draws datasets from one explicitly owned random source.
type Generator struct {
	seed uint64
	src  rand.Source
}

// New returns a Generator seeded with seed. A zero seed is replaced by a
// time-derived one, so runs are not reproducible unless a seed is given.
func New(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		seed: seed,
		src:  rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}
}

// Seed returns the effective seed, useful for reproducing a run.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Generate returns size integers, each uniform on [0, size).
func (g *Generator) Generate(size int) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	data := make([]int, size)
	if size == 0 {
		return data, nil
	}

	dist := distuv.Uniform{Min: 0, Max: float64(size), Src: g.src}
	for i := range data {
		v := int(math.Floor(dist.Rand()))
		if v >= size {			// guard the open upper bound against rounding
			v = size - 1
		}
		data[i] = v
	}
	return data, nil
}

// GenerateAll returns one dataset per size, keyed by size.
func (g *Generator) GenerateAll(sizes []int) (map[int][]int, error) {
	out := make(map[int][]int, len(sizes))
	for _, size := range sizes {
		if _, ok := out[size]; ok {
			continue
		}
		data, err := g.Generate(size)
		if err != nil {
			return nil, err
		}
		out[size] = data
	}
	return out, nil
}
