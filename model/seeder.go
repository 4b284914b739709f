package model

import "math/rand/v2"

// Seeder decides the initial state of each cell while a grid is built.
// NewGrid calls Alive once per cell in row-major order.
type Seeder interface {
	Alive(row, col int) bool
}

// DrawSeeder draws a uniform integer in [1, 8] per cell and marks the cell
// alive when the draw is divisible by 3. Only 3 and 6 qualify, so a cell
// starts alive with probability 1/4.
type DrawSeeder struct {
	rng *rand.Rand
}

// NewDrawSeeder returns a DrawSeeder backed by a deterministic PCG source.
func NewDrawSeeder(seed int64) *DrawSeeder {
	return NewDrawSeederFrom(rand.New(rand.NewPCG(uint64(seed), 0)))
}

// NewDrawSeederFrom wraps an existing random source.
func NewDrawSeederFrom(rng *rand.Rand) *DrawSeeder {
	return &DrawSeeder{rng: rng}
}

// Draw returns the next sample in [1, 8].
func (s *DrawSeeder) Draw() int {
	return s.rng.IntN(8) + 1
}

// Alive implements Seeder.
func (s *DrawSeeder) Alive(int, int) bool {
	return s.Draw()%3 == 0
}

// DensitySeeder marks each cell alive with the given probability.
type DensitySeeder struct {
	rng     *rand.Rand
	density float64
}

// NewDensitySeeder returns a DensitySeeder backed by a deterministic PCG source.
func NewDensitySeeder(seed int64, density float64) *DensitySeeder {
	return &DensitySeeder{rng: rand.New(rand.NewPCG(uint64(seed), 0)), density: density}
}

// Alive implements Seeder.
func (s *DensitySeeder) Alive(int, int) bool {
	return s.rng.Float64() < s.density
}

// Coord identifies a cell by row and column.
type Coord struct {
	Row, Col int
}

// PatternSeeder marks exactly the listed coordinates alive.
type PatternSeeder map[Coord]bool

// NewPatternSeeder builds a PatternSeeder from a list of coordinates.
func NewPatternSeeder(alive ...Coord) PatternSeeder {
	p := make(PatternSeeder, len(alive))
	for _, c := range alive {
		p[c] = true
	}
	return p
}

// Alive implements Seeder.
func (p PatternSeeder) Alive(row, col int) bool {
	return p[Coord{Row: row, Col: col}]
}
