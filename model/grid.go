package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-form/rules"
)

// ErrInvalidDimensions is returned when a grid is requested with a non-positive width or height.
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// neighborOffsets lists the eight (row, col) steps around a cell.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Cell is one position on the grid
type Cell struct {
	Row   int
	Col   int
	Alive bool

	nextAlive bool
	neighbors []int
}

// Neighbors returns the arena indices of the cells adjacent to c.
// The slice is shared with the grid and must not be modified.
func (c *Cell) Neighbors() []int {
	return c.neighbors
}

// Grid owns a fixed arena of cells stored in row-major order
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a grid with the specified dimensions, seeding each cell from seeder.
// A nil seeder leaves every cell dead.
func NewGrid(width, height int, seeder Seeder) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] width=%d height=%d", width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for row := range height {
		for col := range width {
			c := &g.cells[row*width+col]
			c.Row, c.Col = row, col
			if seeder != nil {
				c.Alive = seeder.Alive(row, col)
			}
		}
	}

	// every cell must exist before neighbors can refer to it
	g.linkNeighbors()
	return g, nil
}

// linkNeighbors computes the in-bounds neighbors of every cell once.
func (g *Grid) linkNeighbors() {
	for i := range g.cells {
		c := &g.cells[i]
		neighbors := make([]int, 0, len(neighborOffsets))
		for _, off := range neighborOffsets {
			if idx, ok := g.Index(c.Row+off[0], c.Col+off[1]); ok {
				neighbors = append(neighbors, idx)
			}
		}
		c.neighbors = neighbors
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Len returns the number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index returns the arena index of (row, col) and whether it lies inside the grid.
func (g *Grid) Index(row, col int) (int, bool) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return 0, false
	}
	return row*g.width + col, true
}

// Cell returns the cell at arena index i.
func (g *Grid) Cell(i int) *Cell {
	return &g.cells[i]
}

// At returns the cell at (row, col), or nil when out of bounds.
func (g *Grid) At(row, col int) *Cell {
	idx, ok := g.Index(row, col)
	if !ok {
		return nil
	}
	return &g.cells[idx]
}

// Cells returns the arena in row-major order. Callers outside the simulation loop must only read it.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Set sets a cell to alive (true) or dead (false), reporting whether (row, col) was in bounds
func (g *Grid) Set(row, col int, alive bool) bool {
	idx, ok := g.Index(row, col)
	if ok {
		g.cells[idx].Alive = alive
	}
	return ok
}

// Get returns the state of a cell; cells outside the grid are dead
func (g *Grid) Get(row, col int) bool {
	idx, ok := g.Index(row, col)
	return ok && g.cells[idx].Alive
}

// Clear kills every cell
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Alive = false
	}
}

// LiveNeighbors counts the living neighbors of the cell at arena index i.
func (g *Grid) LiveNeighbors(i int) (count int) {
	for _, n := range g.cells[i].neighbors {
		if g.cells[n].Alive {
			count++
		}
	}
	return
}

// Step advances the grid by one generation in place.
func (g *Grid) Step() {
	// stage every next state before committing any of them
	for i := range g.cells {
		g.cells[i].nextAlive = rules.ApplyConwayRules(g.LiveNeighbors(i), g.cells[i].Alive)
	}
	for i := range g.cells {
		g.cells[i].Alive = g.cells[i].nextAlive
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for i := range g.cells {
		if g.cells[i].Alive {
			count++
		}
	}
	return
}

// Snapshot copies the alive flags in row-major order
func (g *Grid) Snapshot() []bool {
	return g.SnapshotInto(nil)
}

// SnapshotInto copies the alive flags into dst, reusing its storage when large enough.
func (g *Grid) SnapshotInto(dst []bool) []bool {
	if cap(dst) < len(g.cells) {
		dst = make([]bool, len(g.cells))
	}
	dst = dst[:len(g.cells)]
	for i := range g.cells {
		dst[i] = g.cells[i].Alive
	}
	return dst
}

// Load replaces every alive flag from a row-major snapshot
func (g *Grid) Load(states []bool) error {
	if len(states) != len(g.cells) {
		return errors.Errorf("[Load] snapshot has %d cells, grid has %d", len(states), len(g.cells))
	}
	for i, alive := range states {
		g.cells[i].Alive = alive
	}
	return nil
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i := range g.cells {
		if g.cells[i].Alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
