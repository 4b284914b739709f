package window

import (
	"image/color"
	"sync"
	"time"

	"github.com/sheikhrachel/go-gol-form/model"
	"github.com/sheikhrachel/go-gol-form/runner"
)

const (
	// DefaultCellSize is the side of one cell in pixels.
	DefaultCellSize = 20
	// NoticeDuration is how long the end-of-run notice stays up before the window closes.
	NoticeDuration = 2 * time.Second

	GameOverNotice = "Game Over"
)

var (
	AliveColor    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	DeadColor     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	OutlineColor  = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	NoticeColor   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	NoticeBGColor = color.RGBA{R: 255, G: 255, B: 255, A: 220}
)

// Board is the window's copy of the grid. The simulation goroutine writes it
// through the runner.Renderer and runner.Host hooks; the UI goroutine reads it
// when painting, so neither touches the live grid at the same time.
type Board struct {
	width, height int

	mu      sync.Mutex
	cells   []bool
	frames  int
	state   runner.State
	closeAt time.Time
	now     func() time.Time
}

// NewBoard returns an empty board of the given size
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
		state:  runner.Running,
		now:    time.Now,
	}
}

// Size returns the board dimensions in cells
func (b *Board) Size() (width, height int) { return b.width, b.height }

// Draw implements runner.Renderer by copying the grid's alive flags.
func (b *Board) Draw(g *model.Grid) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cells = g.SnapshotInto(b.cells)
	b.frames++
	return nil
}

// OnFinished implements runner.Host. The notice stays up for NoticeDuration.
func (b *Board) OnFinished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = runner.Finished
	b.closeAt = b.now().Add(NoticeDuration)
}

// OnCancelled implements runner.Host. The window closes on the next update.
func (b *Board) OnCancelled() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = runner.Cancelled
	b.closeAt = b.now()
}

// View copies the latest frame into dst and returns it with the notice to overlay, if any.
func (b *Board) View(dst []bool) ([]bool, string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	dst = append(dst[:0], b.cells...)
	if b.state == runner.Finished {
		return dst, GameOverNotice
	}
	return dst, ""
}

// Frames returns how many frames have been drawn
func (b *Board) Frames() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frames
}

// ShouldClose reports whether the run has ended and its notice has been shown long enough.
func (b *Board) ShouldClose() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Done() && !b.now().Before(b.closeAt)
}

// CellRect returns the pixel rectangle of the cell at arena index i.
func CellRect(i, width, cellSize int) (x, y, w, h float32) {
	row, col := i/width, i%width
	return float32(col * cellSize), float32(row * cellSize), float32(cellSize), float32(cellSize)
}

// CellColor maps a cell state to its fill color
func CellColor(alive bool) color.RGBA {
	if alive {
		return AliveColor
	}
	return DeadColor
}
