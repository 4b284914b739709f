//go:build ebiten

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Game adapts a Board to the ebiten.Game interface.
type Game struct {
	board    *Board
	cellSize int
	view     []bool
}

// NewGame constructs a Game painting board at cellSize pixels per cell.
func NewGame(board *Board, cellSize int) *Game {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Game{board: board, cellSize: cellSize}
}

// Update closes the window once the run has ended.
func (g *Game) Update() error {
	if g.board.ShouldClose() {
		return ebiten.Termination
	}
	return nil
}

// Draw paints one outlined rectangle per cell and the end-of-run notice.
func (g *Game) Draw(screen *ebiten.Image) {
	var notice string
	g.view, notice = g.board.View(g.view)

	width, _ := g.board.Size()
	for i, alive := range g.view {
		x, y, w, h := CellRect(i, width, g.cellSize)
		vector.DrawFilledRect(screen, x, y, w, h, CellColor(alive), false)
		vector.StrokeRect(screen, x, y, w, h, 1, OutlineColor, false)
	}

	if notice != "" {
		g.drawNotice(screen, notice)
	}
}

func (g *Game) drawNotice(screen *ebiten.Image, notice string) {
	face := basicfont.Face7x13
	sw, sh := g.Layout(0, 0)
	tw := len(notice) * face.Advance
	x, y := (sw-tw)/2, sh/2

	vector.DrawFilledRect(screen, float32(x-8), float32(y-face.Ascent-6), float32(tw+16), float32(face.Height+12), NoticeBGColor, false)
	text.Draw(screen, notice, face, x, y, NoticeColor)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.board.Size()
	return w * g.cellSize, h * g.cellSize
}
