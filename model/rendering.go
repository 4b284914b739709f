package model

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// clear screen and move the cursor home
	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer draws the grid as text, one two-column block per cell
type TerminalRenderer struct {
	Out     io.Writer
	NoClear bool

	frames *FramePool
}

// NewTerminalRenderer returns a renderer writing to out, or stdout when out is nil
func NewTerminalRenderer(out io.Writer, clearScreen bool) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{Out: out, NoClear: !clearScreen, frames: NewFramePool()}
}

// Draw renders the grid's current state as a single write
func (r *TerminalRenderer) Draw(g *Grid) error {
	if r.frames == nil {
		r.frames = NewFramePool()
	}
	buf := r.frames.Get()
	defer r.frames.Put(buf)

	if !r.NoClear {
		buf.WriteString(ansiClear)
	}
	r.compose(buf, g)

	if _, err := r.Out.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Draw] failed to write frame")
	}
	return nil
}

func (r *TerminalRenderer) compose(w io.StringWriter, g *Grid) {
	cells := g.Cells()
	for row := range g.GetHeight() {
		for col := range g.GetWidth() {
			if cells[row*g.GetWidth()+col].Alive {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteString("\n")
	}
}
