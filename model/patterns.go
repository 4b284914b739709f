package model

// AddGlider adds a glider pattern with its top-left corner at (startRow, startCol)
func (g *Grid) AddGlider(startRow, startCol int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	g.stamp(startRow, startCol, pattern)
}

// AddBlinker adds a horizontal blinker oscillator
func (g *Grid) AddBlinker(startRow, startCol int) {
	g.stamp(startRow, startCol, [][]bool{{true, true, true}})
}

// AddBlock adds a 2x2 block still life
func (g *Grid) AddBlock(startRow, startCol int) {
	g.stamp(startRow, startCol, [][]bool{{true, true}, {true, true}})
}

// stamp writes pattern onto the grid; cells that fall outside are skipped.
func (g *Grid) stamp(startRow, startCol int, pattern [][]bool) {
	for r, row := range pattern {
		for c, alive := range row {
			g.Set(startRow+r, startCol+c, alive)
		}
	}
}
