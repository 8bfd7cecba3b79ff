package universe

import (
	"github.com/pkg/errors"

	"toruslife/rules"
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead is an empty grid position.
	Dead Cell = 0
	// Alive is an occupied grid position.
	Alive Cell = 1
)

// Toggle returns the opposite state.
func (c Cell) Toggle() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

// Universe is the game board: a toroidal grid of cells stored row-major,
// so the cell at (row, column) lives at index row*width+column.
type Universe struct {
	width  uint32
	height uint32
	cells  []Cell
	pool   *bufferPool
}

/*
New creates a universe of width*height cells seeded with a deterministic
divisor pattern: the cell at linear index i starts Alive when i is divisible
by divA or by divB, and Dead otherwise.

Both dimensions and both divisors must be greater than zero; a zero value is
reported as an error rather than producing a degenerate board.
*/
func New(width, height, divA, divB uint32) (*Universe, error) {
	if width == 0 || height == 0 {
		return nil, errors.Errorf("[New] dimensions must be greater than zero, got %dx%d", width, height)
	}
	if divA == 0 || divB == 0 {
		return nil, errors.Errorf("[New] divisors must be greater than zero, got %d and %d", divA, divB)
	}

	cells := make([]Cell, int(width)*int(height))
	for i := range cells {
		if uint32(i)%divA == 0 || uint32(i)%divB == 0 {
			cells[i] = Alive
		}
	}

	return &Universe{
		width:  width,
		height: height,
		cells:  cells,
		pool:   newBufferPool(),
	}, nil
}

// Width returns the number of columns.
func (u *Universe) Width() uint32 {
	return u.width
}

// Height returns the number of rows.
func (u *Universe) Height() uint32 {
	return u.height
}

// Cells exposes the current generation as a read-only view of the backing
// buffer. The slice is borrowed: callers must not modify it or hold it
// across a Tick, Reset or resize.
func (u *Universe) Cells() []Cell {
	return u.cells
}

// index returns the linear buffer index for (row, column).
func (u *Universe) index(row, column uint32) int {
	return int(row)*int(u.width) + int(column)
}

// checkBounds validates a coordinate pair against the current dimensions.
func (u *Universe) checkBounds(row, column uint32) error {
	if row >= u.height || column >= u.width {
		return errors.Errorf("[checkBounds] cell (%d,%d) out of range for %dx%d universe",
			row, column, u.width, u.height)
	}
	return nil
}

// SetCells forces every listed (row, column) pair to Alive. Any out-of-range
// pair fails the whole call before the universe is touched.
func (u *Universe) SetCells(coords [][2]uint32) error {
	for _, coord := range coords {
		if err := u.checkBounds(coord[0], coord[1]); err != nil {
			return errors.Wrap(err, "[SetCells]")
		}
	}
	for _, coord := range coords {
		u.cells[u.index(coord[0], coord[1])] = Alive
	}
	return nil
}

// ToggleCell flips the cell at (row, column) between Alive and Dead.
func (u *Universe) ToggleCell(row, column uint32) error {
	if err := u.checkBounds(row, column); err != nil {
		return errors.Wrap(err, "[ToggleCell]")
	}
	idx := u.index(row, column)
	u.cells[idx] = u.cells[idx].Toggle()
	return nil
}

// Reset kills every cell, preserving dimensions.
func (u *Universe) Reset() {
	for i := range u.cells {
		u.cells[i] = Dead
	}
}

// SetWidth changes the number of columns and reallocates the board to
// all-Dead. Prior live cells are not preserved.
func (u *Universe) SetWidth(width uint32) error {
	if width == 0 {
		return errors.New("[SetWidth] width must be greater than zero")
	}
	u.width = width
	u.cells = make([]Cell, int(width)*int(u.height))
	return nil
}

// SetHeight changes the number of rows and reallocates the board to
// all-Dead. Prior live cells are not preserved.
func (u *Universe) SetHeight(height uint32) error {
	if height == 0 {
		return errors.New("[SetHeight] height must be greater than zero")
	}
	u.height = height
	u.cells = make([]Cell, int(u.width)*int(height))
	return nil
}

// liveNeighborCount sums the Alive states of the 8 toroidal neighbors of
// (row, column). Offsets are expressed as height-1/width-1 instead of -1 so
// the wrap stays in unsigned arithmetic.
func (u *Universe) liveNeighborCount(row, column uint32) int {
	count := 0
	for _, deltaRow := range [3]uint32{u.height - 1, 0, 1} {
		for _, deltaCol := range [3]uint32{u.width - 1, 0, 1} {
			if deltaRow == 0 && deltaCol == 0 {
				continue
			}
			neighborRow := uint32((uint64(row) + uint64(deltaRow)) % uint64(u.height))
			neighborCol := uint32((uint64(column) + uint64(deltaCol)) % uint64(u.width))
			count += int(u.cells[u.index(neighborRow, neighborCol)])
		}
	}
	return count
}

// Tick advances the universe by one generation. The next generation is
// written to a separate buffer and swapped in whole, so no reader ever
// observes a partially advanced board.
func (u *Universe) Tick() {
	next := u.pool.get(len(u.cells))

	for row := uint32(0); row < u.height; row++ {
		for column := uint32(0); column < u.width; column++ {
			idx := u.index(row, column)
			alive := u.cells[idx] == Alive
			if rules.NextState(alive, u.liveNeighborCount(row, column)) {
				next[idx] = Alive
			} else {
				next[idx] = Dead
			}
		}
	}

	prev := u.cells
	u.cells = next
	u.pool.put(prev)
}

// Population returns the number of Alive cells in the current generation.
func (u *Universe) Population() (count int) {
	for _, cell := range u.cells {
		count += int(cell)
	}
	return count
}
