package universe

import (
	"fmt"
	"io"
	"strings"
)

const (
	cellAlive = " ◼ "
	cellDead  = "   "

	// Erase the display, then move the cursor to the top-left corner.
	ansiClear = "\x1b[2J\x1b[1;1H"
)

// Render returns the universe as printable text: one line per row, each cell
// a fixed three-character field, a newline after every row.
func (u *Universe) Render() string {
	var b strings.Builder
	b.Grow(int(u.height) * (int(u.width)*len(cellDead) + 1))

	for row := uint32(0); row < u.height; row++ {
		for column := uint32(0); column < u.width; column++ {
			if u.cells[u.index(row, column)] == Alive {
				b.WriteString(cellAlive)
			} else {
				b.WriteString(cellDead)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// ClearScreen wipes the terminal ahead of a redraw.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, ansiClear)
}
