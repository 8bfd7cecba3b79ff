package rules

/*
NextState applies Conway's Game of Life rules to determine the next state of
a cell from its current state and its live-neighbor count:

  - a live cell with fewer than two live neighbors dies (underpopulation)
  - a live cell with two or three live neighbors survives
  - a live cell with more than three live neighbors dies (overpopulation)
  - a dead cell with exactly three live neighbors becomes alive (reproduction)
  - every other cell keeps its state
*/
func NextState(alive bool, neighbors int) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive && neighbors > 3:
		return false
	case !alive && neighbors == 3:
		return true
	default:
		return alive
	}
}
