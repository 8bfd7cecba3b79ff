package universe

// AddGlider sets the classic glider alive with its bounding box anchored at
// (row, column).
func (u *Universe) AddGlider(row, column uint32) error {
	return u.SetCells([][2]uint32{
		{row, column + 1},
		{row + 1, column + 2},
		{row + 2, column},
		{row + 2, column + 1},
		{row + 2, column + 2},
	})
}

// AddBlinker sets a horizontal three-cell blinker alive starting at
// (row, column).
func (u *Universe) AddBlinker(row, column uint32) error {
	return u.SetCells([][2]uint32{
		{row, column},
		{row, column + 1},
		{row, column + 2},
	})
}
