package rules

import "testing"

func TestNextState(t *testing.T) {
	tests := []struct {
		name      string
		alive     bool
		neighbors int
		want      bool
	}{
		{"live cell with no neighbors dies", true, 0, false},
		{"live cell with one neighbor dies", true, 1, false},
		{"live cell with two neighbors survives", true, 2, true},
		{"live cell with three neighbors survives", true, 3, true},
		{"live cell with four neighbors dies", true, 4, false},
		{"live cell with eight neighbors dies", true, 8, false},
		{"dead cell with two neighbors stays dead", false, 2, false},
		{"dead cell with three neighbors becomes alive", false, 3, true},
		{"dead cell with four neighbors stays dead", false, 4, false},
		{"dead cell with no neighbors stays dead", false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextState(tt.alive, tt.neighbors); got != tt.want {
				t.Errorf("NextState(%v, %d) = %v, want %v", tt.alive, tt.neighbors, got, tt.want)
			}
		})
	}
}
