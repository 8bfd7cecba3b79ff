package utils

import (
	"testing"
	"time"
)

func TestParseArgs(t *testing.T) {
	config, err := ParseArgs([]string{"40", "25", "2", "7"})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}

	if config.Width != 40 || config.Height != 25 {
		t.Errorf("dimensions = %dx%d, want 40x25", config.Width, config.Height)
	}
	if config.DivA != 2 || config.DivB != 7 {
		t.Errorf("divisors = %d, %d, want 2, 7", config.DivA, config.DivB)
	}
	if config.FrameRate != 100*time.Millisecond {
		t.Errorf("frame rate = %v, want 100ms default", config.FrameRate)
	}
}

func TestParseArgsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"too few arguments", []string{"10", "10", "2"}},
		{"too many arguments", []string{"10", "10", "2", "5", "9"}},
		{"non-numeric width", []string{"ten", "10", "2", "5"}},
		{"negative height", []string{"10", "-10", "2", "5"}},
		{"zero width", []string{"0", "10", "2", "5"}},
		{"zero divisor", []string{"10", "10", "2", "0"}},
		{"width beyond 32 bits", []string{"4294967296", "10", "2", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseArgs(tt.args); err == nil {
				t.Errorf("ParseArgs(%v) succeeded, want error", tt.args)
			}
		})
	}
}
