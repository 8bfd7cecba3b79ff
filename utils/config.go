package utils

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// NumArgs is the number of positional arguments the simulator takes.
const NumArgs = 4

// Config holds the simulation parameters.
type Config struct {
	Width     uint32
	Height    uint32
	DivA      uint32
	DivB      uint32
	FrameRate time.Duration
}

// DefaultConfig returns defaults for everything the command line does not
// cover.
func DefaultConfig() Config {
	return Config{
		FrameRate: 100 * time.Millisecond,
	}
}

// ParseArgs builds a Config from the four positional arguments: width,
// height and the two divisors of the initial seed pattern. Each must parse
// as an unsigned 32-bit integer greater than zero.
func ParseArgs(args []string) (Config, error) {
	config := DefaultConfig()

	if len(args) != NumArgs {
		return config, errors.Errorf("[ParseArgs] expected %d arguments, got %d", NumArgs, len(args))
	}

	names := [NumArgs]string{"width", "height", "div_a", "div_b"}
	values := [NumArgs]uint32{}
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return config, errors.Wrapf(err, "[ParseArgs] %s must be an unsigned integer, got %q", names[i], arg)
		}
		if v == 0 {
			return config, errors.Errorf("[ParseArgs] %s must be greater than zero", names[i])
		}
		values[i] = uint32(v)
	}

	config.Width = values[0]
	config.Height = values[1]
	config.DivA = values[2]
	config.DivB = values[3]
	return config, nil
}
