package game

import (
	"errors"
	"fmt"

	"connect4/meta"
)

var (
	// ErrInvalidArgument reports malformed constructor input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIllegalMove reports a capture of an occupied cell or a drop into a full column.
	ErrIllegalMove = errors.New("illegal move")
	// ErrIndexOutOfRange reports a column index outside the board or a missing child.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Rules holds the board dimensions and the length of a winning run.
// Rules are validated once by NewRules; every Board carries the Rules it was built with.
type Rules struct {
	Width     int
	Height    int
	RunLength int
}

// StandardRules returns the 7x6 board with runs of 4.
func StandardRules() Rules {
	return Rules{
		Width:     meta.WIDTH,
		Height:    meta.HEIGHT,
		RunLength: meta.RUN_LENGTH,
	}
}

// NewRules validates the dimensions. A board that can never hold a winning run
// is a configuration error.
func NewRules(width, height, runLength int) (Rules, error) {
	r := Rules{Width: width, Height: height, RunLength: runLength}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

func (r Rules) Validate() error {
	if r.Width < 1 || r.Height < 1 || r.RunLength < 1 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d run %d", ErrInvalidArgument, r.Width, r.Height, r.RunLength)
	}
	if r.RunLength > r.Width {
		return fmt.Errorf("%w: run length %d exceeds width %d", ErrInvalidArgument, r.RunLength, r.Width)
	}
	if r.RunLength > r.Height {
		return fmt.Errorf("%w: run length %d exceeds height %d", ErrInvalidArgument, r.RunLength, r.Height)
	}
	return nil
}

// Cells is the number of slots on the board.
func (r Rules) Cells() int {
	return r.Width * r.Height
}
