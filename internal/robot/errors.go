package robot

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPlaced is returned by every operation but Place before the robot
	// has been placed on the table.
	ErrNotPlaced = errors.New("please first issue a in-bounds PLACE command")
	// ErrOutOfBounds is returned when a placement or a move would leave the table.
	ErrOutOfBounds = errors.New("robot must be within the bounds of the tabletop")
	// ErrInvalidHeading is returned for anything but NORTH, SOUTH, EAST or WEST.
	ErrInvalidHeading = errors.New("invalid heading")
)

// NotPlacedMessage is what REPORT yields before the robot is placed.
const NotPlacedMessage = "Error: please first issue a in-bounds PLACE command"

// PreconditionError reports an operation attempted before a valid PLACE.
type PreconditionError struct {
	Op string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrNotPlaced)
}

func (e *PreconditionError) Unwrap() error { return ErrNotPlaced }

// BoundsError reports a target position outside the grid.
type BoundsError struct {
	Op   string
	Pos  Position
	Grid Grid
}

func (e *BoundsError) Error() string {
	g := e.Grid
	switch {
	case e.Pos.X < g.Min() || e.Pos.X > g.Max():
		return fmt.Sprintf("%s: %v: X must be between inclusive %d and %d, demanded X = %d",
			e.Op, ErrOutOfBounds, g.Min(), g.Max(), e.Pos.X)
	default:
		return fmt.Sprintf("%s: %v: Y must be between inclusive %d and %d, demanded Y = %d",
			e.Op, ErrOutOfBounds, g.Min(), g.Max(), e.Pos.Y)
	}
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }
