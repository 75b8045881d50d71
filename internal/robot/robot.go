package robot

import (
	"fmt"

	"github.com/tliron/commonlog"
)

// Robot is a toy robot on a square table top. The zero value is not usable;
// create robots with New.
type Robot struct {
	grid    Grid
	pos     Position
	heading Heading
	placed  bool
	log     commonlog.Logger
}

// Option configures a Robot.
type Option func(*Robot)

// WithLogger sets the logger used for accepted and rejected operations.
func WithLogger(log commonlog.Logger) Option {
	return func(r *Robot) { r.log = log }
}

// New returns an unplaced robot on grid.
func New(grid Grid, opts ...Option) *Robot {
	r := &Robot{grid: grid}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = commonlog.GetLogger("toyrobot.robot")
	}
	return r
}

// Grid returns the table the robot lives on.
func (r *Robot) Grid() Grid { return r.grid }

// Placed reports whether a PLACE has succeeded.
func (r *Robot) Placed() bool { return r.placed }

// Pose returns position, heading and the placed flag. Position and heading
// are meaningless while placed is false.
func (r *Robot) Pose() (Position, Heading, bool) {
	return r.pos, r.heading, r.placed
}

// Place puts the robot at (x, y) facing h, replacing any previous pose.
// A rejected placement leaves the robot untouched.
func (r *Robot) Place(x, y int, h Heading) error {
	target := Position{X: x, Y: y}
	if !r.grid.InBounds(target) {
		err := &BoundsError{Op: "PLACE", Pos: target, Grid: r.grid}
		r.log.Errorf("%v", err)
		return err
	}
	if !h.Valid() {
		err := fmt.Errorf("PLACE: %w: %v", ErrInvalidHeading, h)
		r.log.Errorf("%v", err)
		return err
	}
	r.pos = target
	r.heading = h
	r.placed = true
	r.log.Infof("placed robot at X=%d, Y=%d, facing %s", x, y, h)
	return nil
}

// Move advances the robot one unit in the direction it faces. A move that
// would leave the table is rejected and the robot stays where it is.
func (r *Robot) Move() error {
	if !r.placed {
		return r.notPlaced("MOVE")
	}
	next := r.pos.Add(r.heading.Vector())
	if !r.grid.InBounds(next) {
		err := &BoundsError{Op: "MOVE", Pos: next, Grid: r.grid}
		r.log.Errorf("%v", err)
		return err
	}
	r.pos = next
	r.log.Debugf("executed MOVE to %v", r.pos)
	return nil
}

// Left turns the robot 90 degrees counter-clockwise.
func (r *Robot) Left() error {
	if !r.placed {
		return r.notPlaced("LEFT")
	}
	r.heading = r.heading.Left()
	r.log.Debugf("turned LEFT, now facing %s", r.heading)
	return nil
}

// Right turns the robot 90 degrees clockwise.
func (r *Robot) Right() error {
	if !r.placed {
		return r.notPlaced("RIGHT")
	}
	r.heading = r.heading.Right()
	r.log.Debugf("turned RIGHT, now facing %s", r.heading)
	return nil
}

// Report returns the pose as "X,Y,HEADING".
func (r *Robot) Report() (string, error) {
	if !r.placed {
		return "", r.notPlaced("REPORT")
	}
	r.log.Infof("current robot pose: X = %d, Y = %d, HEADING = %s", r.pos.X, r.pos.Y, r.heading)
	return r.String(), nil
}

func (r *Robot) String() string {
	if !r.placed {
		return "not placed"
	}
	return fmt.Sprintf("%d,%d,%s", r.pos.X, r.pos.Y, r.heading)
}

func (r *Robot) notPlaced(op string) error {
	err := &PreconditionError{Op: op}
	r.log.Errorf("%v", err)
	return err
}
