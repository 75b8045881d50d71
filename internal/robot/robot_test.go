package robot

import (
	"errors"
	"fmt"
	"testing"
)

// ------------------------------------------------------------------- helpers

func newRobot(t *testing.T) *Robot {
	t.Helper()
	g, err := NewGrid(DefaultSize)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	return New(g)
}

func placedAt(t *testing.T, x, y int, h Heading) *Robot {
	t.Helper()
	r := newRobot(t)
	if err := r.Place(x, y, h); err != nil {
		t.Fatalf("place %d,%d,%s: %v", x, y, h, err)
	}
	return r
}

func report(t *testing.T, r *Robot) string {
	t.Helper()
	got, err := r.Report()
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	return got
}

// ------------------------------------------------------------------- Place

func TestPlaceEveryCell(t *testing.T) {
	for x := 0; x < DefaultSize; x++ {
		for y := 0; y < DefaultSize; y++ {
			for _, h := range Headings() {
				r := placedAt(t, x, y, h)
				want := fmt.Sprintf("%d,%d,%s", x, y, h)
				if got := report(t, r); got != want {
					t.Fatalf("want %q got %q", want, got)
				}
			}
		}
	}
}

func TestPlaceOutOfBounds(t *testing.T) {
	cases := []Position{
		{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {-1, 7}, {5, 5}, {100, -100},
	}
	for _, p := range cases {
		r := newRobot(t)
		err := r.Place(p.X, p.Y, North)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("place %v: want ErrOutOfBounds got %v", p, err)
		}
		var be *BoundsError
		if !errors.As(err, &be) || be.Pos != p {
			t.Fatalf("place %v: want BoundsError for %v got %v", p, p, err)
		}
		if r.Placed() {
			t.Fatalf("place %v: robot must stay unplaced", p)
		}
		if _, err := r.Report(); !errors.Is(err, ErrNotPlaced) {
			t.Fatalf("report after bad place: want ErrNotPlaced got %v", err)
		}
	}
}

func TestPlaceInvalidHeadingKeepsState(t *testing.T) {
	r := placedAt(t, 1, 1, East)
	if err := r.Place(2, 2, Heading(42)); !errors.Is(err, ErrInvalidHeading) {
		t.Fatalf("want ErrInvalidHeading got %v", err)
	}
	if got := report(t, r); got != "1,1,EAST" {
		t.Fatalf("state changed by rejected place: %q", got)
	}
}

func TestFailedPlaceKeepsPreviousPose(t *testing.T) {
	r := placedAt(t, 3, 4, West)
	if err := r.Place(9, 9, North); err == nil {
		t.Fatal("expected error")
	}
	if got := report(t, r); got != "3,4,WEST" {
		t.Fatalf("want 3,4,WEST got %q", got)
	}
}

func TestPlaceOverride(t *testing.T) {
	r := placedAt(t, 1, 2, East)
	if err := r.Move(); err != nil {
		t.Fatal(err)
	}
	if err := r.Place(1, 2, East); err != nil {
		t.Fatal(err)
	}
	if got := report(t, r); got != "1,2,EAST" {
		t.Fatalf("want 1,2,EAST got %q", got)
	}
	if err := r.Place(0, 4, South); err != nil {
		t.Fatal(err)
	}
	if got := report(t, r); got != "0,4,SOUTH" {
		t.Fatalf("want 0,4,SOUTH got %q", got)
	}
}

// ------------------------------------------------------------------- Unplaced

func TestUnplacedRejectsEverything(t *testing.T) {
	r := newRobot(t)
	ops := map[string]func() error{
		"MOVE":  r.Move,
		"LEFT":  r.Left,
		"RIGHT": r.Right,
		"REPORT": func() error {
			_, err := r.Report()
			return err
		},
	}
	for name, op := range ops {
		err := op()
		if !errors.Is(err, ErrNotPlaced) {
			t.Fatalf("%s: want ErrNotPlaced got %v", name, err)
		}
		var pe *PreconditionError
		if !errors.As(err, &pe) || pe.Op != name {
			t.Fatalf("%s: want PreconditionError with op %s got %v", name, name, err)
		}
		if r.Placed() {
			t.Fatalf("%s flipped placed", name)
		}
	}
}

// ------------------------------------------------------------------- Turns

func TestTurnRoundTrip(t *testing.T) {
	for _, h := range Headings() {
		r := placedAt(t, 2, 2, h)
		want := report(t, r)
		if err := r.Left(); err != nil {
			t.Fatal(err)
		}
		if err := r.Right(); err != nil {
			t.Fatal(err)
		}
		if got := report(t, r); got != want {
			t.Fatalf("left+right from %s: want %q got %q", h, want, got)
		}
		if err := r.Right(); err != nil {
			t.Fatal(err)
		}
		if err := r.Left(); err != nil {
			t.Fatal(err)
		}
		if got := report(t, r); got != want {
			t.Fatalf("right+left from %s: want %q got %q", h, want, got)
		}
	}
}

func TestFourTurnsCycle(t *testing.T) {
	for _, h := range Headings() {
		for _, turn := range []string{"LEFT", "RIGHT"} {
			r := placedAt(t, 0, 0, h)
			op := r.Left
			if turn == "RIGHT" {
				op = r.Right
			}
			for i := 0; i < 4; i++ {
				if err := op(); err != nil {
					t.Fatal(err)
				}
			}
			if _, got, _ := r.Pose(); got != h {
				t.Fatalf("4x %s from %s ended at %s", turn, h, got)
			}
		}
	}
}

func TestTurns(t *testing.T) {
	tests := []struct {
		from        Heading
		left, right Heading
	}{
		{North, West, East},
		{West, South, North},
		{South, East, West},
		{East, North, South},
	}
	for _, tt := range tests {
		if got := tt.from.Left(); got != tt.left {
			t.Errorf("%s.Left() = %s, want %s", tt.from, got, tt.left)
		}
		if got := tt.from.Right(); got != tt.right {
			t.Errorf("%s.Right() = %s, want %s", tt.from, got, tt.right)
		}
	}
}

// ------------------------------------------------------------------- Move

func TestMoveEachHeading(t *testing.T) {
	tests := []struct {
		h    Heading
		want string
	}{
		{North, "2,3,NORTH"},
		{South, "2,1,SOUTH"},
		{East, "3,2,EAST"},
		{West, "1,2,WEST"},
	}
	for _, tt := range tests {
		r := placedAt(t, 2, 2, tt.h)
		if err := r.Move(); err != nil {
			t.Fatal(err)
		}
		if got := report(t, r); got != tt.want {
			t.Errorf("move %s: want %q got %q", tt.h, tt.want, got)
		}
	}
}

func TestMoveBlockedAtEdge(t *testing.T) {
	edges := []struct {
		x, y int
		h    Heading
	}{
		{0, 4, North}, {4, 4, North},
		{0, 0, South}, {3, 0, South},
		{4, 2, East}, {4, 0, East},
		{0, 2, West}, {0, 4, West},
	}
	for _, e := range edges {
		r := placedAt(t, e.x, e.y, e.h)
		before := report(t, r)
		if err := r.Move(); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("move off edge from %s: want ErrOutOfBounds got %v", before, err)
		}
		if got := report(t, r); got != before {
			t.Fatalf("position changed by rejected move: %q -> %q", before, got)
		}
	}
}

func TestMoveClampsAtBoundary(t *testing.T) {
	r := placedAt(t, 1, 2, East)
	for i := 0; i < 5; i++ {
		_ = r.Move()
	}
	if got := report(t, r); got != "4,2,EAST" {
		t.Fatalf("want 4,2,EAST got %q", got)
	}
}

// ------------------------------------------------------------------- Scenarios

func TestScenarios(t *testing.T) {
	tests := []struct {
		name  string
		place Position
		h     Heading
		ops   string
		want  string
	}{
		{"move north", Position{0, 0}, North, "M", "0,1,NORTH"},
		{"turn left", Position{0, 0}, North, "L", "0,0,WEST"},
		{"mixed", Position{1, 2}, East, "MMLM", "3,3,NORTH"},
		{"complex", Position{3, 3}, North, "MLMLMRLLM", "3,3,EAST"},
		{"right from south", Position{3, 2}, South, "R", "3,2,WEST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := placedAt(t, tt.place.X, tt.place.Y, tt.h)
			for _, op := range tt.ops {
				var err error
				switch op {
				case 'M':
					err = r.Move()
				case 'L':
					err = r.Left()
				case 'R':
					err = r.Right()
				}
				if err != nil {
					t.Fatalf("op %c: %v", op, err)
				}
			}
			if got := report(t, r); got != tt.want {
				t.Fatalf("want %q got %q", tt.want, got)
			}
		})
	}
}

func TestSmallGrid(t *testing.T) {
	g, err := NewGrid(1)
	if err != nil {
		t.Fatal(err)
	}
	r := New(g)
	if err := r.Place(0, 0, North); err != nil {
		t.Fatal(err)
	}
	for _, h := range Headings() {
		_ = r.Place(0, 0, h)
		if err := r.Move(); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("1x1 grid move %s: want ErrOutOfBounds got %v", h, err)
		}
	}
	if _, err := NewGrid(0); err == nil {
		t.Fatal("expected error for empty grid")
	}
}
