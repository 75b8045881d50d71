package robot

import "fmt"

// Heading is the compass direction the robot faces.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

var headingNames = [...]string{
	North: "NORTH",
	East:  "EAST",
	South: "SOUTH",
	West:  "WEST",
}

// heading => unit displacement, X points EAST and Y points NORTH
var headingVectors = [...]Position{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

// counter-clockwise neighbour
var leftOf = [...]Heading{
	North: West,
	West:  South,
	South: East,
	East:  North,
}

// clockwise neighbour
var rightOf = [...]Heading{
	North: East,
	East:  South,
	South: West,
	West:  North,
}

// Headings lists every valid heading.
func Headings() []Heading {
	return []Heading{North, South, East, West}
}

// ParseHeading matches s against the heading names. Matching is exact and
// case-sensitive.
func ParseHeading(s string) (Heading, error) {
	for h, name := range headingNames {
		if name == s {
			return Heading(h), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of NORTH, SOUTH, EAST, WEST)", ErrInvalidHeading, s)
}

// Valid reports whether h is one of the four headings.
func (h Heading) Valid() bool {
	return h >= North && h <= West
}

// Left returns the heading after a 90 degree turn counter-clockwise. An
// invalid heading is returned unchanged.
func (h Heading) Left() Heading {
	if !h.Valid() {
		return h
	}
	return leftOf[h]
}

// Right returns the heading after a 90 degree turn clockwise. An invalid
// heading is returned unchanged.
func (h Heading) Right() Heading {
	if !h.Valid() {
		return h
	}
	return rightOf[h]
}

// Vector returns the one-step displacement for h, or the zero Position for
// an invalid heading.
func (h Heading) Vector() Position {
	if !h.Valid() {
		return Position{}
	}
	return headingVectors[h]
}

func (h Heading) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heading(%d)", int(h))
	}
	return headingNames[h]
}
