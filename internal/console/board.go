package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"toyrobot/internal/robot"
)

var glyphs = map[robot.Heading]string{
	robot.North: "^",
	robot.South: "v",
	robot.West:  "<",
	robot.East:  ">",
}

const (
	headerPlaced   = "Robot position with heading North(^), South(v), West(<), East(>)"
	headerUnplaced = "Robot not placed yet"
)

// Board draws the table top with the robot on it.
type Board struct {
	header lipgloss.Style
	robot  lipgloss.Style
}

// NewBoard returns a board styled for w. With color off the output is plain
// ASCII regardless of the terminal.
func NewBoard(w io.Writer, color bool) *Board {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Board{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),  // Green
		robot:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("226")), // Bright yellow
	}
}

// Render draws rows from the top (largest Y) down to 0, framed with '#',
// followed by the axis labels.
func (b *Board) Render(rb *robot.Robot) string {
	g := rb.Grid()
	pos, heading, placed := rb.Pose()
	labelW := len(strconv.Itoa(g.Max()))
	frame := g.Size + 2

	var sb strings.Builder
	header := headerUnplaced
	if placed {
		header = headerPlaced
	}
	fmt.Fprintf(&sb, "\n%s%s %s\n",
		strings.Repeat(" ", labelW+1), strings.Repeat("# ", frame), b.header.Render(header))

	for y := g.Max(); y >= g.Min(); y-- {
		fmt.Fprintf(&sb, "%*d # ", labelW, y)
		for x := g.Min(); x <= g.Max(); x++ {
			if placed && pos.X == x && pos.Y == y {
				sb.WriteString(b.robot.Render(glyphs[heading]))
				sb.WriteString(" ")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("#\n")
	}

	sb.WriteString("Y" + strings.Repeat(" ", labelW-1) + strings.Repeat(" #", frame) + "\n")
	sb.WriteString(strings.Repeat(" ", labelW+1) + "X")
	for x := g.Min(); x <= g.Max(); x++ {
		sb.WriteString(" " + strconv.Itoa(x%10))
	}
	sb.WriteString("\n")
	return sb.String()
}
