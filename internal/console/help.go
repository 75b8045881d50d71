package console

import (
	"fmt"
	"strings"

	"toyrobot/internal/robot"
)

// HelpText is the usage printed by HELP and after rejected commands.
func HelpText(g robot.Grid) string {
	var b strings.Builder
	b.WriteString("Help: valid commands are\n")
	b.WriteString("  'PLACE X,Y,F'  places the robot onto the tabletop with coordinates X: int, Y: int\n")
	fmt.Fprintf(&b, "                 (both [%d-%d]) and orientation F: 'NORTH', 'SOUTH', 'EAST' or 'WEST'\n", g.Min(), g.Max())
	b.WriteString("  'MOVE'         moves the robot by one unit in the direction it is currently facing\n")
	b.WriteString("  'LEFT'         rotates the robot by 90 degrees to the left\n")
	b.WriteString("  'RIGHT'        rotates the robot by 90 degrees to the right\n")
	b.WriteString("  'REPORT'       announces X,Y and orientation F of the robot\n")
	b.WriteString("  'EXIT'         to close this application\n")
	b.WriteString("  'HELP'         to print this message\n")
	b.WriteString("  Please note that the tabletop's X-axis points EAST, the Y-axis points NORTH\n")
	return b.String()
}

// Banner is the welcome text logged when a session starts.
func Banner(g robot.Grid) []string {
	return []string{
		"Welcome to Toy Robot Simulator!",
		fmt.Sprintf("The user can place a 2D robot with a 1x1 footprint on a %dx%d table top and move it around.", g.Size, g.Size),
		"Remember that before the robot can be moved, it has to be placed on the table first.",
		"Please note that the tabletop's X-axis points EAST, the Y-axis points NORTH.",
		"Good Luck!",
	}
}
