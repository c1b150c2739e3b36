// Cube Solver Robot - CLI application for entering, solving and running a
// Rubik's Cube on the Arduino solving rig.
package main

import (
	"github.com/SeamusWaldron/cuberobot/internal/cli"
)

func main() {
	cli.Execute()
}
