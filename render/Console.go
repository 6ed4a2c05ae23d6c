// Package render implements console and image renderings of gridworld
// environments and policies
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/gridenv/environment/gridworld"
)

// Grid is the read-only view of a gridworld needed for rendering
type Grid interface {
	Dims() (r, c int)
	Position() gridworld.Position
	StartPosition() gridworld.Position
	GoalPosition() gridworld.Position
	HazardPositions() []gridworld.Position
}

// Cell markers used by Console
const (
	AgentMarker  = "x"
	StartMarker  = "A"
	GoalMarker   = "B"
	HazardMarker = "!!"
	EmptyMarker  = "."
)

// Console writes a textual rendering of g to w. Rows are written from
// the top row (y = rows-1) down to y = 0 and each row holds one tab
// separated entry per column. An entry concatenates the markers of
// everything occupying the cell. If colour is true, markers are
// coloured with ANSI escape codes.
func Console(w io.Writer, g Grid, colour bool) error {
	a := aurora.NewAurora(colour)
	r, c := g.Dims()

	hazards := make(map[gridworld.Position]bool)
	for _, h := range g.HazardPositions() {
		hazards[h] = true
	}

	var b strings.Builder
	border := "|\t" + strings.Repeat("___\t", c) + "|\n"
	b.WriteString(border)

	for y := r - 1; y >= 0; y-- {
		b.WriteString("|\t")
		for x := 0; x < c; x++ {
			cell := gridworld.Position{X: x, Y: y}
			printed := false

			if cell == g.Position() {
				b.WriteString(fmt.Sprint(a.Bold(a.Cyan(AgentMarker))))
				printed = true
			}
			if cell == g.StartPosition() {
				b.WriteString(fmt.Sprint(a.Blue(StartMarker)))
				printed = true
			}
			if cell == g.GoalPosition() {
				b.WriteString(fmt.Sprint(a.Green(GoalMarker)))
				printed = true
			}
			if hazards[cell] {
				b.WriteString(fmt.Sprint(a.Red(HazardMarker)))
				printed = true
			}
			if !printed {
				b.WriteString(EmptyMarker)
			}
			b.WriteString("\t")
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("console: could not write rendering: %v", err)
	}
	return nil
}
