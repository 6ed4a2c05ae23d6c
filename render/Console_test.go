package render

import (
	"strings"
	"testing"

	"github.com/samuelfneumann/gridenv/environment/gridworld"
)

func TestConsole(t *testing.T) {
	hazards := []gridworld.Position{{X: 3, Y: 4}, {X: 7, Y: 7}}
	g, _, err := gridworld.NewDefault(hazards)
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := Console(&b, g, false); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != gridworld.DefaultRows+2 {
		t.Fatalf("want %d lines, have %d", gridworld.DefaultRows+2, len(lines))
	}

	border := "|\t" + strings.Repeat("___\t", gridworld.DefaultCols) + "|"
	if lines[0] != border || lines[len(lines)-1] != border {
		t.Errorf("unexpected border: %q", lines[0])
	}

	// lines[1] is the top row, y = 7
	cells := func(line string) []string {
		fields := strings.Split(line, "\t")
		return fields[1 : len(fields)-1]
	}

	top := cells(lines[1])
	if len(top) != gridworld.DefaultCols {
		t.Fatalf("want %d cells, have %d", gridworld.DefaultCols, len(top))
	}
	if top[7] != GoalMarker+HazardMarker {
		t.Errorf("goal cell: want %q, have %q", GoalMarker+HazardMarker, top[7])
	}
	if top[0] != EmptyMarker {
		t.Errorf("empty cell: want %q, have %q", EmptyMarker, top[0])
	}

	// y = 4 is lines[1+(7-4)]
	if c := cells(lines[4])[3]; c != HazardMarker {
		t.Errorf("hazard cell: want %q, have %q", HazardMarker, c)
	}

	bottom := cells(lines[gridworld.DefaultRows])
	if bottom[0] != AgentMarker+StartMarker {
		t.Errorf("start cell: want %q, have %q", AgentMarker+StartMarker,
			bottom[0])
	}

	if _, _, err := g.StepAction(gridworld.Right); err != nil {
		t.Fatal(err)
	}
	b.Reset()
	if err := Console(&b, g, false); err != nil {
		t.Fatal(err)
	}
	lines = strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	bottom = cells(lines[gridworld.DefaultRows])
	if bottom[0] != StartMarker || bottom[1] != AgentMarker {
		t.Errorf("after moving right: have %q and %q", bottom[0], bottom[1])
	}
}

func TestConsoleColour(t *testing.T) {
	g, _, err := gridworld.NewDefault(nil)
	if err != nil {
		t.Fatal(err)
	}

	var plain, coloured strings.Builder
	if err := Console(&plain, g, false); err != nil {
		t.Fatal(err)
	}
	if err := Console(&coloured, g, true); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("plain rendering should not contain escape codes")
	}
	if !strings.Contains(coloured.String(), "\x1b[") {
		t.Error("coloured rendering should contain escape codes")
	}
}
