package music

import "testing"

func TestPositionsForOpenString(t *testing.T) {
	e4 := NewPitch("E", Natural, 4)
	positions := PositionsForPitch(e4, StandardTuning)
	if len(positions) == 0 {
		t.Fatalf("expected positions for E4")
	}
	if positions[0].String != 1 || positions[0].Fret != 0 {
		t.Fatalf("expected open string 1 first, got string %d fret %d",
			positions[0].String, positions[0].Fret)
	}
}

func TestPositionsBelowLowestString(t *testing.T) {
	c2 := NewPitch("C", Natural, 2)
	if positions := PositionsForPitch(c2, StandardTuning); len(positions) != 0 {
		t.Fatalf("expected no positions for C2, got %d", len(positions))
	}
}

func TestPositionsInConstraint(t *testing.T) {
	g3 := NewPitch("G", Natural, 3)
	open := PositionsInConstraint(g3, OpenPosition, StandardTuning)
	for _, pos := range open {
		if pos.Fret < OpenPosition.MinFret || pos.Fret > OpenPosition.MaxFret {
			t.Fatalf("position out of constraint: string %d fret %d", pos.String, pos.Fret)
		}
	}
	if len(open) == 0 {
		t.Fatalf("expected G3 to be playable in open position")
	}
}
