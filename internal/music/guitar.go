package music

// FretPosition locates a note on the fretboard. String 1 is the high E,
// string 6 the low E; fret 0 is the open string.
type FretPosition struct {
	String int
	Fret   int
}

// Tuning is the open-string pitch of each string, index 0 = string 1.
type Tuning struct {
	Name    string
	Strings [6]Pitch
}

// PositionConstraint limits an exercise to a fret range.
type PositionConstraint struct {
	Name    string
	MinFret int
	MaxFret int
}

// StandardTuning is EADGBE.
var StandardTuning = Tuning{
	Name: "Standard",
	Strings: [6]Pitch{
		NewPitch("E", Natural, 4),
		NewPitch("B", Natural, 3),
		NewPitch("G", Natural, 3),
		NewPitch("D", Natural, 3),
		NewPitch("A", Natural, 2),
		NewPitch("E", Natural, 2),
	},
}

var (
	OpenPosition    = PositionConstraint{Name: "Open Position", MinFret: 0, MaxFret: 4}
	SecondPosition  = PositionConstraint{Name: "Second Position", MinFret: 2, MaxFret: 5}
	FifthPosition   = PositionConstraint{Name: "Fifth Position", MinFret: 5, MaxFret: 8}
	SeventhPosition = PositionConstraint{Name: "Seventh Position", MinFret: 7, MaxFret: 10}
)

// PositionsForPitch returns every place p can be fretted in the given
// tuning, up to the 24th fret.
func PositionsForPitch(p Pitch, tuning Tuning) []FretPosition {
	var positions []FretPosition
	for i, open := range tuning.Strings {
		fret := p.MidiNumber - open.MidiNumber
		if fret >= 0 && fret <= 24 {
			positions = append(positions, FretPosition{String: i + 1, Fret: fret})
		}
	}
	return positions
}

// PositionsInConstraint filters PositionsForPitch down to a fret range.
func PositionsInConstraint(p Pitch, c PositionConstraint, tuning Tuning) []FretPosition {
	var positions []FretPosition
	for _, pos := range PositionsForPitch(p, tuning) {
		if pos.Fret >= c.MinFret && pos.Fret <= c.MaxFret {
			positions = append(positions, pos)
		}
	}
	return positions
}
