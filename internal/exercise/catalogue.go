package exercise

import (
	"github.com/google/uuid"

	"github.com/PatrickLevy/guitar-sight-reader/internal/music"
)

func note(name string, octave int, dur DurationValue, accidental music.Accidental) MusicalNote {
	p := music.NewPitch(name, accidental, octave)
	return MusicalNote{
		ID:       uuid.NewString(),
		Pitch:    &p,
		Duration: Duration{Value: dur},
	}
}

func n(name string, octave int, dur DurationValue) MusicalNote {
	return note(name, octave, dur, music.Natural)
}

var cMajor = KeySignature{Root: "C", Mode: "major"}
var gMajor = KeySignature{Root: "G", Mode: "major", Sharps: 1}
var dMajor = KeySignature{Root: "D", Mode: "major", Sharps: 2}
var aMajor = KeySignature{Root: "A", Mode: "major", Sharps: 3}
var fourFour = TimeSignature{Numerator: 4, Denominator: 4}

// Catalogue is the built-in exercise set: open strings and first position
// for beginners, second position and scales for intermediate players.
var Catalogue = []Exercise{
	{
		ID:            "open-strings",
		Title:         "Open Strings",
		Description:   "Practice identifying the six open string notes: E, A, D, G, B, E",
		Category:      SingleNotes,
		Difficulty:    Beginner,
		TimeSignature: fourFour,
		KeySignature:  cMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				n("E", 4, Quarter), n("B", 3, Quarter), n("G", 3, Quarter), n("D", 3, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("A", 2, Quarter), n("E", 2, Quarter), n("A", 2, Quarter), n("D", 3, Quarter),
			}},
		},
		Position: music.OpenPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "first-position-e",
		Title:         "First Position - E String",
		Description:   "Notes on the high E string: E, F, G",
		Category:      SingleNotes,
		Difficulty:    Beginner,
		TimeSignature: fourFour,
		KeySignature:  cMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				n("E", 4, Quarter), n("F", 4, Quarter), n("G", 4, Quarter), n("F", 4, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("E", 4, Quarter), n("G", 4, Quarter), n("F", 4, Quarter), n("E", 4, Quarter),
			}},
		},
		Position: music.OpenPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "first-position-b",
		Title:         "First Position - B String",
		Description:   "Notes on the B string: B, C, D",
		Category:      SingleNotes,
		Difficulty:    Beginner,
		TimeSignature: fourFour,
		KeySignature:  cMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				n("B", 3, Quarter), n("C", 4, Quarter), n("D", 4, Quarter), n("C", 4, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("B", 3, Quarter), n("D", 4, Quarter), n("C", 4, Quarter), n("B", 3, Quarter),
			}},
		},
		Position: music.OpenPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "first-position-g",
		Title:         "First Position - G String",
		Description:   "Notes on the G string: G, A",
		Category:      SingleNotes,
		Difficulty:    Beginner,
		TimeSignature: fourFour,
		KeySignature:  cMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				n("G", 3, Quarter), n("A", 3, Quarter), n("G", 3, Quarter), n("A", 3, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("A", 3, Quarter), n("G", 3, Quarter), n("A", 3, Quarter), n("G", 3, Quarter),
			}},
		},
		Position: music.OpenPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "c-major-scale",
		Title:         "C Major Scale",
		Description:   "Practice the C major scale in first position",
		Category:      Scales,
		Difficulty:    Beginner,
		TimeSignature: fourFour,
		KeySignature:  cMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				n("C", 3, Quarter), n("D", 3, Quarter), n("E", 3, Quarter), n("F", 3, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("G", 3, Quarter), n("A", 3, Quarter), n("B", 3, Quarter), n("C", 4, Quarter),
			}},
		},
		Position: music.OpenPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "mary-lamb",
		Title:         "Mary Had a Little Lamb",
		Description:   "A simple melody using E, D, and C",
		Category:      Melodies,
		Difficulty:    Beginner,
		TimeSignature: fourFour,
		KeySignature:  cMajor,
		Tempo:         80,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				n("E", 4, Quarter), n("D", 4, Quarter), n("C", 4, Quarter), n("D", 4, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("E", 4, Quarter), n("E", 4, Quarter), n("E", 4, Half),
			}},
		},
		Position: music.OpenPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "g-major-intro",
		Title:         "G Major Introduction",
		Description:   "Practice notes in G major with F#",
		Category:      SingleNotes,
		Difficulty:    Beginner,
		TimeSignature: fourFour,
		KeySignature:  gMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				n("G", 3, Quarter), n("A", 3, Quarter), n("B", 3, Quarter), n("A", 3, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("G", 3, Quarter), note("F", 3, Quarter, music.Sharp), n("G", 3, Quarter), n("A", 3, Quarter),
			}},
		},
		Position: music.OpenPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "half-notes",
		Title:         "Half Notes",
		Description:   "Practice reading and playing half notes",
		Category:      SingleNotes,
		Difficulty:    Beginner,
		TimeSignature: fourFour,
		KeySignature:  cMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{n("C", 4, Half), n("E", 4, Half)}},
			{ID: "m2", Notes: []MusicalNote{n("G", 4, Half), n("E", 4, Half)}},
		},
		Position: music.OpenPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "mixed-rhythm",
		Title:         "Mixed Rhythm",
		Description:   "Practice quarter and half notes together",
		Category:      SingleNotes,
		Difficulty:    Beginner,
		TimeSignature: fourFour,
		KeySignature:  cMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				n("C", 4, Quarter), n("D", 4, Quarter), n("E", 4, Half),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("F", 4, Half), n("E", 4, Quarter), n("D", 4, Quarter),
			}},
		},
		Position: music.OpenPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "low-strings",
		Title:         "Low Strings",
		Description:   "Practice notes on the A and E strings",
		Category:      SingleNotes,
		Difficulty:    Beginner,
		TimeSignature: fourFour,
		KeySignature:  cMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				n("E", 2, Quarter), n("F", 2, Quarter), n("G", 2, Quarter), n("A", 2, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("A", 2, Quarter), n("B", 2, Quarter), n("C", 3, Quarter), n("A", 2, Quarter),
			}},
		},
		Position: music.OpenPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "second-position-e",
		Title:         "Second Position - E String",
		Description:   "Notes on the high E string in 2nd position: F#, G, G#, A",
		Category:      SingleNotes,
		Difficulty:    Intermediate,
		TimeSignature: fourFour,
		KeySignature:  gMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				note("F", 4, Quarter, music.Sharp), n("G", 4, Quarter), note("G", 4, Quarter, music.Sharp), n("A", 4, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("A", 4, Quarter), n("G", 4, Quarter), note("F", 4, Quarter, music.Sharp), n("G", 4, Quarter),
			}},
		},
		Position: music.SecondPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "second-position-b",
		Title:         "Second Position - B String",
		Description:   "Notes on the B string in 2nd position: C#, D, D#, E",
		Category:      SingleNotes,
		Difficulty:    Intermediate,
		TimeSignature: fourFour,
		KeySignature:  dMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				note("C", 4, Quarter, music.Sharp), n("D", 4, Quarter), note("D", 4, Quarter, music.Sharp), n("E", 4, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("E", 4, Quarter), n("D", 4, Quarter), note("C", 4, Quarter, music.Sharp), n("D", 4, Quarter),
			}},
		},
		Position: music.SecondPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "second-position-g",
		Title:         "Second Position - G String",
		Description:   "Notes on the G string in 2nd position: A, B, C",
		Category:      SingleNotes,
		Difficulty:    Intermediate,
		TimeSignature: fourFour,
		KeySignature:  cMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				n("A", 3, Quarter), n("B", 3, Quarter), n("C", 4, Quarter), n("B", 3, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("A", 3, Quarter), n("C", 4, Quarter), n("B", 3, Quarter), n("A", 3, Quarter),
			}},
		},
		Position: music.SecondPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "second-position-d",
		Title:         "Second Position - D String",
		Description:   "Notes on the D string in 2nd position: E, F, F#, G",
		Category:      SingleNotes,
		Difficulty:    Intermediate,
		TimeSignature: fourFour,
		KeySignature:  gMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				n("E", 3, Quarter), n("F", 3, Quarter), note("F", 3, Quarter, music.Sharp), n("G", 3, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("G", 3, Quarter), note("F", 3, Quarter, music.Sharp), n("E", 3, Quarter), n("F", 3, Quarter),
			}},
		},
		Position: music.SecondPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "a-major-scale-2nd",
		Title:         "A Major Scale (2nd Position)",
		Description:   "Practice the A major scale in second position",
		Category:      Scales,
		Difficulty:    Intermediate,
		TimeSignature: fourFour,
		KeySignature:  aMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				n("A", 3, Quarter), n("B", 3, Quarter), note("C", 4, Quarter, music.Sharp), n("D", 4, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("E", 4, Quarter), note("F", 4, Quarter, music.Sharp), note("G", 4, Quarter, music.Sharp), n("A", 4, Quarter),
			}},
		},
		Position: music.SecondPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "d-major-scale-2nd",
		Title:         "D Major Scale (2nd Position)",
		Description:   "Practice the D major scale in second position",
		Category:      Scales,
		Difficulty:    Intermediate,
		TimeSignature: fourFour,
		KeySignature:  dMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				n("D", 3, Quarter), n("E", 3, Quarter), note("F", 3, Quarter, music.Sharp), n("G", 3, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("A", 3, Quarter), n("B", 3, Quarter), note("C", 4, Quarter, music.Sharp), n("D", 4, Quarter),
			}},
		},
		Position: music.SecondPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "second-position-e-b",
		Title:         "Second Position - E & B Strings",
		Description:   "Moving between high E and B strings in 2nd position",
		Category:      SingleNotes,
		Difficulty:    Intermediate,
		TimeSignature: fourFour,
		KeySignature:  dMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				note("F", 4, Quarter, music.Sharp), n("D", 4, Quarter), n("G", 4, Quarter), n("E", 4, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("A", 4, Quarter), n("D", 4, Quarter), note("F", 4, Quarter, music.Sharp), n("E", 4, Quarter),
			}},
		},
		Position: music.SecondPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "second-position-three-strings",
		Title:         "Second Position - Three Strings",
		Description:   "Moving across E, B, and G strings in 2nd position",
		Category:      SingleNotes,
		Difficulty:    Intermediate,
		TimeSignature: fourFour,
		KeySignature:  gMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				n("A", 3, Quarter), n("D", 4, Quarter), n("G", 4, Quarter), n("B", 3, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("C", 4, Quarter), n("E", 4, Quarter), n("A", 4, Quarter), n("D", 4, Quarter),
			}},
		},
		Position: music.SecondPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "second-position-low",
		Title:         "Second Position - Low Strings",
		Description:   "Notes on D, A, and E strings in 2nd position",
		Category:      SingleNotes,
		Difficulty:    Intermediate,
		TimeSignature: fourFour,
		KeySignature:  gMajor,
		Tempo:         60,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				note("F", 2, Quarter, music.Sharp), n("G", 2, Quarter), n("B", 2, Quarter), n("C", 3, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("D", 3, Quarter), n("E", 3, Quarter), n("G", 3, Quarter), note("F", 3, Quarter, music.Sharp),
			}},
		},
		Position: music.SecondPosition,
		Tuning:   music.StandardTuning,
	},
	{
		ID:            "second-position-melody",
		Title:         "Second Position Melody",
		Description:   "A simple melody using notes in 2nd position",
		Category:      Melodies,
		Difficulty:    Intermediate,
		TimeSignature: fourFour,
		KeySignature:  dMajor,
		Tempo:         72,
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				n("D", 4, Quarter), n("E", 4, Quarter), note("F", 4, Quarter, music.Sharp), n("D", 4, Quarter),
			}},
			{ID: "m2", Notes: []MusicalNote{
				n("A", 4, Half), note("F", 4, Quarter, music.Sharp), n("E", 4, Quarter),
			}},
			{ID: "m3", Notes: []MusicalNote{
				n("D", 4, Quarter), note("C", 4, Quarter, music.Sharp), n("B", 3, Quarter), n("A", 3, Quarter),
			}},
			{ID: "m4", Notes: []MusicalNote{
				n("D", 4, Half), n("D", 4, Half),
			}},
		},
		Position: music.SecondPosition,
		Tuning:   music.StandardTuning,
	},
}

// ByID finds a catalogue exercise, or nil.
func ByID(id string) *Exercise {
	for i := range Catalogue {
		if Catalogue[i].ID == id {
			return &Catalogue[i]
		}
	}
	return nil
}

// ByDifficulty filters the catalogue.
func ByDifficulty(d Difficulty) []*Exercise {
	var out []*Exercise
	for i := range Catalogue {
		if Catalogue[i].Difficulty == d {
			out = append(out, &Catalogue[i])
		}
	}
	return out
}

// ByCategory filters the catalogue.
func ByCategory(c Category) []*Exercise {
	var out []*Exercise
	for i := range Catalogue {
		if Catalogue[i].Category == c {
			out = append(out, &Catalogue[i])
		}
	}
	return out
}
