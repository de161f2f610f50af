// Package exercise holds the sight-reading exercise catalogue and the
// per-run progress tracker.
package exercise

import (
	"github.com/PatrickLevy/guitar-sight-reader/internal/music"
)

type Category string

const (
	SingleNotes Category = "single-notes"
	Scales      Category = "scales"
	Intervals   Category = "intervals"
	Melodies    Category = "melodies"
)

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

type DurationValue string

const (
	Whole     DurationValue = "whole"
	Half      DurationValue = "half"
	Quarter   DurationValue = "quarter"
	Eighth    DurationValue = "eighth"
	Sixteenth DurationValue = "sixteenth"
)

// Duration is a note value plus dot count.
type Duration struct {
	Value DurationValue
	Dots  int
}

// MusicalNote is one notated note or rest. A nil Pitch marks a rest;
// rests never participate in pitch matching.
type MusicalNote struct {
	ID       string
	Pitch    *music.Pitch
	Duration Duration
}

func (n MusicalNote) IsRest() bool {
	return n.Pitch == nil
}

type TimeSignature struct {
	Numerator   int
	Denominator int
}

type KeySignature struct {
	Root   string
	Mode   string
	Sharps int
	Flats  int
}

// Measure is one bar of notes in performance order.
type Measure struct {
	ID    string
	Notes []MusicalNote
}

// Exercise is an immutable sequence of measures with its musical and
// guitar-specific metadata.
type Exercise struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Difficulty  Difficulty

	TimeSignature TimeSignature
	KeySignature  KeySignature
	Tempo         int
	Measures      []Measure

	Position music.PositionConstraint
	Tuning   music.Tuning
}

// Notes flattens the measures into the single performance-order note
// sequence every other component works with.
func (e *Exercise) Notes() []MusicalNote {
	var notes []MusicalNote
	for _, m := range e.Measures {
		notes = append(notes, m.Notes...)
	}
	return notes
}
