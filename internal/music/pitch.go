// Package music converts between frequencies, MIDI numbers and note names,
// and decides whether two frequencies are close enough to count as the
// same note.
package music

import (
	"fmt"
	"math"
)

// Accidental modifies a natural note letter by one semitone.
type Accidental int

const (
	Natural Accidental = iota
	Sharp
	Flat
)

// DefaultToleranceCents is a quarter tone: wide enough to forgive slight
// detuning and detector jitter, narrow enough that adjacent semitones
// (100 cents apart) never collide.
const DefaultToleranceCents = 50.0

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var letterSemitones = map[string]int{
	"C": 0,
	"D": 2,
	"E": 4,
	"F": 5,
	"G": 7,
	"A": 9,
	"B": 11,
}

// Pitch is a frequency with its derived musical identity. Immutable once
// built by NewPitch.
type Pitch struct {
	Name       string
	Accidental Accidental
	Octave     int
	MidiNumber int
	Frequency  float64
}

// NewPitch builds a Pitch from a note letter (C..B), accidental and octave.
// The frequency is rounded to two decimals, matching how the exercise
// catalogue stores targets.
func NewPitch(name string, accidental Accidental, octave int) Pitch {
	semitone := letterSemitones[name]
	switch accidental {
	case Sharp:
		semitone++
	case Flat:
		semitone--
	}
	midi := (octave+1)*12 + semitone
	freq := math.Round(MidiToFrequency(midi)*100) / 100
	return Pitch{
		Name:       name,
		Accidental: accidental,
		Octave:     octave,
		MidiNumber: midi,
		Frequency:  freq,
	}
}

// String renders the pitch as e.g. "F#4". Flats are spelled with "b".
func (p Pitch) String() string {
	suffix := ""
	switch p.Accidental {
	case Sharp:
		suffix = "#"
	case Flat:
		suffix = "b"
	}
	return fmt.Sprintf("%s%s%d", p.Name, suffix, p.Octave)
}

// MidiToFrequency returns the equal-tempered frequency of a MIDI note
// number, A4 (69) = 440 Hz.
func MidiToFrequency(midi int) float64 {
	return 440.0 * math.Pow(2, float64(midi-69)/12)
}

// FrequencyToNote names the chromatic note closest to freq (sharps, never
// flats) and reports the deviation from it in cents.
func FrequencyToNote(freq float64) (string, float64) {
	if freq <= 0 {
		return "", 0
	}
	n := 12 * math.Log2(freq/440.0)
	midi := int(math.Round(n)) + 69
	octave := midi/12 - 1
	name := noteNames[((midi%12)+12)%12]
	target := MidiToFrequency(midi)
	cents := 1200 * math.Log2(freq/target)
	return fmt.Sprintf("%s%d", name, octave), cents
}

// Cents returns the signed interval from target to detected in cents.
func Cents(detected, target float64) float64 {
	return 1200 * math.Log2(detected/target)
}

// SameNote reports whether detected lies within toleranceCents of target.
// Exactly toleranceCents away still matches.
func SameNote(detected, target, toleranceCents float64) bool {
	if detected <= 0 || target <= 0 {
		return false
	}
	return math.Abs(Cents(detected, target)) <= toleranceCents
}
