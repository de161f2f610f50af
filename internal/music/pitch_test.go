package music

import (
	"math"
	"testing"
)

func TestFrequencyToNoteA4(t *testing.T) {
	name, cents := FrequencyToNote(440.0)
	if name != "A4" {
		t.Fatalf("expected A4, got %s", name)
	}
	if math.Abs(cents) > 0.1 {
		t.Fatalf("expected cents near 0, got %.3f", cents)
	}
}

func TestFrequencyToNoteA3(t *testing.T) {
	name, _ := FrequencyToNote(220.0)
	if name != "A3" {
		t.Fatalf("expected A3, got %s", name)
	}
}

func TestFrequencyToNoteLowE(t *testing.T) {
	name, _ := FrequencyToNote(82.41)
	if name != "E2" {
		t.Fatalf("expected E2, got %s", name)
	}
}

func TestFrequencyToNoteSharps(t *testing.T) {
	// F#4 = 369.99 Hz; must spell with a sharp, never Gb.
	name, _ := FrequencyToNote(369.99)
	if name != "F#4" {
		t.Fatalf("expected F#4, got %s", name)
	}
}

func TestNewPitch(t *testing.T) {
	p := NewPitch("E", Natural, 2)
	if p.MidiNumber != 40 {
		t.Fatalf("expected MIDI 40 for E2, got %d", p.MidiNumber)
	}
	if math.Abs(p.Frequency-82.41) > 0.01 {
		t.Fatalf("expected ~82.41Hz for E2, got %.3f", p.Frequency)
	}
	if p.String() != "E2" {
		t.Fatalf("expected E2, got %s", p.String())
	}

	fs := NewPitch("F", Sharp, 4)
	if fs.MidiNumber != 66 {
		t.Fatalf("expected MIDI 66 for F#4, got %d", fs.MidiNumber)
	}
	if fs.String() != "F#4" {
		t.Fatalf("expected F#4, got %s", fs.String())
	}
}

func TestSameNoteWithinTolerance(t *testing.T) {
	target := 440.0
	// 49 cents sharp: still the same note.
	detuned := target * math.Pow(2, 49.0/1200)
	if !SameNote(detuned, target, DefaultToleranceCents) {
		t.Fatalf("expected 49 cents to match")
	}
}

func TestSameNoteBoundaryInclusive(t *testing.T) {
	target := 440.0
	boundary := target * math.Pow(2, 50.0/1200)
	if !SameNote(boundary, target, DefaultToleranceCents) {
		t.Fatalf("expected exactly 50 cents to match")
	}
}

func TestSameNoteRejectsSemitone(t *testing.T) {
	target := 440.0
	semitone := target * math.Pow(2, 100.0/1200)
	if SameNote(semitone, target, DefaultToleranceCents) {
		t.Fatalf("expected a full semitone to be rejected")
	}
	if SameNote(target, semitone, DefaultToleranceCents) {
		t.Fatalf("expected a full semitone flat to be rejected")
	}
}

func TestSameNoteInvalidInputs(t *testing.T) {
	if SameNote(0, 440, DefaultToleranceCents) {
		t.Fatalf("expected zero frequency to never match")
	}
	if SameNote(440, 0, DefaultToleranceCents) {
		t.Fatalf("expected zero target to never match")
	}
}
