package exercise

import (
	"github.com/PatrickLevy/guitar-sight-reader/internal/music"
)

// Tracker holds position and score for one run of one exercise. It never
// advances on its own: matching and advancing are separate operations so
// the caller controls when feedback has been seen.
type Tracker struct {
	notes          []MusicalNote
	index          int
	correct        int
	toleranceCents float64
}

// NewTracker flattens the exercise and starts a run at the first note.
func NewTracker(ex *Exercise) *Tracker {
	return &Tracker{
		notes:          ex.Notes(),
		toleranceCents: music.DefaultToleranceCents,
	}
}

// SetTolerance overrides the default 50-cent match window.
func (t *Tracker) SetTolerance(cents float64) {
	t.toleranceCents = cents
}

// CurrentNote returns the note under the cursor, or ok=false once the
// run is complete.
func (t *Tracker) CurrentNote() (MusicalNote, bool) {
	if t.index >= len(t.notes) {
		return MusicalNote{}, false
	}
	return t.notes[t.index], true
}

// Advance moves to the next note, saturating at the end of the run.
func (t *Tracker) Advance() {
	if t.index < len(t.notes) {
		t.index++
	}
}

// RecordMatch scores detectedFrequency against the current note's target.
// Rests and completed runs score false with no state change. A match
// bumps the correct count; the cursor is not moved.
func (t *Tracker) RecordMatch(detectedFrequency float64) bool {
	note, ok := t.CurrentNote()
	if !ok || note.IsRest() {
		return false
	}
	if !music.SameNote(detectedFrequency, note.Pitch.Frequency, t.toleranceCents) {
		return false
	}
	t.correct++
	return true
}

// Reset returns the cursor and score to zero.
func (t *Tracker) Reset() {
	t.index = 0
	t.correct = 0
}

func (t *Tracker) Index() int        { return t.index }
func (t *Tracker) Total() int        { return len(t.notes) }
func (t *Tracker) CorrectCount() int { return t.correct }

func (t *Tracker) Complete() bool {
	return t.index >= len(t.notes)
}

// Progress reports completion as a percentage, 0 for an empty exercise.
func (t *Tracker) Progress() float64 {
	if len(t.notes) == 0 {
		return 0
	}
	return 100 * float64(t.index) / float64(len(t.notes))
}
