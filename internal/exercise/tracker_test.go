package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PatrickLevy/guitar-sight-reader/internal/music"
)

func twoNoteExercise() *Exercise {
	return &Exercise{
		ID: "test",
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				n("A", 4, Quarter),
				n("E", 2, Quarter),
			}},
		},
	}
}

func restExercise() *Exercise {
	return &Exercise{
		ID: "test-rest",
		Measures: []Measure{
			{ID: "m1", Notes: []MusicalNote{
				{ID: "r1", Duration: Duration{Value: Quarter}},
				n("A", 4, Quarter),
			}},
		},
	}
}

func TestTrackerWalksNotesInOrder(t *testing.T) {
	assert := assert.New(t)
	tr := NewTracker(twoNoteExercise())

	note, ok := tr.CurrentNote()
	assert.True(ok)
	assert.Equal("A4", note.Pitch.String())

	tr.Advance()
	note, ok = tr.CurrentNote()
	assert.True(ok)
	assert.Equal("E2", note.Pitch.String())

	tr.Advance()
	_, ok = tr.CurrentNote()
	assert.False(ok)
	assert.True(tr.Complete())
}

func TestTrackerAdvanceSaturates(t *testing.T) {
	tr := NewTracker(twoNoteExercise())
	for i := 0; i < 10; i++ {
		tr.Advance()
	}
	assert.Equal(t, 2, tr.Index())
}

func TestTrackerRecordMatch(t *testing.T) {
	assert := assert.New(t)
	tr := NewTracker(twoNoteExercise())

	assert.True(tr.RecordMatch(440.0))
	assert.Equal(1, tr.CorrectCount())
	// Matching does not move the cursor.
	assert.Equal(0, tr.Index())

	assert.False(tr.RecordMatch(523.25))
	assert.Equal(1, tr.CorrectCount())
}

func TestTrackerRecordMatchOnRest(t *testing.T) {
	tr := NewTracker(restExercise())
	assert.False(t, tr.RecordMatch(440.0))
	assert.Equal(t, 0, tr.CorrectCount())
}

func TestTrackerRecordMatchAfterComplete(t *testing.T) {
	tr := NewTracker(twoNoteExercise())
	tr.Advance()
	tr.Advance()
	assert.False(t, tr.RecordMatch(440.0))
}

func TestTrackerReset(t *testing.T) {
	assert := assert.New(t)
	tr := NewTracker(twoNoteExercise())
	tr.RecordMatch(440.0)
	tr.Advance()
	tr.Reset()
	assert.Equal(0, tr.Index())
	assert.Equal(0, tr.CorrectCount())
}

func TestTrackerProgress(t *testing.T) {
	assert := assert.New(t)
	tr := NewTracker(twoNoteExercise())
	assert.InDelta(0.0, tr.Progress(), 0.001)
	tr.Advance()
	assert.InDelta(50.0, tr.Progress(), 0.001)
	tr.Advance()
	assert.InDelta(100.0, tr.Progress(), 0.001)

	empty := NewTracker(&Exercise{ID: "empty"})
	assert.InDelta(0.0, empty.Progress(), 0.001)
}

func TestTrackerToleranceOverride(t *testing.T) {
	tr := NewTracker(twoNoteExercise())
	tr.SetTolerance(10)
	// 25 cents sharp of A4: outside a 10-cent window.
	assert.False(t, tr.RecordMatch(440.0*1.0145))
	assert.True(t, tr.RecordMatch(music.MidiToFrequency(69)))
}
