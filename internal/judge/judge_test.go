package judge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/PatrickLevy/guitar-sight-reader/internal/exercise"
	"github.com/PatrickLevy/guitar-sight-reader/internal/music"
)

func pitchNote(name string, accidental music.Accidental, octave int) exercise.MusicalNote {
	p := music.NewPitch(name, accidental, octave)
	return exercise.MusicalNote{
		ID:       p.String(),
		Pitch:    &p,
		Duration: exercise.Duration{Value: exercise.Quarter},
	}
}

func restNote() exercise.MusicalNote {
	return exercise.MusicalNote{ID: "rest", Duration: exercise.Duration{Value: exercise.Quarter}}
}

func buildExercise(notes ...exercise.MusicalNote) *exercise.Exercise {
	return &exercise.Exercise{
		ID:       "test",
		Measures: []exercise.Measure{{ID: "m1", Notes: notes}},
	}
}

func newJudge(cfg Config, notes ...exercise.MusicalNote) (*Judge, *exercise.Tracker) {
	tracker := exercise.NewTracker(buildExercise(notes...))
	return New(tracker, cfg), tracker
}

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func TestCorrectRunToCompletion(t *testing.T) {
	assert := assert.New(t)
	notes := []exercise.MusicalNote{
		pitchNote("E", music.Natural, 4),
		pitchNote("A", music.Natural, 3),
		pitchNote("C", music.Natural, 3),
	}
	j, tracker := newJudge(DefaultConfig(), notes...)

	var completedCorrect, completedTotal int
	j.OnComplete = func(correct, total int) {
		completedCorrect = correct
		completedTotal = total
	}

	// Each note: play the target, let the advance fire, wait out the
	// post-advance cooldown before the next pluck.
	now := 0
	for _, note := range notes {
		j.Observe(note.Pitch.Frequency, true, at(now))
		j.Tick(at(now + 900))
		now += 1200
	}

	assert.True(tracker.Complete())
	assert.Equal(3, completedCorrect)
	assert.Equal(3, completedTotal)

	snap := j.Snapshot()
	assert.True(snap.Complete)
	assert.Equal(map[int]bool{0: true, 1: true, 2: true}, snap.Correct)
	assert.Empty(snap.Incorrect)
}

func TestSkipEveryNote(t *testing.T) {
	assert := assert.New(t)
	notes := []exercise.MusicalNote{
		pitchNote("E", music.Natural, 4),
		pitchNote("A", music.Natural, 3),
	}
	j, tracker := newJudge(DefaultConfig(), notes...)

	completions := 0
	j.OnComplete = func(correct, total int) {
		completions++
		assert.Equal(0, correct)
		assert.Equal(2, total)
	}

	j.Skip(at(0))
	j.Skip(at(100))

	assert.True(tracker.Complete())
	assert.Equal(1, completions)
	snap := j.Snapshot()
	assert.Equal(map[int]bool{0: true, 1: true}, snap.Incorrect)
	assert.Empty(snap.Correct)
}

func TestMismatchCooldownDeduplicatesAttempts(t *testing.T) {
	assert := assert.New(t)
	j, _ := newJudge(DefaultConfig(), pitchNote("E", music.Natural, 4))

	wrong := music.NewPitch("A", music.Natural, 3).Frequency
	j.Observe(wrong, true, at(0))
	assert.Equal(1, j.Attempts())

	// Same sustained wrong pluck, inside the 200ms cooldown.
	j.Observe(wrong, true, at(100))
	assert.Equal(1, j.Attempts())

	// After the cooldown it counts again.
	j.Observe(wrong, true, at(250))
	assert.Equal(2, j.Attempts())
}

func TestMismatchCooldownAfterEarlierMatch(t *testing.T) {
	assert := assert.New(t)
	notes := []exercise.MusicalNote{
		pitchNote("A", music.Natural, 4),
		pitchNote("E", music.Natural, 4),
	}
	j, tracker := newJudge(DefaultConfig(), notes...)

	// Match the first note and advance past it.
	j.Observe(440, true, at(0))
	j.Tick(at(850))
	assert.Equal(1, tracker.Index())

	// A wrong pluck on the second note, sustained across two windows
	// 100ms apart. The second window falls inside the mismatch cooldown
	// and must not count again even though an earlier note matched.
	j.Observe(220, true, at(1100))
	assert.Equal(1, j.Attempts())
	j.Observe(220, true, at(1200))
	assert.Equal(1, j.Attempts())

	// A fresh pluck after the cooldown counts.
	j.Observe(220, true, at(1400))
	assert.Equal(2, j.Attempts())
}

func TestCooldownIgnoresEverythingAfterMismatch(t *testing.T) {
	assert := assert.New(t)
	note := pitchNote("E", music.Natural, 4)
	j, tracker := newJudge(DefaultConfig(), note)

	wrong := music.NewPitch("A", music.Natural, 3).Frequency
	j.Observe(wrong, true, at(0))
	// Even the correct pitch is ignored while the mismatch cooldown runs.
	j.Observe(note.Pitch.Frequency, true, at(100))
	assert.Equal(0, tracker.CorrectCount())

	j.Observe(note.Pitch.Frequency, true, at(250))
	assert.Equal(1, tracker.CorrectCount())
}

func TestRingingSuppressionAfterMatch(t *testing.T) {
	assert := assert.New(t)
	notes := []exercise.MusicalNote{
		pitchNote("A", music.Natural, 4),
		pitchNote("A", music.Natural, 4),
	}
	j, tracker := newJudge(DefaultConfig(), notes...)

	j.Observe(440, true, at(0))
	assert.Equal(1, tracker.CorrectCount())

	// Advance fires; the post-advance cooldown begins.
	j.Tick(at(850))
	assert.Equal(1, tracker.Index())

	// The still-ringing string registers the same frequency inside the
	// cooldown: not an attempt on the second note.
	j.Observe(440, true, at(900))
	assert.Equal(1, tracker.CorrectCount())
	assert.Equal(0, j.Attempts())
	snap := j.Snapshot()
	assert.Equal(-1, snap.Attempting)
}

func TestDistinctPitchEndsCooldown(t *testing.T) {
	assert := assert.New(t)
	notes := []exercise.MusicalNote{
		pitchNote("A", music.Natural, 4),
		pitchNote("A", music.Natural, 4),
	}
	j, tracker := newJudge(DefaultConfig(), notes...)

	j.Observe(440, true, at(0))
	j.Tick(at(850))
	assert.Equal(1, tracker.Index())

	// 554 Hz is ~26% above 440: a genuinely new pluck. It ends the
	// cooldown and is evaluated against the second note immediately.
	j.Observe(554.37, true, at(900))
	assert.Equal(1, j.Attempts())
	assert.Equal(1, j.Snapshot().Attempting)
}

func TestResetClearsEverything(t *testing.T) {
	assert := assert.New(t)
	notes := []exercise.MusicalNote{
		pitchNote("A", music.Natural, 4),
		pitchNote("E", music.Natural, 4),
	}
	j, tracker := newJudge(DefaultConfig(), notes...)

	// Mid pending-advance: note finalized, advance scheduled.
	j.Observe(440, true, at(0))
	j.Reset()

	assert.Equal(0, tracker.Index())
	assert.Equal(0, tracker.CorrectCount())
	snap := j.Snapshot()
	assert.Empty(snap.Correct)
	assert.Empty(snap.Incorrect)
	assert.Equal(-1, snap.Attempting)

	// The cancelled advance never fires against the fresh run.
	j.Tick(at(900))
	assert.Equal(0, tracker.Index())
}

func TestResetMidCooldown(t *testing.T) {
	assert := assert.New(t)
	j, tracker := newJudge(DefaultConfig(), pitchNote("E", music.Natural, 4))

	wrong := music.NewPitch("A", music.Natural, 3).Frequency
	j.Observe(wrong, true, at(0))
	j.Reset()

	// With the cooldown cleared, the very next window is evaluated.
	j.Observe(music.NewPitch("E", music.Natural, 4).Frequency, true, at(50))
	assert.Equal(1, tracker.CorrectCount())
}

func TestUnlimitedAttemptsNeverFinalize(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()
	cfg.MaxAttempts = 0
	j, tracker := newJudge(cfg, pitchNote("E", music.Natural, 4))

	wrong := music.NewPitch("A", music.Natural, 3).Frequency
	for i := 0; i < 50; i++ {
		j.Observe(wrong, true, at(i*300))
	}
	assert.Equal(50, j.Attempts())
	assert.Equal(0, tracker.Index())
	snap := j.Snapshot()
	assert.Empty(snap.Incorrect)
	assert.Equal(0, snap.Attempting)

	// A correct match still finalizes it.
	j.Observe(music.NewPitch("E", music.Natural, 4).Frequency, true, at(50*300))
	assert.Equal(1, tracker.CorrectCount())
}

func TestMaxAttemptsFinalizesIncorrect(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()
	cfg.MaxAttempts = 2
	notes := []exercise.MusicalNote{
		pitchNote("E", music.Natural, 4),
		pitchNote("A", music.Natural, 3),
	}
	j, tracker := newJudge(cfg, notes...)

	wrong := music.NewPitch("C", music.Natural, 4).Frequency
	j.Observe(wrong, true, at(0))
	assert.Empty(j.Snapshot().Incorrect)

	// Second counted attempt reaches the limit.
	j.Observe(wrong, true, at(300))
	snap := j.Snapshot()
	assert.Equal(map[int]bool{0: true}, snap.Incorrect)

	// The 800ms display delay still applies before advancing.
	j.Tick(at(600))
	assert.Equal(0, tracker.Index())
	j.Tick(at(1200))
	assert.Equal(1, tracker.Index())
}

func TestRestsAreNeverEvaluated(t *testing.T) {
	assert := assert.New(t)
	notes := []exercise.MusicalNote{
		restNote(),
		pitchNote("A", music.Natural, 4),
	}
	j, tracker := newJudge(DefaultConfig(), notes...)

	j.Observe(440, true, at(0))
	assert.Equal(0, j.Attempts())
	assert.Equal(0, tracker.Index())
	assert.Equal(0, tracker.CorrectCount())

	// Skip moves past the rest, finalizing it incorrect.
	j.Skip(at(100))
	assert.Equal(1, tracker.Index())
	assert.Equal(map[int]bool{0: true}, j.Snapshot().Incorrect)
}

func TestSilenceCausesNoTransition(t *testing.T) {
	assert := assert.New(t)
	j, tracker := newJudge(DefaultConfig(), pitchNote("A", music.Natural, 4))

	for i := 0; i < 10; i++ {
		j.Observe(0, false, at(i*50))
	}
	assert.Equal(0, j.Attempts())
	assert.Equal(0, tracker.Index())
}

func TestSkipCancelsPendingAdvance(t *testing.T) {
	assert := assert.New(t)
	notes := []exercise.MusicalNote{
		pitchNote("A", music.Natural, 4),
		pitchNote("E", music.Natural, 4),
		pitchNote("C", music.Natural, 4),
	}
	j, tracker := newJudge(DefaultConfig(), notes...)

	// Finalize note 0 correct; its advance is pending.
	j.Observe(440, true, at(0))
	// Skip before it fires: exactly one advance, never two.
	j.Skip(at(100))
	assert.Equal(1, tracker.Index())
	j.Tick(at(900))
	assert.Equal(1, tracker.Index())

	// The already-finalized outcome is preserved.
	assert.Equal(map[int]bool{0: true}, j.Snapshot().Correct)
}

func TestOutcomeNeverChangesOnceFinalized(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()
	cfg.MaxAttempts = 1
	notes := []exercise.MusicalNote{
		pitchNote("A", music.Natural, 4),
		pitchNote("E", music.Natural, 4),
	}
	j, _ := newJudge(cfg, notes...)

	wrong := music.NewPitch("C", music.Natural, 4).Frequency
	j.Observe(wrong, true, at(0))
	assert.Equal(map[int]bool{0: true}, j.Snapshot().Incorrect)

	// Playing the right pitch before the advance fires cannot flip it.
	j.Observe(440, true, at(300))
	snap := j.Snapshot()
	assert.Equal(map[int]bool{0: true}, snap.Incorrect)
	assert.Empty(snap.Correct)
}

func TestOnChangeDeliversSnapshots(t *testing.T) {
	assert := assert.New(t)
	j, _ := newJudge(DefaultConfig(), pitchNote("A", music.Natural, 4))

	var snaps []Snapshot
	j.OnChange = func(s Snapshot) { snaps = append(snaps, s) }

	j.Observe(440, true, at(0))
	if assert.NotEmpty(snaps) {
		last := snaps[len(snaps)-1]
		assert.True(last.Correct[0])
		assert.Equal(1, last.CorrectCount)
	}
}
