// Package judge decides whether incoming pitch estimates answer the
// current exercise note. It owns the attempt counting, the feedback
// delay before advancing, and the cooldown windows that keep one
// sustained string vibration from being scored more than once.
package judge

import (
	"sync"
	"time"

	"github.com/PatrickLevy/guitar-sight-reader/internal/exercise"
	"github.com/PatrickLevy/guitar-sight-reader/internal/music"
)

// Outcome is the finalized classification of one note.
type Outcome int

const (
	Unset Outcome = iota
	Correct
	Incorrect
)

// Config are the arbitration tuning values. They are global per run, not
// per note.
type Config struct {
	// ToleranceCents is the match window against the target pitch.
	ToleranceCents float64
	// MaxAttempts finalizes a note as incorrect after this many
	// mismatches. 0 means attempts alone never finalize it.
	MaxAttempts int
	// AdvanceDelay keeps the correct/incorrect feedback visible before
	// moving to the next note.
	AdvanceDelay time.Duration
	// AdvanceCooldown starts when the cursor moves so the decay of the
	// note just played is not scored against the new note.
	AdvanceCooldown time.Duration
	// MismatchCooldown suppresses duplicate attempt counts from a single
	// sustained wrong pluck.
	MismatchCooldown time.Duration
	// RingingTolerance is the frequency ratio band (1±value) treated as
	// continuation of the last matched note while a cooldown is active.
	RingingTolerance float64
}

// DefaultConfig returns the tuned arbitration defaults.
func DefaultConfig() Config {
	return Config{
		ToleranceCents:   music.DefaultToleranceCents,
		MaxAttempts:      0,
		AdvanceDelay:     800 * time.Millisecond,
		AdvanceCooldown:  150 * time.Millisecond,
		MismatchCooldown: 200 * time.Millisecond,
		RingingTolerance: 0.2,
	}
}

// Snapshot is the per-note visual state handed to the notation renderer
// after every transition: which notes are finalized correct/incorrect,
// which note (if any) is mid-attempt, and where the cursor is.
type Snapshot struct {
	Index        int
	Total        int
	CorrectCount int
	Correct      map[int]bool
	Incorrect    map[int]bool
	Attempting   int // note index mid-attempt, -1 for none
	Complete     bool
	Progress     float64
}

// Judge arbitrates pitch estimates against a Tracker. Time is always
// passed in by the caller, so every transition happens on the audio
// processing goroutine and a cancelled advance can never fire late: Skip
// and Reset clear the pending deadline before touching anything else.
type Judge struct {
	mu  sync.Mutex
	cfg Config

	tracker *exercise.Tracker
	marks   map[int]Outcome

	attempts    int
	answered    bool
	attempting  bool
	lastMatched float64

	cooldownUntil time.Time
	advanceAt     time.Time
	complete      bool

	// OnChange receives a snapshot after every state transition.
	OnChange func(Snapshot)
	// OnComplete fires once when the last note has been advanced past.
	OnComplete func(correct, total int)
}

func New(tracker *exercise.Tracker, cfg Config) *Judge {
	if cfg.ToleranceCents > 0 {
		tracker.SetTolerance(cfg.ToleranceCents)
	}
	return &Judge{
		cfg:     cfg,
		tracker: tracker,
		marks:   make(map[int]Outcome),
	}
}

// Observe feeds one frequency estimate. ok=false means no reliable pitch
// in this window; silence is the expected signal between notes and
// causes no transition. Due scheduled advances fire first.
func (j *Judge) Observe(freq float64, ok bool, now time.Time) {
	j.mu.Lock()
	changed, completed := j.tickLocked(now)

	if !j.complete && ok {
		if j.observeLocked(freq, now) {
			changed = true
			completed = completed || j.complete
		}
	}
	j.finishLocked(changed, completed)
}

// Tick fires any due scheduled advance. Call it when no pitch estimate
// is available for the current window.
func (j *Judge) Tick(now time.Time) {
	j.mu.Lock()
	changed, completed := j.tickLocked(now)
	j.finishLocked(changed, completed)
}

// Skip finalizes the current note as incorrect regardless of attempt
// count, cancels any pending advance, and moves on immediately. A note
// already finalized keeps its outcome.
func (j *Judge) Skip(now time.Time) {
	j.mu.Lock()
	if j.complete {
		j.mu.Unlock()
		return
	}
	j.advanceAt = time.Time{}
	if !j.answered {
		j.marks[j.tracker.Index()] = Incorrect
	}
	j.advanceLocked(now, false)
	j.finishLocked(true, j.complete)
}

// Reset cancels all pending state and returns the run to note zero with
// a clean score and no classifications.
func (j *Judge) Reset() {
	j.mu.Lock()
	j.advanceAt = time.Time{}
	j.cooldownUntil = time.Time{}
	j.lastMatched = 0
	j.attempts = 0
	j.answered = false
	j.attempting = false
	j.complete = false
	j.marks = make(map[int]Outcome)
	j.tracker.Reset()
	j.finishLocked(true, false)
}

// Attempts reports the mismatch count on the current note.
func (j *Judge) Attempts() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.attempts
}

// Snapshot returns the current per-note visual state.
func (j *Judge) Snapshot() Snapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.snapshotLocked()
}

// observeLocked evaluates one pitched window. Reports whether any state
// changed.
func (j *Judge) observeLocked(freq float64, now time.Time) bool {
	note, exists := j.tracker.CurrentNote()
	if !exists || note.IsRest() || j.answered {
		return false
	}

	if now.Before(j.cooldownUntil) {
		if j.lastMatched <= 0 {
			// Mismatch cooldown: everything is ignored until it expires.
			return false
		}
		ratio := freq / j.lastMatched
		if ratio >= 1-j.cfg.RingingTolerance && ratio <= 1+j.cfg.RingingTolerance {
			// Decay of the previous matched note, not a new attempt.
			return false
		}
		// A distinctly different pitch ends the cooldown right away.
		j.cooldownUntil = time.Time{}
		j.lastMatched = 0
	}

	if j.tracker.RecordMatch(freq) {
		j.lastMatched = freq
		j.finalizeLocked(Correct, now)
		return true
	}

	j.attempts++
	j.attempting = true
	// Ringing suppression never applies inside a mismatch cooldown; a
	// stale match from an earlier note must not reopen it.
	j.lastMatched = 0
	j.cooldownUntil = now.Add(j.cfg.MismatchCooldown)
	if j.cfg.MaxAttempts > 0 && j.attempts >= j.cfg.MaxAttempts {
		j.finalizeLocked(Incorrect, now)
	}
	return true
}

// finalizeLocked commits the current note's outcome and schedules the
// advance. Outcomes never change once set.
func (j *Judge) finalizeLocked(o Outcome, now time.Time) {
	j.marks[j.tracker.Index()] = o
	j.answered = true
	j.attempting = false
	j.advanceAt = now.Add(j.cfg.AdvanceDelay)
}

func (j *Judge) tickLocked(now time.Time) (changed, completed bool) {
	if j.complete || j.advanceAt.IsZero() || now.Before(j.advanceAt) {
		return false, false
	}
	j.advanceAt = time.Time{}
	j.advanceLocked(now, true)
	return true, j.complete
}

// advanceLocked moves the cursor and resets the per-note matching state.
// withCooldown starts the post-advance window that filters out the decay
// of the note just scored.
func (j *Judge) advanceLocked(now time.Time, withCooldown bool) {
	j.tracker.Advance()
	j.attempts = 0
	j.answered = false
	j.attempting = false
	if withCooldown {
		j.cooldownUntil = now.Add(j.cfg.AdvanceCooldown)
	}
	if j.tracker.Complete() {
		j.complete = true
	}
}

// finishLocked releases the lock and delivers callbacks outside it.
func (j *Judge) finishLocked(changed, completed bool) {
	var snap Snapshot
	if changed {
		snap = j.snapshotLocked()
	}
	onChange := j.OnChange
	onComplete := j.OnComplete
	correct := j.tracker.CorrectCount()
	total := j.tracker.Total()
	j.mu.Unlock()

	if changed && onChange != nil {
		onChange(snap)
	}
	if completed && onComplete != nil {
		onComplete(correct, total)
	}
}

func (j *Judge) snapshotLocked() Snapshot {
	snap := Snapshot{
		Index:        j.tracker.Index(),
		Total:        j.tracker.Total(),
		CorrectCount: j.tracker.CorrectCount(),
		Correct:      make(map[int]bool),
		Incorrect:    make(map[int]bool),
		Attempting:   -1,
		Complete:     j.complete,
		Progress:     j.tracker.Progress(),
	}
	for idx, o := range j.marks {
		switch o {
		case Correct:
			snap.Correct[idx] = true
		case Incorrect:
			snap.Incorrect[idx] = true
		}
	}
	if j.attempting {
		snap.Attempting = j.tracker.Index()
	}
	return snap
}
