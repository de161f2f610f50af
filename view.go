package main

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
	"github.com/bep/debounce"

	"github.com/PatrickLevy/guitar-sight-reader/internal/capture"
	"github.com/PatrickLevy/guitar-sight-reader/internal/exercise"
	"github.com/PatrickLevy/guitar-sight-reader/internal/judge"
	"github.com/PatrickLevy/guitar-sight-reader/internal/music"
	"github.com/PatrickLevy/guitar-sight-reader/internal/pitch"
)

const systemDefaultOption = "System Default"

// exerciseView runs one exercise: capture feeds the detector chain,
// whose estimates drive the judge, whose snapshots color the staff.
type exerciseView struct {
	ui      *trainerUI
	ex      *exercise.Exercise
	tracker *exercise.Tracker
	arbiter *judge.Judge
	session *capture.Session
	staff   *staffWidget

	// mu guards the detector chain and the listening/device state, which
	// are touched from the UI goroutine, the capture goroutine and the
	// debounce timer goroutine. It is never held across session calls.
	mu        sync.Mutex
	chain     *pitch.Chain
	chainRate float64
	listening bool
	selected  string

	statusText binding.String
	freqText   binding.String
	noteText   binding.String
	targetText binding.String
	scoreText  binding.String
	progress   binding.Float

	listenBtn *widget.Button
	debounced func(func())
}

func newExerciseView(ui *trainerUI, ex *exercise.Exercise) *exerciseView {
	v := &exerciseView{
		ui:         ui,
		ex:         ex,
		tracker:    exercise.NewTracker(ex),
		statusText: binding.NewString(),
		freqText:   binding.NewString(),
		noteText:   binding.NewString(),
		targetText: binding.NewString(),
		scoreText:  binding.NewString(),
		progress:   binding.NewFloat(),
		debounced:  debounce.New(300 * time.Millisecond),
	}
	v.arbiter = judge.New(v.tracker, judge.DefaultConfig())
	v.arbiter.OnChange = v.handleChange
	v.arbiter.OnComplete = v.handleComplete
	v.session = capture.NewSession(ui.audio, v.handleWindow)
	v.staff = newStaffWidget(ex.Notes())

	_ = v.statusText.Set("Press Listen to start")
	_ = v.freqText.Set("-- Hz")
	_ = v.noteText.Set("--")
	_ = v.scoreText.Set("Score: 0 / 0 correct")
	v.updateTarget(0)
	v.staff.SetState(v.arbiter.Snapshot())
	return v
}

// handleWindow runs on the capture session's processing goroutine: one
// estimate and at most one arbitration decision per window.
func (v *exerciseView) handleWindow(samples []float32, sampleRate float64) {
	v.mu.Lock()
	if v.chain == nil || v.chainRate != sampleRate {
		v.chain = pitch.NewChain(pitch.DefaultConfig(sampleRate))
		v.chainRate = sampleRate
	}
	chain := v.chain
	v.mu.Unlock()

	freq, _, ok := chain.Analyze(samples)
	v.arbiter.Observe(freq, ok, time.Now())

	if ok {
		name, _ := music.FrequencyToNote(freq)
		_ = v.freqText.Set(fmt.Sprintf("%.1f Hz", freq))
		_ = v.noteText.Set(name)
	} else {
		_ = v.freqText.Set("-- Hz")
		_ = v.noteText.Set("--")
	}
}

func (v *exerciseView) handleChange(snap judge.Snapshot) {
	v.staff.SetState(snap)
	_ = v.progress.Set(snap.Progress / 100)
	_ = v.scoreText.Set(fmt.Sprintf("Score: %d / %d correct", snap.CorrectCount, snap.Index))
	v.updateTarget(snap.Index)
}

func (v *exerciseView) handleComplete(correct, total int) {
	v.session.Stop()
	v.ui.showComplete(v.ex, correct, total)
}

func (v *exerciseView) updateTarget(index int) {
	notes := v.ex.Notes()
	if index >= len(notes) {
		_ = v.targetText.Set("Done")
		return
	}
	note := notes[index]
	if note.IsRest() {
		_ = v.targetText.Set("Target: rest (skip to continue)")
		return
	}
	text := fmt.Sprintf("Target: %s", note.Pitch)
	if positions := music.PositionsInConstraint(*note.Pitch, v.ex.Position, v.ex.Tuning); len(positions) > 0 {
		text += fmt.Sprintf("  (string %d, fret %d)", positions[0].String, positions[0].Fret)
	}
	_ = v.targetText.Set(text)
}

// toggleListen starts or stops the capture session on the selected
// device. Start failures leave the session stopped; the user retries.
func (v *exerciseView) toggleListen() {
	v.mu.Lock()
	listening := v.listening
	selected := v.selected
	v.mu.Unlock()

	if listening {
		v.session.Stop()
		v.mu.Lock()
		v.listening = false
		v.mu.Unlock()
		v.listenBtn.SetText("Listen")
		_ = v.statusText.Set("Stopped")
		return
	}
	if err := v.session.Start(selected); err != nil {
		_ = v.statusText.Set(fmt.Sprintf("Error: %v", err))
		return
	}
	v.mu.Lock()
	v.listening = true
	v.mu.Unlock()
	v.listenBtn.SetText("Stop")
	label := selected
	if label == "" {
		label = systemDefaultOption
	}
	_ = v.statusText.Set(fmt.Sprintf("Listening on %s", label))
}

// selectDevice persists the choice and, while listening, restarts the
// capture on the new device. Restarts are debounced so scrolling the
// selector doesn't thrash the hardware.
func (v *exerciseView) selectDevice(name string) {
	if name == systemDefaultOption {
		name = ""
	}
	v.mu.Lock()
	v.selected = name
	listening := v.listening
	v.mu.Unlock()
	capture.SavePreferredDevice(v.ui.app.Preferences(), name)
	if !listening {
		return
	}
	v.debounced(func() {
		v.mu.Lock()
		selected := v.selected
		v.mu.Unlock()
		if err := v.session.Start(selected); err != nil {
			// Previous device is already released; progress is kept.
			v.mu.Lock()
			v.listening = false
			v.mu.Unlock()
			_ = v.statusText.Set(fmt.Sprintf("Device switch failed: %v", err))
			return
		}
		label := selected
		if label == "" {
			label = systemDefaultOption
		}
		_ = v.statusText.Set(fmt.Sprintf("Listening on %s", label))
	})
}

func (v *exerciseView) content() fyne.CanvasObject {
	options := []string{systemDefaultOption}
	if devices, err := v.session.Devices(); err == nil {
		for _, d := range devices {
			options = append(options, d.Name)
		}
	} else {
		_ = v.statusText.Set(fmt.Sprintf("Error: %v", err))
	}

	deviceSelect := widget.NewSelect(options, v.selectDevice)
	deviceSelect.PlaceHolder = "Input device"
	saved := capture.LoadPreferredDevice(v.ui.app.Preferences())
	if saved != "" && indexOf(options, saved) >= 0 {
		deviceSelect.SetSelected(saved)
	} else {
		deviceSelect.SetSelected(systemDefaultOption)
	}

	v.listenBtn = widget.NewButton("Listen", v.toggleListen)
	skipBtn := widget.NewButton("Skip Note", func() {
		v.arbiter.Skip(time.Now())
	})
	restartBtn := widget.NewButton("Restart", func() {
		v.arbiter.Reset()
	})
	backBtn := widget.NewButton("Back", func() {
		v.ui.showHome()
	})

	header := container.NewBorder(nil, nil, backBtn,
		widget.NewLabelWithData(v.scoreText),
		widget.NewLabelWithStyle(v.ex.Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))

	detected := container.NewGridWithColumns(3,
		widget.NewLabelWithData(v.targetText),
		widget.NewLabelWithData(v.noteText),
		widget.NewLabelWithData(v.freqText))

	controls := container.NewHBox(v.listenBtn, skipBtn, restartBtn)

	return container.NewVBox(
		header,
		widget.NewProgressBarWithData(v.progress),
		v.staff,
		detected,
		deviceSelect,
		container.NewCenter(controls),
		widget.NewLabelWithData(v.statusText),
	)
}

func (v *exerciseView) teardown() {
	v.session.Stop()
}

func indexOf(list []string, target string) int {
	for i, s := range list {
		if s == target {
			return i
		}
	}
	return -1
}
