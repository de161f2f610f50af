// Guitar sight-reading trainer: renders an exercise, listens to the
// instrument, and judges each played note against the notation.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/gen2brain/malgo"

	"github.com/PatrickLevy/guitar-sight-reader/internal/exercise"
)

func main() {
	runtime.LockOSThread()
	audio, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		log.Printf("malgo: %s", message)
	})
	if err != nil {
		log.Fatalf("malgo init failed: %v", err)
	}
	defer audio.Free()
	defer audio.Uninit()

	a := app.NewWithID("guitar-sight-reader")
	w := a.NewWindow("Guitar Sight Reader")
	w.Resize(fyne.NewSize(860, 560))

	ui := &trainerUI{app: a, win: w, audio: audio}
	ui.showHome()

	// Stop audio cleanly on window close or Ctrl+C.
	w.SetCloseIntercept(func() {
		ui.shutdown()
		a.Quit()
	})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		ui.shutdown()
		w.Close()
	}()

	w.ShowAndRun()
}

// trainerUI switches the window between the home, exercise and
// completion screens.
type trainerUI struct {
	app   fyne.App
	win   fyne.Window
	audio *malgo.AllocatedContext
	view  *exerciseView
}

func (ui *trainerUI) showHome() {
	ui.teardownView()

	sections := container.NewVBox(
		widget.NewLabelWithStyle("Guitar Sight Reader", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Pick an exercise and play along."),
	)
	for _, difficulty := range []exercise.Difficulty{exercise.Beginner, exercise.Intermediate, exercise.Advanced} {
		group := exercise.ByDifficulty(difficulty)
		if len(group) == 0 {
			continue
		}
		sections.Add(widget.NewLabelWithStyle(string(difficulty), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		for _, ex := range group {
			ex := ex
			sections.Add(widget.NewCard(ex.Title, ex.Description, widget.NewButton("Start", func() {
				ui.showExercise(ex)
			})))
		}
	}
	ui.win.SetContent(container.NewVScroll(sections))
}

func (ui *trainerUI) showExercise(ex *exercise.Exercise) {
	ui.teardownView()
	ui.view = newExerciseView(ui, ex)
	ui.win.SetContent(ui.view.content())
}

func (ui *trainerUI) showComplete(ex *exercise.Exercise, correct, total int) {
	ui.teardownView()

	pct := 0
	if total > 0 {
		pct = int(float64(correct)/float64(total)*100 + 0.5)
	}
	score := widget.NewLabelWithStyle(
		fmt.Sprintf("%d%%  (%d of %d notes correct)", pct, correct, total),
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true, Monospace: true})

	ui.win.SetContent(container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle(completionMessage(pct), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle(fmt.Sprintf("You completed %q", ex.Title), fyne.TextAlignCenter, fyne.TextStyle{}),
		score,
		widget.NewButton("Try Again", func() { ui.showExercise(ex) }),
		widget.NewButton("Back to Exercises", func() { ui.showHome() }),
	)))
}

// completionMessage mirrors the encouragement tiers shown on the score
// screen.
func completionMessage(pct int) string {
	switch {
	case pct == 100:
		return "Perfect!"
	case pct >= 80:
		return "Great job!"
	case pct >= 60:
		return "Good effort!"
	default:
		return "Keep practicing!"
	}
}

func (ui *trainerUI) teardownView() {
	if ui.view != nil {
		ui.view.teardown()
		ui.view = nil
	}
}

func (ui *trainerUI) shutdown() {
	ui.teardownView()
}
