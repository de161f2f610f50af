package main

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/PatrickLevy/guitar-sight-reader/internal/exercise"
	"github.com/PatrickLevy/guitar-sight-reader/internal/judge"
)

type noteState int

const (
	stateNeutral noteState = iota
	stateCurrent
	stateAttempting
	stateCorrect
	stateIncorrect
)

// staffWidget is the notation surface: one colored cell per note in
// performance order. It consumes only the flattened note list and the
// judge's classification snapshot.
type staffWidget struct {
	widget.BaseWidget

	mu     sync.Mutex
	labels []string
	states []noteState
}

func newStaffWidget(notes []exercise.MusicalNote) *staffWidget {
	s := &staffWidget{
		labels: make([]string, len(notes)),
		states: make([]noteState, len(notes)),
	}
	for i, n := range notes {
		if n.IsRest() {
			s.labels[i] = "rest"
		} else {
			s.labels[i] = n.Pitch.String()
		}
	}
	s.ExtendBaseWidget(s)
	return s
}

// SetState recolors the cells from an arbitration snapshot. Finalized
// outcomes win over the cursor highlight.
func (s *staffWidget) SetState(snap judge.Snapshot) {
	s.mu.Lock()
	for i := range s.states {
		switch {
		case snap.Correct[i]:
			s.states[i] = stateCorrect
		case snap.Incorrect[i]:
			s.states[i] = stateIncorrect
		case i == snap.Attempting:
			s.states[i] = stateAttempting
		case i == snap.Index:
			s.states[i] = stateCurrent
		default:
			s.states[i] = stateNeutral
		}
	}
	s.mu.Unlock()
	s.Refresh()
}

func (s *staffWidget) CreateRenderer() fyne.WidgetRenderer {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := &staffRenderer{staff: s}
	for i, label := range s.labels {
		cell := canvas.NewRectangle(stateFill(s.states[i]))
		text := canvas.NewText(label, color.NRGBA{R: 20, G: 20, B: 20, A: 255})
		text.Alignment = fyne.TextAlignCenter
		text.TextStyle = fyne.TextStyle{Monospace: true}
		r.cells = append(r.cells, cell)
		r.texts = append(r.texts, text)
	}
	return r
}

func stateFill(st noteState) color.Color {
	switch st {
	case stateCurrent:
		return color.NRGBA{R: 120, G: 170, B: 240, A: 220}
	case stateAttempting:
		return color.NRGBA{R: 240, G: 160, B: 80, A: 220}
	case stateCorrect:
		return color.NRGBA{R: 110, G: 200, B: 110, A: 220}
	case stateIncorrect:
		return color.NRGBA{R: 230, G: 90, B: 90, A: 220}
	default:
		return color.NRGBA{R: 210, G: 210, B: 210, A: 160}
	}
}

type staffRenderer struct {
	staff *staffWidget
	cells []*canvas.Rectangle
	texts []*canvas.Text
}

func (r *staffRenderer) Layout(size fyne.Size) {
	count := len(r.cells)
	if count == 0 {
		return
	}
	const gap = float32(4)
	cellW := (size.Width - gap*float32(count-1)) / float32(count)
	x := float32(0)
	for i := range r.cells {
		r.cells[i].Move(fyne.NewPos(x, 0))
		r.cells[i].Resize(fyne.NewSize(cellW, size.Height))
		r.texts[i].Move(fyne.NewPos(x, size.Height/2-10))
		r.texts[i].Resize(fyne.NewSize(cellW, 20))
		x += cellW + gap
	}
}

func (r *staffRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(len(r.cells))*36, 72)
}

func (r *staffRenderer) Refresh() {
	r.staff.mu.Lock()
	for i := range r.cells {
		r.cells[i].FillColor = stateFill(r.staff.states[i])
	}
	r.staff.mu.Unlock()
	for _, c := range r.cells {
		c.Refresh()
	}
	canvas.Refresh(r.staff)
}

func (r *staffRenderer) Destroy() {}

func (r *staffRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.cells)*2)
	for i := range r.cells {
		objects = append(objects, r.cells[i], r.texts[i])
	}
	return objects
}
