package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogueHasUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, ex := range Catalogue {
		assert.False(t, seen[ex.ID], "duplicate exercise id %s", ex.ID)
		seen[ex.ID] = true
	}
	assert.Len(t, Catalogue, 20)
}

func TestCatalogueNotesAreInGuitarRange(t *testing.T) {
	for _, ex := range Catalogue {
		for _, note := range ex.Notes() {
			if note.IsRest() {
				continue
			}
			f := note.Pitch.Frequency
			assert.GreaterOrEqual(t, f, 60.0, "%s: %s too low", ex.ID, note.Pitch)
			assert.LessOrEqual(t, f, 1400.0, "%s: %s too high", ex.ID, note.Pitch)
		}
	}
}

func TestNotesFlattenInPerformanceOrder(t *testing.T) {
	assert := assert.New(t)
	ex := ByID("open-strings")
	if !assert.NotNil(ex) {
		return
	}
	notes := ex.Notes()
	assert.Len(notes, 8)
	assert.Equal("E4", notes[0].Pitch.String())
	assert.Equal("D3", notes[7].Pitch.String())
}

func TestByID(t *testing.T) {
	assert.NotNil(t, ByID("c-major-scale"))
	assert.Nil(t, ByID("no-such-exercise"))
}

func TestByDifficultyAndCategory(t *testing.T) {
	assert := assert.New(t)
	beginner := ByDifficulty(Beginner)
	intermediate := ByDifficulty(Intermediate)
	assert.Len(beginner, 10)
	assert.Len(intermediate, 10)

	melodies := ByCategory(Melodies)
	assert.Len(melodies, 2)
	for _, ex := range melodies {
		assert.Equal(Melodies, ex.Category)
	}
}

func TestNoteIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, ex := range Catalogue {
		for _, note := range ex.Notes() {
			assert.False(t, seen[note.ID], "duplicate note id in %s", ex.ID)
			seen[note.ID] = true
		}
	}
}
