package console

import (
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeLine(t *testing.T, m tea.Model, line string) (tea.Model, tea.Cmd) {
	t.Helper()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModelRunsCommands(t *testing.T) {
	app, _ := newTestApp(1, 2)
	var m tea.Model = newModel(app)

	m, cmd := typeLine(t, m, "insert 0 5")
	assert.Nil(t, cmd)
	assert.Equal(t, []int{5, 1, 2}, app.Vector().Values())

	view := m.View()
	assert.Contains(t, view, "[5, 1, 2]")
	assert.Contains(t, view, "len 3 | cap 4")
	assert.Contains(t, view, "> insert 0 5")
}

func TestModelShowsErrors(t *testing.T) {
	app, _ := newTestApp()
	var m tea.Model = newModel(app)

	m, _ = typeLine(t, m, "rm 3")
	assert.Contains(t, m.View(), "out of range")
}

func TestModelHistory(t *testing.T) {
	app, _ := newTestApp()
	var m tea.Model = newModel(app)

	m, _ = typeLine(t, m, "1")
	m, _ = typeLine(t, m, "2")
	m, _ = typeLine(t, m, "1")

	mm := m.(model)
	assert.Equal(t, Arr[string]{"2", "1"}, mm.history)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, "1", m.(model).input.Value())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, "2", m.(model).input.Value())
}

func TestModelConcurrentProcess(t *testing.T) {
	app, _ := newTestApp(1, 2, 3)
	var m tea.Model = newModel(app)

	const rounds = 200
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			assert.NoError(t, app.Process("rev"))
		}
	}()
	for i := 0; i < rounds; i++ {
		m, _ = typeLine(t, m, "rev")
	}
	wg.Wait()

	// an even number of reversals
	assert.Equal(t, []int{1, 2, 3}, app.Vector().Values())
	assert.Contains(t, m.View(), "> rev")
}

func TestModelQuit(t *testing.T) {
	app, _ := newTestApp()
	var m tea.Model = newModel(app)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = typeLine(t, m, "quit")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestArrRotate(t *testing.T) {
	a := Arr[int]{1, 2, 3}
	assert.Equal(t, 3, a.Rotate(false))
	assert.Equal(t, Arr[int]{3, 1, 2}, a)
	assert.Equal(t, 3, a.Rotate(true))
	assert.Equal(t, Arr[int]{1, 2, 3}, a)

	var empty Arr[int]
	assert.Zero(t, empty.Rotate(false))
}
