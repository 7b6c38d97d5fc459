package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type tickMsg struct{ n int }

// tickModel schedules a delayed tick on every key and records deliveries.
type tickModel struct {
	delivered []int
	next      int
}

func (m tickModel) Init() tea.Cmd { return nil }

func (m tickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" {
			return m, tea.Quit
		}
		m.next++
		n := m.next
		return m, tea.Tick(30*time.Millisecond, func(time.Time) tea.Msg { return tickMsg{n: n} })
	case tickMsg:
		m.delivered = append(m.delivered, msg.n)
	}
	return m, nil
}

func (m tickModel) View() string { return "" }

func TestDriver_ParksTimersUntilFlush(t *testing.T) {
	d := New(t, tickModel{})
	d.PressKey('a')
	d.PressKey('b')

	assert.Empty(t, d.Model.(tickModel).delivered)
	assert.Equal(t, 2, d.Pending())

	d.Flush()
	assert.Equal(t, []int{1, 2}, d.Model.(tickModel).delivered)
	assert.Zero(t, d.Pending())
}

func TestDriver_QuitStopsFlush(t *testing.T) {
	d := New(t, tickModel{})
	d.PressKey('a')
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d.Flush()
	assert.Empty(t, d.Model.(tickModel).delivered)
}
