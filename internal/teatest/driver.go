// Package teatest drives a bubbletea model synchronously in tests.
//
// The Driver calls Update directly and runs each returned Cmd right away.
// A Cmd that has not produced its message within a few milliseconds is
// treated as a timer (tea.Tick, spinner frames) and parked; Flush later
// waits for the parked Cmds and delivers their messages in the order they
// were issued. Tests therefore decide when deferred work such as a staged
// reorder commit lands.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds Cmd chains and Flush rounds.
const MaxDrainDepth = 100

const (
	// Message factories and store calls return in microseconds; timers
	// block for their whole delay. A tea.Tick shorter than this runs
	// inline and is never parked.
	cmdTimeout = 10 * time.Millisecond

	flushTimeout = 5 * time.Second
)

// Driver holds the model under test.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg has been delivered. Further input
	// and parked Cmds are ignored, as tea.Program would.
	Quitting bool

	parked []<-chan tea.Msg
}

type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps model. Call DrainInit to run its Init Cmd.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init(), 0)
}

// Send delivers msg and runs whatever Cmds follow from it.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.deliver(msg, 0)
}

func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressSpace() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyDown})
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

func (d *Driver) View() string {
	return d.Model.View()
}

// Pending is the number of parked Cmds not yet flushed.
func (d *Driver) Pending() int {
	return len(d.parked)
}

// FlushOnce waits for each Cmd parked so far, oldest first, and delivers
// its message. Cmds parked along the way wait for the next round.
func (d *Driver) FlushOnce() {
	d.T.Helper()
	round := d.parked
	d.parked = nil
	for _, ch := range round {
		if d.Quitting {
			return
		}
		select {
		case msg := <-ch:
			d.deliver(msg, 0)
		case <-time.After(flushTimeout):
			d.T.Fatalf("teatest: parked command still running after %s", flushTimeout)
		}
	}
}

// Flush runs FlushOnce until nothing is parked.
func (d *Driver) Flush() {
	d.T.Helper()
	for i := 0; i < MaxDrainDepth && len(d.parked) > 0 && !d.Quitting; i++ {
		d.FlushOnce()
	}
	if len(d.parked) > 0 && !d.Quitting {
		d.T.Logf("teatest: %d commands still parked after %d rounds", len(d.parked), MaxDrainDepth)
	}
}

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: command chain deeper than %d, dropping", MaxDrainDepth)
		return
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		d.deliver(msg, depth)
	case <-time.After(cmdTimeout):
		d.parked = append(d.parked, ch)
	}
}

func (d *Driver) deliver(msg tea.Msg, depth int) {
	d.T.Helper()
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, cmd := range msg {
			d.run(cmd, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
		return
	}
	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	d.run(next, depth+1)
}
