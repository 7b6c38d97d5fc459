package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/agendadesk/internal/agenda"
	"github.com/alexanderramin/agendadesk/internal/cli/formatter"
	"github.com/alexanderramin/agendadesk/internal/domain"
	"github.com/alexanderramin/agendadesk/internal/source"
	"github.com/alexanderramin/agendadesk/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDriver wraps teatest.Driver with dashboard-specific inspection methods.
type TestDriver struct {
	*teatest.Driver
}

// tuiReorderDelay must stay well above the driver's inline window so the
// commit tick is parked and only lands on Flush.
const tuiReorderDelay = 50 * time.Millisecond

// NewTestDriver builds the TUI for src, sets terminal size, and drains
// Init() so the first load has landed.
func NewTestDriver(t *testing.T, app *App, src source.Source) *TestDriver {
	t.Helper()
	app.ReorderDelay = max(app.ReorderDelay, tuiReorderDelay)
	d := teatest.New(t, newAppModel(app, src), teatest.WithSize(120, 40))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) Store() *agenda.Store {
	return d.appModel().state.Store
}

func (d *TestDriver) Dashboard() *dashboardView {
	return d.appModel().viewStack[0].(*dashboardView)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// Titles returns the committed item titles in order.
func (d *TestDriver) Titles() []string {
	return titles(d.Store().Snapshot().Items)
}

func (d *TestDriver) assertOrdersContiguous() {
	d.T.Helper()
	for i, it := range d.Store().Snapshot().Items {
		assert.Equal(d.T, i+1, it.Order, "item %q", it.Title)
	}
}

func fixtureDriver(t *testing.T) *TestDriver {
	t.Helper()
	return NewTestDriver(t, testApp(t), source.NewFixtureSource())
}

func TestTUI_LoadsFixture(t *testing.T) {
	d := fixtureDriver(t)

	assert.Equal(t, 8, d.Store().Len())
	view := d.View()
	assert.Contains(t, view, "Executive Leadership Meeting")
	assert.Contains(t, view, "[fixture]")
	assert.Contains(t, view, "Welcome and Introductions")
	assert.Contains(t, view, "Lunch 12:00 - 13:00")
	assert.Contains(t, view, "▸")
	assert.Contains(t, view, "space: pick/drop")
}

func TestTUI_MoveDownCommitsAfterDelay(t *testing.T) {
	d := fixtureDriver(t)

	d.PressKey('J')
	require.True(t, d.Store().Busy(), "commit must wait for Flush")
	assert.Positive(t, d.Pending())
	assert.Contains(t, d.View(), "Updating order...")
	assert.Equal(t, "Welcome and Introductions", d.Titles()[0], "not visible before commit")

	d.Flush()
	assert.False(t, d.Store().Busy())
	assert.Equal(t, "Quarterly Financial Review", d.Titles()[0])
	assert.Equal(t, "Welcome and Introductions", d.Titles()[1])
	assert.Equal(t, 1, d.Dashboard().cursor, "cursor follows the moved item")
	assert.NotContains(t, d.View(), "Updating order...")
	d.assertOrdersContiguous()
}

func TestTUI_MoveUpAtTopIsIgnored(t *testing.T) {
	d := fixtureDriver(t)

	d.PressKey('K')
	assert.False(t, d.Store().Busy())
	assert.Zero(t, d.Pending())
}

func TestTUI_PickAndDrop(t *testing.T) {
	d := fixtureDriver(t)

	d.PressSpace()
	assert.Equal(t, 0, d.Dashboard().picked)
	assert.Contains(t, d.View(), "◆")

	d.PressDown()
	d.PressDown()
	d.PressDown()
	d.PressSpace()
	d.Flush()

	assert.Equal(t, -1, d.Dashboard().picked)
	assert.Equal(t, "Welcome and Introductions", d.Titles()[3])
	assert.Equal(t, "Quarterly Financial Review", d.Titles()[0])
	d.assertOrdersContiguous()
}

func TestTUI_DropInPlaceAndCancel(t *testing.T) {
	d := fixtureDriver(t)

	d.PressSpace()
	d.PressSpace()
	assert.False(t, d.Store().Busy())

	d.PressSpace()
	d.PressEsc()
	assert.Equal(t, -1, d.Dashboard().picked)
	assert.Zero(t, d.Pending())
}

func TestTUI_SecondGestureRefusedWhileBusy(t *testing.T) {
	d := fixtureDriver(t)

	d.PressKey('J')
	require.True(t, d.Store().Busy())
	d.PressKey('J')
	assert.Contains(t, d.View(), "Updating order...")
	d.Flush()

	assert.Equal(t, []string{"Quarterly Financial Review", "Welcome and Introductions", "Product Roadmap Update"}, d.Titles()[:3])
}

func TestTUI_ReloadDiscardsPendingReorder(t *testing.T) {
	d := fixtureDriver(t)

	d.PressKey('J')
	d.PressKey('r')
	d.Flush()

	assert.False(t, d.Store().Busy())
	assert.Equal(t, "Welcome and Introductions", d.Titles()[0])
	d.assertOrdersContiguous()
}

func TestTUI_QuitDropsPendingReorder(t *testing.T) {
	d := fixtureDriver(t)
	store := d.Store()

	d.PressKey('J')
	require.True(t, store.Busy())
	d.PressKey('q')
	assert.True(t, d.Quitting)

	snap := store.Snapshot()
	assert.False(t, snap.Busy)
	assert.False(t, store.Commit(snap.Generation))
	assert.Equal(t, "Welcome and Introductions", snap.Items[0].Title)
}

func TestTUI_Postpone(t *testing.T) {
	d := fixtureDriver(t)
	postponeAt := func(i int) domain.Postpone { return d.Store().Snapshot().Items[i].Postpone }

	d.PressKey('y')
	assert.Equal(t, domain.PostponeYes, postponeAt(0))
	d.PressKey('p')
	assert.Equal(t, domain.PostponeNo, postponeAt(0))
	d.PressKey('p')
	d.PressKey('n')
	assert.Equal(t, domain.PostponeNo, postponeAt(0))

	for i := 0; i < 5; i++ {
		d.PressDown()
	}
	d.PressKey('p')
	assert.Equal(t, domain.PostponeNo, postponeAt(5))
	assert.Equal(t, "Vendor Contract Renewals", d.Titles()[5], "postpone never reorders")
}

func TestTUI_PostponeDuringPendingReorderSurvivesCommit(t *testing.T) {
	d := fixtureDriver(t)

	d.PressKey('J')
	d.PressKey('y')
	d.Flush()

	items := d.Store().Snapshot().Items
	assert.Equal(t, "Welcome and Introductions", items[1].Title)
	assert.Equal(t, domain.PostponeYes, items[1].Postpone)
}

func TestTUI_JSONView(t *testing.T) {
	d := fixtureDriver(t)

	d.PressKey('x')
	require.Equal(t, ViewJSON, d.ActiveViewID())
	assert.Contains(t, d.View(), `"agendaItem": "Welcome and Introductions"`)
	assert.Contains(t, d.View(), "Dashboard › JSON")

	d.PressKey('x')
	assert.Equal(t, ViewDashboard, d.ActiveViewID())

	d.PressKey('x')
	d.PressEsc()
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
}

func TestTUI_CommitLandsWhileJSONViewOpen(t *testing.T) {
	d := fixtureDriver(t)

	d.PressKey('J')
	d.PressKey('x')
	d.Flush()

	assert.False(t, d.Store().Busy())
	assert.Equal(t, "Welcome and Introductions", d.Titles()[1])
}

func TestTUI_SourceUnavailable(t *testing.T) {
	d := NewTestDriver(t, testApp(t), failingSource{})

	view := d.View()
	assert.Contains(t, view, "No data:")
	assert.Contains(t, view, "press r to retry")
	assert.Contains(t, view, formatter.EmptyAgendaMessage)

	// Gestures on an empty agenda are harmless.
	d.PressSpace()
	d.PressKey('J')
	d.PressKey('y')
	assert.Zero(t, d.Pending())
	assert.Equal(t, 0, d.Store().Len())
}
