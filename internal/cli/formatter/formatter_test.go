package formatter

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/agendadesk/internal/agenda"
	"github.com/alexanderramin/agendadesk/internal/domain"
	"github.com/alexanderramin/agendadesk/internal/stats"
	"github.com/alexanderramin/agendadesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func loadedSnapshot(t *testing.T, a *domain.Agenda, items []domain.AgendaItem) agenda.Snapshot {
	t.Helper()
	store := agenda.NewStore()
	store.Load(a, items)
	return store.Snapshot()
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "LONG"}, [][]string{{"wide cell", "x"}, {"y"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[0], "LONG"), strings.Index(lines[2], "x"))
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderColumns_RightAlign(t *testing.T) {
	out := stripANSI(RenderColumns(
		[]Column{{Title: "N", Align: AlignRight}, {Title: "NAME"}},
		[][]string{{"7", "a"}, {"123", "b"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "  N  NAME"))
	assert.True(t, strings.HasPrefix(lines[2], "  7  a"))
	assert.True(t, strings.HasPrefix(lines[3], "123  b"))
}

func TestRenderReachAndCompletionBar(t *testing.T) {
	assert.Equal(t, "[█████░░░░░]  50%", stripANSI(RenderReach(50, 10, true)))
	assert.Equal(t, "[████] 125%", stripANSI(RenderReach(125, 4, false)))

	bar := stripANSI(RenderCompletionBar(6, 8, 8, false))
	assert.Equal(t, "[██████░░] 6/8", bar)
	assert.Equal(t, "[░░░░] 0/0", stripANSI(RenderCompletionBar(0, 0, 4, true)))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "09:30", ClockLabel("09:30:00"))
	assert.Equal(t, "9:30", ClockLabel("9:30"))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "12345678", stripANSI(TruncID("1234567890")))
	assert.Contains(t, stripANSI(RenderBox("agenda", "body")), "AGENDA")
}

func TestFormatAgendaHeader(t *testing.T) {
	a := testutil.NewTestAgenda("Board Meeting", testutil.WithWindow("09:00:00", "17:00:00"))
	out := stripANSI(FormatAgendaHeader(a))
	assert.Contains(t, out, "Board Meeting")
	assert.Contains(t, out, "09:00 - 17:00")
	assert.Contains(t, out, "Test")

	assert.Contains(t, stripANSI(FormatAgendaHeader(nil)), "no agenda metadata")
}

func TestFormatTimeline_LunchOverlay(t *testing.T) {
	tl := &stats.Timeline{
		StartLabel: "09:00", EndLabel: "17:00",
		HasLunch: true, LunchStart: "12:00", LunchEnd: "13:00",
		LunchLeft: 37.5, LunchWidth: 12.5,
	}
	out := stripANSI(FormatTimeline(tl, 16))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	// 37.5% of 16 is cell 6, 12.5% is two cells wide.
	assert.Equal(t, "━━━━━━██━━━━━━━━", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "09:00"))
	assert.True(t, strings.HasSuffix(lines[1], "17:00"))
	assert.Equal(t, "Lunch 12:00 - 13:00", lines[2])

	assert.Empty(t, FormatTimeline(nil, 20))
}

func TestFormatCards(t *testing.T) {
	items := []domain.AgendaItem{
		testutil.NewTestItem("a", testutil.WithScheduled(true)),
		testutil.NewTestItem("b", testutil.WithScheduled(true)),
		testutil.NewTestItem("c", testutil.WithScheduled(true)),
		testutil.NewTestItem("d", testutil.WithScheduled(true)),
		testutil.NewTestItem("e"),
	}
	out := stripANSI(FormatCards(stats.Summarize(loadedSnapshot(t, testutil.NewTestAgenda("x"), items))))
	assert.Contains(t, out, "ORDER")
	assert.Contains(t, out, "5/5")
	assert.Contains(t, out, "4/5")
	assert.Contains(t, out, "need 4")
	assert.Contains(t, out, "6%")
	assert.NotContains(t, out, "BEHIND")
}

func TestFormatItemTable(t *testing.T) {
	items := testutil.NewTestItems(3)
	items[1].Postpone = domain.PostponeYes
	snap := loadedSnapshot(t, nil, items)

	out := stripANSI(FormatItemTable(snap.Items, TableMarks{Cursor: 0, Picked: 2}))
	assert.Contains(t, out, "AGENDA ITEM")
	assert.Contains(t, out, "▸")
	assert.Contains(t, out, "◆")
	assert.Contains(t, out, "⏸ Yes")
	assert.Less(t, strings.Index(out, "Item 1"), strings.Index(out, "Item 3"))

	assert.Equal(t, EmptyAgendaMessage, stripANSI(FormatItemTable(nil, NoMarks)))
}

func TestFormatDashboard(t *testing.T) {
	a := testutil.NewTestAgenda("Exec", testutil.WithLunch("12:00", "13:00"))
	out := stripANSI(FormatDashboard(loadedSnapshot(t, a, testutil.NewTestItems(2))))
	assert.Contains(t, out, "Exec")
	assert.Contains(t, out, "Lunch 12:00 - 13:00")
	assert.Contains(t, out, "TIMELINE")
	assert.Contains(t, out, "Item 2")

	empty := stripANSI(FormatDashboard(loadedSnapshot(t, nil, nil)))
	assert.Contains(t, empty, EmptyAgendaMessage)
	assert.Contains(t, empty, "0/0")
}

func TestExportJSON(t *testing.T) {
	items := testutil.NewTestItems(2)
	out, err := ExportJSON(loadedSnapshot(t, nil, items))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "[\n  {\n    \"id\": \"i1\""))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Item 2", decoded[1]["agendaItem"])
	assert.EqualValues(t, 2, decoded[1]["order"])
	assert.Equal(t, "No", decoded[1]["postpone"])

	empty, err := ExportJSON(agenda.Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestSpinner_WritesToWriterAndStops(t *testing.T) {
	var buf syncBuffer
	stop := StartSpinner(&buf, "Fetching")
	time.Sleep(200 * time.Millisecond)
	stop()
	stop()
	assert.Contains(t, stripANSI(buf.String()), "Fetching")
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
