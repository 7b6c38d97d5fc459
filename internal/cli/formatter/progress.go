package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// meter draws filled cells out of width in style, clamping filled to the bar.
func meter(filled, width int, style lipgloss.Style) string {
	width = max(width, 2)
	filled = min(max(filled, 0), width)
	return "[" + style.Render(strings.Repeat(filledBlock, filled)+strings.Repeat(emptyBlock, width-filled)) + "]"
}

func statusStyle(onTrack bool) lipgloss.Style {
	if onTrack {
		return StyleGreen
	}
	return StyleRed
}

// RenderCompletionBar renders a card meter such as "[██████░░] 6/8",
// green when on track and red otherwise.
func RenderCompletionBar(count, total, width int, onTrack bool) string {
	filled := 0
	if total > 0 {
		filled = count * max(width, 2) / total
	}
	return fmt.Sprintf("%s %d/%d", meter(filled, width, statusStyle(onTrack)), count, total)
}

// RenderReach renders how much of the agenda window the items use, e.g.
// "[███████░] 94%". Overruns fill the bar and print the real percentage.
func RenderReach(pct float64, width int, onTrack bool) string {
	filled := int(pct / 100 * float64(max(width, 2)))
	return fmt.Sprintf("%s %3.0f%%", meter(filled, width, statusStyle(onTrack)), pct)
}
