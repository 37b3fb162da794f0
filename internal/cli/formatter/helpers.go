package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID shortens a UUID to its first segment for display.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatMinutes renders a duration like "1h 30m" or "45m".
func FormatMinutes(minutes int) string {
	if minutes >= 60 {
		h := minutes / 60
		m := minutes % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", minutes)
}

// HumanDate renders a calendar date like "Sat 03 Jan 2026".
func HumanDate(t time.Time) string {
	return t.Format("Mon 02 Jan 2006")
}

// DateRange renders a bounded or open-ended date span.
func DateRange(start time.Time, end *time.Time) string {
	if end == nil {
		return fmt.Sprintf("from %s", start.Format("02 Jan 2006"))
	}
	return fmt.Sprintf("%s → %s", start.Format("02 Jan 2006"), end.Format("02 Jan 2006"))
}
