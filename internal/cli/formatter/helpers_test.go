package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
	assert.Equal(t, "2h 5m", FormatMinutes(125))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", TruncID("123456789abcdef"))
	assert.Equal(t, "short", TruncID("short"))
}

func TestDateRange(t *testing.T) {
	start := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "from 03 Jan 2026", DateRange(start, nil))

	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	assert.Contains(t, DateRange(start, &end), "31 Mar 2026")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"A", "LONGHEADER"},
		[][]string{{"wide-cell", "x"}, {"y", "z"}},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "LONGHEADER")
	assert.Contains(t, lines[1], "─")
}
