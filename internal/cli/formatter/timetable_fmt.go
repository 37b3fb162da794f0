package formatter

import (
	"fmt"
	"strings"

	"jadval/internal/contract"
	"jadval/internal/domain"
)

// FormatWeek renders a full week view: one section per day that has
// blocks, plus a navigation summary line.
func FormatWeek(week *contract.WeekView) string {
	var b strings.Builder

	b.WriteString(weekCaption(week))
	b.WriteString("\n\n")

	empty := true
	for _, day := range week.Days {
		if len(day.Blocks) == 0 {
			continue
		}
		empty = false
		b.WriteString(Header(fmt.Sprintf("%s %s", day.Weekday.String(), day.Date.Format("02 Jan"))))
		b.WriteString("\n")
		b.WriteString(blockTable(day.Blocks))
		b.WriteString("\n")
	}
	if empty {
		b.WriteString(Dim("No sessions this week.") + "\n")
	}

	return b.String()
}

func weekCaption(week *contract.WeekView) string {
	prev := Dim("◀")
	if week.CanGoPrevious {
		prev = StyleGreen.Render("◀")
	}
	next := Dim("▶")
	if week.CanGoNext {
		next = StyleGreen.Render("▶")
	}
	return fmt.Sprintf("%s %s %s  %s",
		prev,
		Bold(fmt.Sprintf("Week %d of %d", week.WeekIndex+1, week.TotalWeeks)),
		next,
		Dim("starting "+HumanDate(week.WeekStart)),
	)
}

// FormatDay renders a single day's schedule.
func FormatDay(day *contract.DayView) string {
	title := fmt.Sprintf("%s %s", day.Weekday.String(), day.Date.Format("02 Jan 2006"))
	if len(day.Blocks) == 0 {
		return RenderBox(title, Dim("No sessions."))
	}
	return RenderBox(title, blockTable(day.Blocks))
}

func blockTable(blocks []contract.Block) string {
	headers := []string{"TIME", "SUBJECT", "GRADE", "TEACHER", "LENGTH", ""}
	rows := make([][]string, 0, len(blocks))
	for _, blk := range blocks {
		lane := ""
		if blk.Lanes > 1 {
			lane = Dim(fmt.Sprintf("lane %d/%d", blk.Lane+1, blk.Lanes))
		}
		rows = append(rows, []string{
			StyleYellow.Render(blk.Start.String()),
			Bold(blk.Subject),
			blk.Grade,
			blk.TeacherName,
			FormatMinutes(blk.DurationMin),
			lane,
		})
	}
	return RenderTable(headers, rows)
}

// FormatWindow renders the navigable range summary.
func FormatWindow(win *contract.WindowView) string {
	rows := [][]string{
		{"Earliest", HumanDate(win.Earliest)},
		{"Latest", HumanDate(win.Latest)},
		{"First week starts", HumanDate(win.WeekZero)},
		{"Weeks", fmt.Sprintf("%d", win.TotalWeeks)},
	}
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim(fmt.Sprintf("%-18s", row[0])), row[1]))
	}
	return RenderBox("Timetable window", strings.TrimRight(b.String(), "\n"))
}

// FormatSessions renders the session list table.
func FormatSessions(sessions []domain.Session) string {
	headers := []string{"ID", "KIND", "SUBJECT", "GRADE", "TEACHER", "WHEN", "RANGE"}
	rows := make([][]string, 0, len(sessions))
	for i := range sessions {
		s := &sessions[i]
		rows = append(rows, []string{
			Dim(s.DisplayID()),
			KindBadge(s.Kind),
			Bold(s.Subject),
			s.Grade,
			s.TeacherName,
			sessionWhen(s),
			Dim(sessionRange(s)),
		})
	}
	return RenderBox("Sessions", RenderTable(headers, rows))
}

func sessionWhen(s *domain.Session) string {
	if s.Kind == domain.KindSingle {
		return fmt.Sprintf("%s %s", HumanDate(s.StartAt), StyleYellow.Render(s.StartTime().String()))
	}
	return fmt.Sprintf("%s %s", s.Weekday.String(), StyleYellow.Render(s.TimeOfDay.String()))
}

func sessionRange(s *domain.Session) string {
	if s.Kind == domain.KindSingle {
		return ""
	}
	return DateRange(s.StartAt, s.EndAt)
}

// FormatSessionDetail renders one session plus its related weekly siblings.
func FormatSessionDetail(s *domain.Session, related []domain.Session, defaultMin int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(s.Subject), KindBadge(s.Kind)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Teacher"), s.TeacherName))
	b.WriteString(fmt.Sprintf("%s    %s\n", Dim("Grade"), s.Grade))
	b.WriteString(fmt.Sprintf("%s     %s\n", Dim("When"), sessionWhen(s)))
	b.WriteString(fmt.Sprintf("%s   %s\n", Dim("Length"), FormatMinutes(s.Duration(defaultMin))))
	if s.Kind == domain.KindRecurring {
		b.WriteString(fmt.Sprintf("%s    %s\n", Dim("Range"), sessionRange(s)))
	}

	if len(related) > 0 {
		b.WriteString("\n" + Header("Also this week") + "\n")
		for i := range related {
			r := &related[i]
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				StyleGreen.Render(r.Weekday.Short()),
				StyleYellow.Render(r.TimeOfDay.String()),
				Dim(r.DisplayID()),
			))
		}
	}

	return RenderBox("Session", strings.TrimRight(b.String(), "\n"))
}
