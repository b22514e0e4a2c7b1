package result

import (
	"fmt"
	"math"
	"strings"

	"github.com/arpahome/nustudy/internal/application"
	"github.com/arpahome/nustudy/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"
)

const barWidth = 20

func renderView(result application.Result, s styles) string {
	switch result.Kind {
	case application.KindListCourses, application.KindFilterByName:
		return renderCourses(result, s)
	case application.KindListSessions:
		return renderSessions(result.Message, result.Sessions, s)
	default:
		return s.message.Render(result.Message)
	}
}

func renderCourses(result application.Result, s styles) string {
	lines := []string{
		s.title.Render("Courses"),
		s.header.Render(result.Message),
	}

	if len(result.Courses) == 0 {
		lines = append(lines, s.empty.Render("No courses to show."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	total := 0
	width := 0
	for _, course := range result.Courses {
		total += course.TotalHours()
		if len(course.Name) > width {
			width = len(course.Name)
		}
	}

	for _, course := range result.Courses {
		lines = append(lines, courseLine(course, total, width, s))
	}

	lines = append(lines, s.header.Render(fmt.Sprintf("total: %s", english.Plural(total, "hour", ""))))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func courseLine(course domain.Course, totalHours, nameWidth int, s styles) string {
	hours := course.TotalHours()
	name := s.course.Render(fmt.Sprintf("%-*s", nameWidth, course.Name))
	meta := s.detail.Render(fmt.Sprintf("%s in %s",
		english.Plural(hours, "hour", ""),
		english.Plural(len(course.Sessions), "session", ""),
	))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		name,
		" ",
		renderShareBar(hours, totalHours, barWidth, s),
		" ",
		meta,
	)
}

func renderSessions(courseName string, sessions []domain.Session, s styles) string {
	lines := []string{
		s.title.Render(courseName),
		s.header.Render(fmt.Sprintf("sessions: %d", len(sessions))),
	}

	if len(sessions) == 0 {
		lines = append(lines, s.empty.Render("No sessions logged."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, session := range sessions {
		lines = append(lines, sessionLine(i+1, session, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sessionLine(index int, session domain.Session, s styles) string {
	date := s.faint.Render("(no date)")
	if session.HasDate() {
		date = s.detail.Render(domain.FormatDate(*session.Date))
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.index.Render(fmt.Sprintf("%d.", index)),
		" ",
		s.detail.Render(english.Plural(session.Hours, "hour", "")),
		" ",
		date,
	)
}

// renderShareBar draws the course's share of all logged hours.
func renderShareBar(hours, total, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := 0
	if total > 0 {
		filled = int(math.Round(float64(width) * float64(hours) / float64(total)))
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}
