package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jobscraperpro/jobview/internal/jobs"
	"github.com/jobscraperpro/jobview/internal/tui/detail"
)

const (
	untitled        = "Untitled position"
	summarizeAction = "[s] Summarize"
	expandedMarker  = "▲"
	collapsedMarker = "▼"
	fieldGap        = "   "
	cardChrome      = 4 // border and padding on both sides
)

// CardOptions controls how a job card is drawn.
type CardOptions struct {
	Now          time.Time
	AbsoluteDate bool
	Width        int
	Selected     bool
}

// RenderJobCard draws one job with its summary slot.
func RenderJobCard(job jobs.Job, pane detail.Pane, opts CardOptions) string {
	inner := opts.Width - cardChrome
	if inner < filterInputWidth {
		inner = filterInputWidth
	}

	title := job.Title
	if strings.TrimSpace(title) == "" {
		title = untitled
	}
	marker := collapsedMarker
	if pane.Visible() {
		marker = expandedMarker
	}
	action := ActionStyle.Render(summarizeAction + " " + marker)
	titleWidth := inner - lipgloss.Width(action) - 1
	titleLine := lipgloss.JoinHorizontal(lipgloss.Top,
		JobTitleStyle.Width(titleWidth).Render(title),
		" ",
		action,
	)

	lines := []string{titleLine}
	if pane.Visible() {
		pane.Width = inner
		lines = append(lines, pane.View())
	}
	lines = append(lines,
		field("Location", job.DisplayLocation())+fieldGap+field("Salary", job.DisplaySalary()),
		field("Experience", job.DisplayExperience())+fieldGap+field("Openings", job.DisplayOpenings()),
	)
	if posted := jobs.PostedLabel(job.PostedDate, opts.Now, opts.AbsoluteDate); posted != "" {
		lines = append(lines, SubtleStyle.Render("Posted "+posted))
	}
	lines = append(lines, LabelStyle.Render("Apply: ")+LinkStyle.Render(job.ApplyURL()))

	style := CardStyle
	if opts.Selected {
		style = SelectedCardStyle
	}
	return style.Width(inner + borderPadding).Render(strings.Join(lines, "\n"))
}

func field(label, value string) string {
	return LabelStyle.Render(label+": ") + ValueStyle.Render(value)
}
