package detail

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jobscraperpro/jobview/internal/jobs"
	"github.com/jobscraperpro/jobview/internal/view"
)

// Status is the display state of a summary slot.
type Status int

const (
	// StatusHidden renders nothing.
	StatusHidden Status = iota
	// StatusLoading renders the spinner line.
	StatusLoading
	// StatusError renders the inline failure message.
	StatusError
	// StatusReady renders the summary and its skills.
	StatusReady
)

const (
	loadingText = "Generating summary..."
	skillsLabel = "Skills: "
	indent      = 2
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("62")).
			PaddingLeft(1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	loadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	skillStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// Pane is one job's summary slot.
type Pane struct {
	Status  Status
	Text    string
	Skills  []string
	Err     string
	Spinner string
	Width   int
}

// FromState builds the pane for job id from the view state.
func FromState(s view.State, id jobs.JobID) Pane {
	if s.InFlight(id) {
		return Pane{Status: StatusLoading}
	}
	entry, ok := s.Entry(id)
	if !ok || !entry.Visible {
		return Pane{Status: StatusHidden}
	}
	if entry.Failed() {
		return Pane{Status: StatusError, Err: entry.Err}
	}
	p := Pane{Status: StatusReady, Text: jobs.NoSummary}
	if entry.Data != nil {
		p.Text = entry.Data.Text()
		p.Skills = entry.Data.Skills
	}
	return p
}

// Visible reports whether the pane renders anything.
func (p Pane) Visible() bool { return p.Status != StatusHidden }

// View renders the pane, or "" when hidden.
func (p Pane) View() string {
	switch p.Status {
	case StatusLoading:
		text := loadingText
		if p.Spinner != "" {
			text = p.Spinner + " " + text
		}
		return loadingStyle.Render(text)
	case StatusError:
		return errorStyle.Render(p.Err)
	case StatusReady:
		body := p.Text
		if len(p.Skills) > 0 {
			body += "\n" + skillsLabel + skillStyle.Render(strings.Join(p.Skills, ", "))
		}
		style := summaryStyle
		if p.Width > indent {
			style = style.Width(p.Width - indent)
		}
		return style.Render(body)
	default:
		return ""
	}
}
