package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jobscraperpro/jobview/internal/jobs"
	"github.com/jobscraperpro/jobview/internal/tui/detail"
)

const (
	appTitle        = "JobScraper Pro"
	loadingHeader   = "Loading jobs..."
	emptyTitle      = "No Jobs Found"
	emptyHint       = "Try adjusting your search or filters."
	emptyKeyHint    = "Press c to clear them."
	warningGlyph    = "⚠ "
	labelSearch     = "Search:     "
	labelLocation   = "Location:   "
	labelExperience = "Experience: "
)

// View renders the current view (Bubble Tea interface).
func (m JobsModel) View() string {
	if m.viewState == ViewStateQuitting {
		return ""
	}

	header := m.renderHeader()
	footer := m.help.View(m.keys)

	var body string
	switch {
	case m.viewState == ViewStateLoading:
		body = RenderLoading(m.loadingState)
	case len(m.state.Visible()) == 0:
		body = m.renderEmpty()
	default:
		listHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
		if listHeight < minHeight {
			listHeight = minHeight
		}
		m.list.SetSize(m.width, listHeight)
		m.list.SetRenderFunc(m.renderCard)
		body = m.list.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m JobsModel) renderHeader() string {
	count := loadingHeader
	if !m.state.Loading {
		visible := len(m.state.Visible())
		if m.state.Filter.IsZero() {
			count = JobsFoundText(visible)
		} else {
			count = JobsFoundText(visible) + SubtleStyle.Render(" ("+JobsOfTotalText(visible, len(m.state.Jobs))+")")
		}
	} else if m.viewState != ViewStateLoading {
		count = m.loadingState.Frame() + " " + loadingHeader
	}
	title := lipgloss.JoinHorizontal(lipgloss.Top, TitleStyle.Render(appTitle), "  ", HeaderStyle.Render(count))

	sections := []string{title, m.renderInput(labelSearch, inputSearch)}
	if m.state.ShowFilters {
		sections = append(sections,
			m.renderInput(labelLocation, inputLocation),
			m.renderInput(labelExperience, inputExperience),
		)
	}
	if m.state.Err != "" {
		sections = append(sections, BannerStyle.Render(warningGlyph+m.state.Err))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m JobsModel) renderInput(label string, field inputField) string {
	return LabelStyle.Render(label) + m.inputs[field].View()
}

func (m JobsModel) renderEmpty() string {
	box := lipgloss.JoinVertical(lipgloss.Center,
		HeaderStyle.Render(emptyTitle),
		SubtleStyle.Render(emptyHint),
		SubtleStyle.Render(emptyKeyHint),
	)
	return lipgloss.Place(m.width, minHeight, lipgloss.Center, lipgloss.Center, box)
}

// renderCard is the list's RenderFunc.
func (m JobsModel) renderCard(job jobs.Job, _ int, selected bool) string {
	pane := detail.FromState(m.state, job.ID)
	if pane.Status == detail.StatusLoading {
		pane.Spinner = m.loadingState.Frame()
	}
	return RenderJobCard(job, pane, CardOptions{
		Now:          m.now(),
		AbsoluteDate: m.absoluteDate,
		Width:        m.width,
		Selected:     selected,
	})
}

// RenderJobList renders every job as a card, for non-interactive styled output.
func RenderJobList(list []jobs.Job, opts CardOptions) string {
	if len(list) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, HeaderStyle.Render(emptyTitle), SubtleStyle.Render(emptyHint))
	}
	cards := make([]string, 0, len(list)+1)
	cards = append(cards, HeaderStyle.Render(JobsFoundText(len(list))))
	for _, job := range list {
		cards = append(cards, RenderJobCard(job, detail.Pane{}, opts))
	}
	return strings.Join(cards, "\n")
}
