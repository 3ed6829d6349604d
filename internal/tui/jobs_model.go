package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jobscraperpro/jobview/internal/browser"
	"github.com/jobscraperpro/jobview/internal/jobs"
	"github.com/jobscraperpro/jobview/internal/logging"
	listview "github.com/jobscraperpro/jobview/internal/tui/list"
	"github.com/jobscraperpro/jobview/internal/view"
)

// jobsLoadedMsg carries a successful job list response.
type jobsLoadedMsg struct {
	seq  uint64
	list []jobs.Job
}

// jobsFailedMsg carries a failed job list response.
type jobsFailedMsg struct {
	seq uint64
	err error
}

// summaryLoadedMsg carries one job's summary.
type summaryLoadedMsg struct {
	id      jobs.JobID
	summary jobs.Summary
}

// summaryFailedMsg carries one job's summary failure.
type summaryFailedMsg struct {
	id  jobs.JobID
	err error
}

// inputField indexes the filter inputs.
type inputField int

const (
	inputNone inputField = iota - 1
	inputSearch
	inputLocation
	inputExperience
	numInputs
)

// Options configures the job browser.
type Options struct {
	ShowFilters  bool
	AbsoluteDate bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// JobsModel is the Bubble Tea model for the interactive job browser.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type JobsModel struct {
	ctx    context.Context
	cancel context.CancelFunc
	api    browser.Fetcher

	state     view.State
	viewState ViewState
	pending   view.Effect

	list    *listview.VirtualListModel[jobs.Job]
	inputs  [numInputs]textinput.Model
	focused inputField

	loadingState *LoadingState
	keys         keyMap
	help         help.Model

	width        int
	height       int
	now          func() time.Time
	absoluteDate bool
}

// NewJobsModel creates the browser model. The first job list request is
// issued by Init. Cancelling ctx discards every outstanding response.
func NewJobsModel(ctx context.Context, api browser.Fetcher, opts Options) JobsModel {
	ctx, cancel := context.WithCancel(ctx)

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := JobsModel{
		ctx:          ctx,
		cancel:       cancel,
		api:          api,
		state:        view.New(),
		viewState:    ViewStateLoading,
		focused:      inputNone,
		loadingState: NewLoadingState(),
		keys:         newKeyMap(),
		help:         help.New(),
		width:        defaultWidth,
		height:       defaultHeight,
		now:          now,
		absoluteDate: opts.AbsoluteDate,
	}
	if opts.ShowFilters {
		m.state = m.state.ToggleFilters()
	}

	m.inputs[inputSearch] = newTextInput("Search by title or location...")
	m.inputs[inputLocation] = newTextInput("Filter by location...")
	m.inputs[inputExperience] = newTextInput("Filter by experience...")

	m.list = listview.NewVirtualListModel[jobs.Job](nil, m.height, m.width, nil)
	m.state, m.pending = m.state.StartJobsFetch()
	return m
}

func newTextInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	return ti
}

// Init starts the spinner and the first job list request.
func (m JobsModel) Init() tea.Cmd {
	return tea.Batch(m.loadingState.Init(), m.runEffect(m.pending))
}

// State returns the current view state.
func (m JobsModel) State() view.State { return m.state }

// Close cancels outstanding requests. Responses that arrive later are dropped.
func (m JobsModel) Close() { m.cancel() }

// Update handles messages and updates the model state (Bubble Tea interface).
func (m JobsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case spinner.TickMsg:
		return m, m.loadingState.Update(msg)
	case jobsLoadedMsg:
		m.state = m.state.JobsLoaded(msg.seq, msg.list)
		m.viewState = ViewStateList
		m.refreshList()
		return m, nil
	case jobsFailedMsg:
		logging.FromContext(m.ctx).Error().Ctx(m.ctx).
			Str("component", "tui").
			Err(msg.err).
			Msg("fetching jobs")
		m.state = m.state.JobsFailed(msg.seq, msg.err)
		m.viewState = ViewStateList
		return m, nil
	case summaryLoadedMsg:
		m.state = m.state.SummaryLoaded(msg.id, msg.summary)
		return m, nil
	case summaryFailedMsg:
		logging.FromContext(m.ctx).Error().Ctx(m.ctx).
			Str("component", "tui").
			Str("job_id", msg.id.String()).
			Err(msg.err).
			Msg("fetching summary")
		m.state = m.state.SummaryFailed(msg.id)
		return m, nil
	case tea.KeyMsg:
		if m.viewState == ViewStateQuitting {
			return m, nil
		}
		if m.focused != inputNone {
			return m.handleInputKey(msg)
		}
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m JobsModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.viewState = ViewStateQuitting
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Summarize):
		return m.summarizeSelected()
	case key.Matches(msg, m.keys.Search):
		return m, m.focus(inputSearch)
	case key.Matches(msg, m.keys.Filters):
		m.state = m.state.ToggleFilters()
		if m.state.ShowFilters {
			return m, m.focus(inputLocation)
		}
		m.inputs[inputLocation].Blur()
		m.inputs[inputExperience].Blur()
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.resetFilters()
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		if m.state.Loading {
			return m, nil
		}
		var eff view.Effect
		m.state, eff = m.state.StartJobsFetch()
		return m, m.runEffect(eff)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case msg.String() == keyEsc:
		if m.inputs[inputSearch].Value() != "" {
			m.inputs[inputSearch].SetValue("")
			m.syncFilter()
		}
		return m, nil
	default:
		m.list.Update(msg)
		return m, nil
	}
}

func (m JobsModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyCtrlC:
		m.viewState = ViewStateQuitting
		m.cancel()
		return m, tea.Quit
	case keyEnter, keyEsc:
		m.inputs[m.focused].Blur()
		m.focused = inputNone
		return m, nil
	case keyTab:
		return m, m.focus(m.nextInput(1))
	case keyShiftTab:
		return m, m.focus(m.nextInput(-1))
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	m.syncFilter()
	return m, cmd
}

// nextInput cycles through the inputs that are on screen.
func (m *JobsModel) nextInput(step int) inputField {
	visible := []inputField{inputSearch}
	if m.state.ShowFilters {
		visible = append(visible, inputLocation, inputExperience)
	}
	for i, f := range visible {
		if f == m.focused {
			return visible[(i+step+len(visible))%len(visible)]
		}
	}
	return inputSearch
}

func (m *JobsModel) focus(field inputField) tea.Cmd {
	if m.focused != inputNone {
		m.inputs[m.focused].Blur()
	}
	m.focused = field
	return m.inputs[field].Focus()
}

// syncFilter copies the input values into the view state.
func (m *JobsModel) syncFilter() {
	m.state = m.state.
		SetSearch(m.inputs[inputSearch].Value()).
		SetLocationFilter(m.inputs[inputLocation].Value()).
		SetExperienceFilter(m.inputs[inputExperience].Value())
	m.refreshList()
}

func (m *JobsModel) resetFilters() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.state = m.state.ResetFilters()
	m.refreshList()
}

func (m *JobsModel) refreshList() {
	m.list.SetItems(m.state.Visible())
}

func (m JobsModel) summarizeSelected() (tea.Model, tea.Cmd) {
	job := m.list.GetSelectedItem()
	if job == nil || job.ID == "" {
		return m, nil
	}
	var eff view.Effect
	m.state, eff = m.state.RequestSummary(job.ID)
	return m, m.runEffect(eff)
}

// runEffect turns a view effect into a command bound to the model's context.
func (m JobsModel) runEffect(eff view.Effect) tea.Cmd {
	ctx, api := m.ctx, m.api

	switch eff.Kind {
	case view.EffectFetchJobs:
		seq := eff.Seq
		return func() tea.Msg {
			list, err := api.ListJobs(ctx)
			if ctx.Err() != nil {
				return nil
			}
			if err != nil {
				return jobsFailedMsg{seq: seq, err: err}
			}
			return jobsLoadedMsg{seq: seq, list: list}
		}
	case view.EffectFetchSummary:
		id := eff.JobID
		return func() tea.Msg {
			summary, err := api.JobSummary(ctx, id)
			if ctx.Err() != nil {
				return nil
			}
			if err != nil {
				return summaryFailedMsg{id: id, err: err}
			}
			return summaryLoadedMsg{id: id, summary: summary}
		}
	default:
		return nil
	}
}
