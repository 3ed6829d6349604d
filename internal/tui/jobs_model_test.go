package tui

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscraperpro/jobview/internal/jobs"
	"github.com/jobscraperpro/jobview/internal/view"
)

type stubFetcher struct {
	list         []jobs.Job
	listErr      error
	summary      jobs.Summary
	summaryErr   error
	summaryCalls atomic.Int32
}

func (s *stubFetcher) ListJobs(context.Context) ([]jobs.Job, error) {
	return s.list, s.listErr
}

func (s *stubFetcher) JobSummary(context.Context, jobs.JobID) (jobs.Summary, error) {
	s.summaryCalls.Add(1)
	return s.summary, s.summaryErr
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
}

func sampleJobs() []jobs.Job {
	return []jobs.Job{
		{ID: "1", Title: "Delivery Partner, Mumbai", Location: "Andheri West", Experience: "0-1 years", PostedDate: "2025-03-08"},
		{ID: "2", Title: "Cook", Location: "Powai", Experience: "2 years", URL: "https://apply.example.com/2"},
	}
}

func press(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m JobsModel, msg tea.Msg) (JobsModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(JobsModel)
	require.True(t, ok)
	return model, cmd
}

// loadedModel returns a model that has received the first job list.
func loadedModel(t *testing.T, f *stubFetcher) JobsModel {
	t.Helper()
	m := NewJobsModel(context.Background(), f, Options{Now: fixedNow})
	t.Cleanup(m.Close)

	msg := m.runEffect(m.pending)()
	m, _ = update(t, m, msg)
	require.Equal(t, ViewStateList, m.viewState)
	return m
}

func TestNewJobsModel(t *testing.T) {
	m := NewJobsModel(context.Background(), &stubFetcher{}, Options{ShowFilters: true})
	defer m.Close()

	assert.Equal(t, ViewStateLoading, m.viewState)
	assert.True(t, m.state.Loading)
	assert.True(t, m.state.ShowFilters)
	assert.Equal(t, view.EffectFetchJobs, m.pending.Kind)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Loading jobs...")
}

func TestJobsModel_JobsLoaded(t *testing.T) {
	m := loadedModel(t, &stubFetcher{list: sampleJobs()})

	assert.False(t, m.state.Loading)
	require.Len(t, m.state.Jobs, 2)
	assert.Equal(t, "Delivery Partner", m.state.Jobs[0].Title)
	assert.Equal(t, 2, m.list.ItemCount())

	out := m.View()
	assert.Contains(t, out, "2 Jobs Found")
	assert.Contains(t, out, "Delivery Partner")
	assert.Contains(t, out, "[s] Summarize")
	assert.Contains(t, out, "Salary not specified")
	assert.Contains(t, out, "Posted 3 days ago")
	assert.Contains(t, out, "https://apply.example.com/2")
}

func TestJobsModel_JobsFailed(t *testing.T) {
	f := &stubFetcher{list: sampleJobs()}
	m := loadedModel(t, f)

	f.listErr = errors.New("connection refused")
	m, cmd := update(t, m, press('r'))
	require.NotNil(t, cmd)
	assert.True(t, m.state.Loading)

	m, _ = update(t, m, cmd())
	assert.Equal(t, view.MsgJobsFetchFailed, m.state.Err)
	assert.Len(t, m.state.Jobs, 2, "previous list is kept")
	assert.Contains(t, m.View(), "Failed to fetch jobs")
	assert.NotContains(t, m.View(), "connection refused")
}

func TestJobsModel_RefreshIgnoredWhileLoading(t *testing.T) {
	m := loadedModel(t, &stubFetcher{list: sampleJobs()})

	m, cmd := update(t, m, press('r'))
	require.NotNil(t, cmd)
	_, cmd = update(t, m, press('r'))
	assert.Nil(t, cmd)
}

func TestJobsModel_SummaryFetchThenToggle(t *testing.T) {
	f := &stubFetcher{list: sampleJobs(), summary: jobs.Summary{Summary: "Bike delivery in the western suburbs", Skills: []string{"driving"}}}
	m := loadedModel(t, f)

	m, cmd := update(t, m, press('s'))
	require.NotNil(t, cmd)
	assert.True(t, m.state.InFlight("1"))
	assert.Contains(t, m.View(), "Generating summary...")

	// A second press while in flight does nothing.
	m, again := update(t, m, press('s'))
	assert.Nil(t, again)

	m, _ = update(t, m, cmd())
	entry, ok := m.state.Entry("1")
	require.True(t, ok)
	assert.True(t, entry.Visible)
	assert.Contains(t, m.View(), "Bike delivery in the western suburbs")

	m, cmd = update(t, m, press('s'))
	assert.Nil(t, cmd, "toggle never re-fetches")
	entry, _ = m.state.Entry("1")
	assert.False(t, entry.Visible)
	assert.NotContains(t, m.View(), "Bike delivery")

	assert.Equal(t, int32(1), f.summaryCalls.Load())
}

func TestJobsModel_SummaryFailureIsScoped(t *testing.T) {
	f := &stubFetcher{list: sampleJobs(), summaryErr: errors.New("500")}
	m := loadedModel(t, f)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	entry, ok := m.state.Entry("2")
	require.True(t, ok)
	assert.Equal(t, view.MsgSummaryFetchFailed, entry.Err)
	_, ok = m.state.Entry("1")
	assert.False(t, ok)
	assert.Empty(t, m.state.Err)
	assert.Contains(t, m.View(), "Failed to fetch job summary")
}

func TestJobsModel_Search(t *testing.T) {
	m := loadedModel(t, &stubFetcher{list: sampleJobs()})

	m, _ = update(t, m, press('/'))
	assert.Equal(t, inputSearch, m.focused)

	m, _ = update(t, m, typeText("powai"))
	assert.Equal(t, "powai", m.state.Filter.Search)
	require.Len(t, m.state.Visible(), 1)
	assert.Equal(t, 1, m.list.ItemCount())

	// Keys typed into an input never reach the list bindings.
	m, _ = update(t, m, press('q'))
	assert.NotEqual(t, ViewStateQuitting, m.viewState)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, inputNone, m.focused)
	assert.Equal(t, "powaiq", m.state.Filter.Search)
	assert.Contains(t, m.View(), "No Jobs Found")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Empty(t, m.state.Filter.Search)
	assert.Len(t, m.state.Visible(), 2)
}

func TestJobsModel_FiltersAndReset(t *testing.T) {
	m := loadedModel(t, &stubFetcher{list: sampleJobs()})

	m, _ = update(t, m, press('f'))
	assert.True(t, m.state.ShowFilters)
	assert.Equal(t, inputLocation, m.focused)

	m, _ = update(t, m, typeText("andheri"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, inputExperience, m.focused)
	m, _ = update(t, m, typeText("0-1"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, inputSearch, m.focused)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, inputExperience, m.focused)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	assert.Equal(t, jobs.Filter{Location: "andheri", Experience: "0-1"}, m.state.Filter)
	require.Len(t, m.state.Visible(), 1)
	assert.Contains(t, m.View(), "1 Jobs Found")

	m, _ = update(t, m, press('c'))
	assert.True(t, m.state.Filter.IsZero())
	assert.Empty(t, m.inputs[inputLocation].Value())
	assert.Len(t, m.state.Visible(), 2)

	m, _ = update(t, m, press('f'))
	assert.False(t, m.state.ShowFilters)
}

func TestJobsModel_SummarizeEmptyList(t *testing.T) {
	m := loadedModel(t, &stubFetcher{})

	_, cmd := update(t, m, press('s'))
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "No Jobs Found")
}

func TestJobsModel_QuitCancelsRequests(t *testing.T) {
	f := &stubFetcher{list: sampleJobs()}
	m := loadedModel(t, f)

	m, summaryCmd := update(t, m, press('s'))
	require.NotNil(t, summaryCmd)

	m, cmd := update(t, m, press('q'))
	assert.NotNil(t, cmd)
	assert.Equal(t, ViewStateQuitting, m.viewState)
	assert.Error(t, m.ctx.Err())
	assert.Empty(t, m.View())

	assert.Nil(t, summaryCmd(), "responses after quit are dropped")
}

func TestJobsModel_StaleJobsResponseIgnored(t *testing.T) {
	m := loadedModel(t, &stubFetcher{list: sampleJobs()})

	m, _ = update(t, m, jobsLoadedMsg{seq: 0, list: []jobs.Job{{ID: "old"}}})
	assert.Len(t, m.state.Jobs, 2)
}

func TestJobsModel_WindowResize(t *testing.T) {
	m := loadedModel(t, &stubFetcher{list: sampleJobs()})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 20, m.height)
	_ = m.View()
	assert.Equal(t, 80, m.list.Width())
}

func TestJobsModel_HelpToggle(t *testing.T) {
	m := loadedModel(t, &stubFetcher{list: sampleJobs()})
	m, _ = update(t, m, press('?'))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "refresh")
}
