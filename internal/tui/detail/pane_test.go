package detail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobscraperpro/jobview/internal/jobs"
	"github.com/jobscraperpro/jobview/internal/tui/detail"
	"github.com/jobscraperpro/jobview/internal/view"
)

func TestFromState(t *testing.T) {
	s, eff := view.New().StartJobsFetch()
	s = s.JobsLoaded(eff.Seq, []jobs.Job{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}})

	s, _ = s.RequestSummary("1")
	s, _ = s.RequestSummary("2")
	s = s.SummaryFailed("2")
	s, _ = s.RequestSummary("3")
	s = s.SummaryLoaded("3", jobs.Summary{Summary: "<p>Warehouse role</p>", Skills: []string{"lifting"}})

	loading := detail.FromState(s, "1")
	assert.Equal(t, detail.StatusLoading, loading.Status)

	failed := detail.FromState(s, "2")
	assert.Equal(t, detail.StatusError, failed.Status)
	assert.Equal(t, view.MsgSummaryFetchFailed, failed.Err)

	ready := detail.FromState(s, "3")
	assert.Equal(t, detail.StatusReady, ready.Status)
	assert.Equal(t, "Warehouse role", ready.Text)
	assert.Equal(t, []string{"lifting"}, ready.Skills)

	hidden := detail.FromState(s, "4")
	assert.False(t, hidden.Visible())
	assert.Empty(t, hidden.View())

	s, _ = s.RequestSummary("3")
	assert.False(t, detail.FromState(s, "3").Visible(), "collapsed entry hides the pane")
}

func TestPaneView(t *testing.T) {
	loading := detail.Pane{Status: detail.StatusLoading, Spinner: "*"}
	assert.Contains(t, loading.View(), "* Generating summary...")

	failed := detail.Pane{Status: detail.StatusError, Err: view.MsgSummaryFetchFailed}
	assert.Contains(t, failed.View(), "Failed to fetch job summary")

	ready := detail.Pane{Status: detail.StatusReady, Text: "Night shift", Skills: []string{"driving", "hindi"}, Width: 60}
	out := ready.View()
	assert.Contains(t, out, "Night shift")
	assert.Contains(t, out, "Skills:")
	assert.Contains(t, out, "driving, hindi")
}

func TestPaneView_EmptySummary(t *testing.T) {
	s := view.New()
	s, _ = s.RequestSummary("9")
	s = s.SummaryLoaded("9", jobs.Summary{})

	p := detail.FromState(s, "9")
	assert.Equal(t, jobs.NoSummary, p.Text)
	assert.Contains(t, p.View(), jobs.NoSummary)
}
