// Package view holds the job browser's view state and the transitions that
// move it. Transitions are pure: each returns a new State and, when I/O is
// required, an Effect describing the request the caller should perform.
package view

import (
	"maps"

	"github.com/jobscraperpro/jobview/internal/jobs"
)

// User-facing failure messages. Transport detail never reaches the view.
const (
	MsgJobsFetchFailed    = "Failed to fetch jobs"
	MsgSummaryFetchFailed = "Failed to fetch job summary"
)

// EffectKind names the I/O a transition asks for.
type EffectKind int

const (
	// EffectNone means the transition completed without I/O.
	EffectNone EffectKind = iota
	// EffectFetchJobs asks for the job list.
	EffectFetchJobs
	// EffectFetchSummary asks for the summary of Effect.JobID.
	EffectFetchSummary
)

func (k EffectKind) String() string {
	switch k {
	case EffectNone:
		return "none"
	case EffectFetchJobs:
		return "fetch_jobs"
	case EffectFetchSummary:
		return "fetch_summary"
	default:
		return "unknown"
	}
}

// Effect is a request for I/O produced by a transition.
type Effect struct {
	Kind  EffectKind
	JobID jobs.JobID
	// Seq identifies a jobs fetch so stale responses can be dropped.
	Seq uint64
}

// SummaryEntry is the cached summary (or failure) for one job.
type SummaryEntry struct {
	Data    *jobs.Summary
	Err     string
	Visible bool
}

// Failed reports whether the fetch for this entry failed.
func (e SummaryEntry) Failed() bool { return e.Err != "" }

// State is the complete view state of the job browser.
type State struct {
	Jobs        []jobs.Job
	Loading     bool
	Err         string
	Filter      jobs.Filter
	ShowFilters bool

	Summaries      map[jobs.JobID]SummaryEntry
	SummaryLoading map[jobs.JobID]bool

	// Cause is the last jobs fetch error, kept for logging only.
	Cause error

	jobsSeq uint64
}

// New returns the initial state: no jobs, not loading, filters hidden.
func New() State {
	return State{
		Jobs:           []jobs.Job{},
		Summaries:      map[jobs.JobID]SummaryEntry{},
		SummaryLoading: map[jobs.JobID]bool{},
	}
}

// clone copies the maps so a transition never mutates its receiver.
func (s State) clone() State {
	s.Summaries = maps.Clone(s.Summaries)
	if s.Summaries == nil {
		s.Summaries = map[jobs.JobID]SummaryEntry{}
	}
	s.SummaryLoading = maps.Clone(s.SummaryLoading)
	if s.SummaryLoading == nil {
		s.SummaryLoading = map[jobs.JobID]bool{}
	}
	return s
}

// StartJobsFetch marks the list as loading and asks for a fetch.
func (s State) StartJobsFetch() (State, Effect) {
	s.Loading = true
	s.Err = ""
	s.Cause = nil
	s.jobsSeq++
	return s, Effect{Kind: EffectFetchJobs, Seq: s.jobsSeq}
}

// JobsLoaded replaces the list with the sanitised records. A response for a
// superseded fetch is ignored.
func (s State) JobsLoaded(seq uint64, list []jobs.Job) State {
	if seq != s.jobsSeq {
		return s
	}
	s.Jobs = jobs.Sanitize(list)
	s.Loading = false
	s.Err = ""
	s.Cause = nil
	return s
}

// JobsFailed records a list failure. The previous list is kept.
func (s State) JobsFailed(seq uint64, err error) State {
	if seq != s.jobsSeq {
		return s
	}
	s.Loading = false
	s.Err = MsgJobsFetchFailed
	s.Cause = err
	return s
}

// RequestSummary toggles a cached summary, or starts its fetch. A request
// for a job whose fetch is already in flight does nothing.
func (s State) RequestSummary(id jobs.JobID) (State, Effect) {
	if entry, ok := s.Summaries[id]; ok {
		s = s.clone()
		entry.Visible = !entry.Visible
		s.Summaries[id] = entry
		return s, Effect{}
	}
	if s.SummaryLoading[id] {
		return s, Effect{}
	}
	s = s.clone()
	s.SummaryLoading[id] = true
	return s, Effect{Kind: EffectFetchSummary, JobID: id}
}

// SummaryLoaded stores a fetched summary and shows it.
func (s State) SummaryLoaded(id jobs.JobID, summary jobs.Summary) State {
	s = s.clone()
	s.Summaries[id] = SummaryEntry{Data: &summary, Visible: true}
	delete(s.SummaryLoading, id)
	return s
}

// SummaryFailed stores a failure for one job and shows it inline.
func (s State) SummaryFailed(id jobs.JobID) State {
	s = s.clone()
	s.Summaries[id] = SummaryEntry{Err: MsgSummaryFetchFailed, Visible: true}
	delete(s.SummaryLoading, id)
	return s
}

// SummaryCanceled drops the in-flight marker without caching anything, so a
// later request fetches again.
func (s State) SummaryCanceled(id jobs.JobID) State {
	if !s.SummaryLoading[id] {
		return s
	}
	s = s.clone()
	delete(s.SummaryLoading, id)
	return s
}

// SetSearch sets the free-text filter.
func (s State) SetSearch(v string) State {
	s.Filter.Search = v
	return s
}

// SetLocationFilter sets the location filter.
func (s State) SetLocationFilter(v string) State {
	s.Filter.Location = v
	return s
}

// SetExperienceFilter sets the experience filter.
func (s State) SetExperienceFilter(v string) State {
	s.Filter.Experience = v
	return s
}

// SetFilter replaces all three filters at once.
func (s State) SetFilter(f jobs.Filter) State {
	s.Filter = f
	return s
}

// ToggleFilters shows or hides the location/experience panel.
func (s State) ToggleFilters() State {
	s.ShowFilters = !s.ShowFilters
	return s
}

// ResetFilters clears every filter.
func (s State) ResetFilters() State {
	s.Filter.Reset()
	return s
}

// Visible returns the jobs that pass the current filter, in received order.
func (s State) Visible() []jobs.Job {
	return s.Filter.Apply(s.Jobs)
}

// Entry returns the cached summary entry for id.
func (s State) Entry(id jobs.JobID) (SummaryEntry, bool) {
	e, ok := s.Summaries[id]
	return e, ok
}

// InFlight reports whether a summary fetch for id is outstanding.
func (s State) InFlight(id jobs.JobID) bool {
	return s.SummaryLoading[id]
}

// Clone returns a copy that shares no maps or slices with s.
func (s State) Clone() State {
	s = s.clone()
	s.Jobs = append([]jobs.Job(nil), s.Jobs...)
	if s.Jobs == nil {
		s.Jobs = []jobs.Job{}
	}
	return s
}
