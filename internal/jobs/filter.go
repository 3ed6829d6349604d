package jobs

import "strings"

// Filter narrows the displayed job set. All matching is case-insensitive
// substring matching; an empty field places no constraint.
type Filter struct {
	Search     string `json:"search,omitempty"`
	Location   string `json:"location,omitempty"`
	Experience string `json:"experience,omitempty"`
}

// IsZero reports whether no constraint is set.
func (f Filter) IsZero() bool {
	return f.Search == "" && f.Location == "" && f.Experience == ""
}

// Reset clears every constraint.
func (f *Filter) Reset() { *f = Filter{} }

// Matches reports whether j passes all three predicates.
func (f Filter) Matches(j Job) bool {
	matchesSearch := f.Search == "" ||
		containsFold(j.Title, f.Search) ||
		containsFold(j.Location, f.Search)
	matchesLocation := f.Location == "" || containsFold(j.Location, f.Location)
	matchesExperience := f.Experience == "" || containsFold(j.Experience, f.Experience)

	return matchesSearch && matchesLocation && matchesExperience
}

// Apply returns the jobs that match f, in received order.
// The input slice is not modified.
func (f Filter) Apply(list []Job) []Job {
	if f.IsZero() {
		out := make([]Job, len(list))
		copy(out, list)
		return out
	}
	out := make([]Job, 0, len(list))
	for _, j := range list {
		if f.Matches(j) {
			out = append(out, j)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
