package pagination

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jobscraperpro/jobview/internal/jobs"
)

// Sort fields accepted by --sort.
const (
	FieldTitle      = "title"
	FieldLocation   = "location"
	FieldExperience = "experience"
	FieldPosted     = "posted"
	FieldID         = "id"
)

// JobSorter orders jobs by one field. Ties keep received order.
type JobSorter struct {
	compare map[string]func(a, b jobs.Job) int
}

// NewJobSorter returns a JobSorter for the fields listed above.
func NewJobSorter() *JobSorter {
	return &JobSorter{
		compare: map[string]func(a, b jobs.Job) int{
			FieldTitle:      func(a, b jobs.Job) int { return cmpFold(a.Title, b.Title) },
			FieldLocation:   func(a, b jobs.Job) int { return cmpFold(a.Location, b.Location) },
			FieldExperience: func(a, b jobs.Job) int { return cmpFold(a.Experience, b.Experience) },
			FieldPosted:     func(a, b jobs.Job) int { return postedTime(a).Compare(postedTime(b)) },
			FieldID:         compareIDs,
		},
	}
}

// IsValidField reports whether field can be sorted on.
func (s *JobSorter) IsValidField(field string) bool {
	_, ok := s.compare[field]
	return ok
}

// ValidFields lists the sortable fields in alphabetical order.
func (s *JobSorter) ValidFields() []string {
	fields := make([]string, 0, len(s.compare))
	for f := range s.compare {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

// Validate returns ErrInvalidSortField for unknown fields. Empty is valid.
func (s *JobSorter) Validate(field string) error {
	if field == "" || s.IsValidField(field) {
		return nil
	}
	return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.ValidFields(), ", "))
}

// Sort returns a sorted copy of list. Unknown or empty fields return list unchanged.
// Jobs missing the field sort last in either order.
func (s *JobSorter) Sort(list []jobs.Job, field, order string) []jobs.Job {
	cmpFn, ok := s.compare[field]
	if !ok {
		return list
	}

	sorted := slices.Clone(list)
	slices.SortStableFunc(sorted, func(a, b jobs.Job) int {
		aMissing, bMissing := missing(a, field), missing(b, field)
		switch {
		case aMissing && bMissing:
			return 0
		case aMissing:
			return 1
		case bMissing:
			return -1
		}
		c := cmpFn(a, b)
		if order == SortOrderDesc {
			return -c
		}
		return c
	})
	return sorted
}

func missing(j jobs.Job, field string) bool {
	switch field {
	case FieldTitle:
		return strings.TrimSpace(j.Title) == ""
	case FieldLocation:
		return strings.TrimSpace(j.Location) == ""
	case FieldExperience:
		return strings.TrimSpace(j.Experience) == ""
	case FieldPosted:
		return postedTime(j).IsZero()
	default:
		return false
	}
}

func cmpFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func postedTime(j jobs.Job) time.Time {
	t, _ := jobs.ParseDate(j.PostedDate)
	return t
}

// compareIDs orders numeric ids numerically and everything else lexically,
// numbers first.
func compareIDs(a, b jobs.Job) int {
	an, aErr := strconv.ParseInt(a.ID.String(), 10, 64)
	bn, bErr := strconv.ParseInt(b.ID.String(), 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		return cmp.Compare(an, bn)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	default:
		return strings.Compare(a.ID.String(), b.ID.String())
	}
}
