package jobs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscraperpro/jobview/internal/jobs"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "comma suffix", title: "Store Manager, Mumbai", want: "Store Manager"},
		{name: "space suffix lower", title: "Delivery Partner mumbai", want: "Delivery Partner"},
		{name: "upper case", title: "Shift Lead , MUMBAI", want: "Shift Lead"},
		{name: "trailing whitespace", title: "Picker, Mumbai  ", want: "Picker"},
		{name: "no suffix", title: "Backend Engineer", want: "Backend Engineer"},
		{name: "mumbai in the middle", title: "Mumbai Hub Supervisor", want: "Mumbai Hub Supervisor"},
		{name: "suffix glued to word", title: "Navimumbai", want: "Navi"},
		{name: "empty", title: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jobs.CleanTitle(tt.title))
		})
	}
}

func TestSanitize_DoesNotMutateInput(t *testing.T) {
	in := []jobs.Job{{ID: "1", Title: "Rider, Mumbai"}, {ID: "2", Title: "Packer"}}

	out := jobs.Sanitize(in)

	assert.Equal(t, "Rider", out[0].Title)
	assert.Equal(t, "Packer", out[1].Title)
	assert.Equal(t, "Rider, Mumbai", in[0].Title)
}

func TestJob_UnmarshalJSON(t *testing.T) {
	payload := `[
		{"id": 42, "title": "Rider", "openings": 3, "link": "https://example.com/42"},
		{"id": "abc", "title": "Picker", "openings": "5 openings", "posted_date": "2025-01-02"},
		{"id": null, "title": "Ghost", "openings": null}
	]`

	var list []jobs.Job
	require.NoError(t, json.Unmarshal([]byte(payload), &list))
	require.Len(t, list, 3)

	assert.Equal(t, jobs.JobID("42"), list[0].ID)
	assert.Equal(t, jobs.FlexString("3"), list[0].Openings)
	assert.Equal(t, jobs.JobID("abc"), list[1].ID)
	assert.Equal(t, "5 openings", list[1].DisplayOpenings())
	assert.Equal(t, "2025-01-02", list[1].PostedDate)
	assert.Equal(t, jobs.JobID(""), list[2].ID)
	assert.Equal(t, jobs.NoOpenings, list[2].DisplayOpenings())
}

func TestJob_ApplyURL(t *testing.T) {
	tests := []struct {
		name string
		job  jobs.Job
		want string
	}{
		{name: "url wins", job: jobs.Job{URL: "u", Link: "l", ApplyLink: "a"}, want: "u"},
		{name: "link next", job: jobs.Job{Link: "l", ApplyLink: "a"}, want: "l"},
		{name: "apply link last", job: jobs.Job{ApplyLink: "a"}, want: "a"},
		{name: "none", job: jobs.Job{}, want: jobs.NoApplyURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.job.ApplyURL())
		})
	}
}

func TestJob_DisplayFallbacks(t *testing.T) {
	var j jobs.Job
	assert.Equal(t, jobs.NoLocation, j.DisplayLocation())
	assert.Equal(t, jobs.NoSalary, j.DisplaySalary())
	assert.Equal(t, jobs.NoExperience, j.DisplayExperience())
	assert.Equal(t, jobs.NoOpenings, j.DisplayOpenings())

	j = jobs.Job{Location: "Andheri", Salary: "Rs. 20,000", Experience: "0-1 years", Openings: "4"}
	assert.Equal(t, "Andheri", j.DisplayLocation())
	assert.Equal(t, "Rs. 20,000", j.DisplaySalary())
	assert.Equal(t, "0-1 years", j.DisplayExperience())
	assert.Equal(t, "4", j.DisplayOpenings())
}
