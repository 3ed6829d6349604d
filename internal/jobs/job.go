package jobs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Display fallbacks for optional fields.
const (
	NoLocation   = "Location not specified"
	NoSalary     = "Salary not specified"
	NoExperience = "Experience not specified"
	NoOpenings   = "Openings not specified"

	// NoApplyURL is used when a posting carries no link at all.
	NoApplyURL = "#"
)

// mumbaiSuffix matches the city suffix the scraper leaves on titles,
// e.g. "Store Manager, Mumbai" or "Rider mumbai ".
var mumbaiSuffix = regexp.MustCompile(`(?i)\s*,?\s*mumbai\s*$`)

// JobID identifies a job. The API sends integer ids; strings are accepted too.
type JobID string

// UnmarshalJSON accepts a JSON number or string.
func (id *JobID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("job id: %w", err)
		}
		*id = JobID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("job id: %w", err)
	}
	*id = JobID(n.String())
	return nil
}

// String returns the id as sent to the API.
func (id JobID) String() string { return string(id) }

// FlexString decodes a JSON string, number or null into a string.
// Openings is a free-text column on some deployments and an integer on others.
type FlexString string

// UnmarshalJSON accepts a JSON string, number, bool or null.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*f = FlexString(data)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*f = FlexString(n.String())
	}
	return nil
}

// Job is a single posting returned by the listing endpoint.
type Job struct {
	ID         JobID      `json:"id"`
	Title      string     `json:"title"`
	Location   string     `json:"location,omitempty"`
	Salary     string     `json:"salary,omitempty"`
	Experience string     `json:"experience,omitempty"`
	Openings   FlexString `json:"openings,omitempty"`
	PostedDate string     `json:"posted_date,omitempty"`
	URL        string     `json:"url,omitempty"`
	Link       string     `json:"link,omitempty"`
	ApplyLink  string     `json:"apply_link,omitempty"`
}

// CleanTitle strips a trailing ", Mumbai" / " mumbai" (any case) from title.
func CleanTitle(title string) string {
	return mumbaiSuffix.ReplaceAllString(title, "")
}

// Sanitize returns a copy of list with every title cleaned.
func Sanitize(list []Job) []Job {
	out := make([]Job, len(list))
	for i, j := range list {
		j.Title = CleanTitle(j.Title)
		out[i] = j
	}
	return out
}

// ApplyURL returns the first link the posting carries, or "#".
func (j Job) ApplyURL() string {
	for _, u := range []string{j.URL, j.Link, j.ApplyLink} {
		if strings.TrimSpace(u) != "" {
			return u
		}
	}
	return NoApplyURL
}

// DisplayLocation returns the location or its placeholder.
func (j Job) DisplayLocation() string { return orDefault(j.Location, NoLocation) }

// DisplaySalary returns the salary or its placeholder.
func (j Job) DisplaySalary() string { return orDefault(j.Salary, NoSalary) }

// DisplayExperience returns the experience requirement or its placeholder.
func (j Job) DisplayExperience() string { return orDefault(j.Experience, NoExperience) }

// DisplayOpenings returns the openings count or its placeholder.
func (j Job) DisplayOpenings() string { return orDefault(string(j.Openings), NoOpenings) }

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
