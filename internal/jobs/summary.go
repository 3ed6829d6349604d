package jobs

// NoSummary is shown when the summary endpoint returned no text.
const NoSummary = "No summary available"

// Summary is the backend-derived text and skill tags for one job.
type Summary struct {
	Summary string   `json:"summary,omitempty"`
	Skills  []string `json:"skills,omitempty"`
}

// Text returns the summary as plain text, or NoSummary.
func (s Summary) Text() string {
	if t := PlainText(s.Summary); t != "" {
		return t
	}
	return NoSummary
}
