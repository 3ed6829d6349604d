package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jobscraperpro/jobview/internal/config"
	"github.com/jobscraperpro/jobview/internal/jobs"
	"github.com/jobscraperpro/jobview/internal/tui"
	"github.com/jobscraperpro/jobview/internal/tui/detail"
)

const (
	plainEmptyTitle = "No Jobs Found"
	plainEmptyHint  = "Try adjusting your search or filters."
	tabPadding      = 2
)

// jobRecord is the JSON shape of a job: the API fields plus the resolved
// apply link.
type jobRecord struct {
	jobs.Job

	ApplyURL string `json:"apply_url"`
}

func toRecords(list []jobs.Job) []jobRecord {
	out := make([]jobRecord, 0, len(list))
	for _, j := range list {
		out = append(out, jobRecord{Job: j, ApplyURL: j.ApplyURL()})
	}
	return out
}

func cardOptions() tui.CardOptions {
	return tui.CardOptions{
		Now:          now(),
		AbsoluteDate: config.GetGlobalConfig().UI.DateFormat == config.DateAbsolute,
		Width:        tui.TerminalWidth(),
	}
}

// renderJobs writes list in the given format. footer, when set, follows the
// human-readable formats.
func renderJobs(cmd *cobra.Command, list []jobs.Job, format, footer string) error {
	w := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return writeJSON(w, toRecords(list))
	case config.FormatNDJSON:
		return writeNDJSON(w, toRecords(list))
	}

	if outputMode(cmd) != tui.OutputModePlain {
		out := tui.RenderJobList(list, cardOptions())
		if footer != "" {
			out += "\n" + tui.SubtleStyle.Render(footer)
		}
		_, err := fmt.Fprintln(w, out)
		return err
	}
	if err := writeJobsTable(w, list); err != nil {
		return err
	}
	if footer != "" {
		_, err := fmt.Fprintln(w, footer)
		return err
	}
	return nil
}

// writeJobsTable renders the plain table used for pipes and NO_COLOR.
func writeJobsTable(w io.Writer, list []jobs.Job) error {
	if len(list) == 0 {
		_, err := fmt.Fprintf(w, "%s\n%s\n", plainEmptyTitle, plainEmptyHint)
		return err
	}

	absolute := config.GetGlobalConfig().UI.DateFormat == config.DateAbsolute
	at := now()

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tLOCATION\tEXPERIENCE\tSALARY\tPOSTED\tAPPLY")
	for _, j := range list {
		posted := jobs.PostedLabel(j.PostedDate, at, absolute)
		if posted == "" {
			posted = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			j.ID, cell(j.Title), cell(j.DisplayLocation()), cell(j.DisplayExperience()),
			cell(j.DisplaySalary()), posted, j.ApplyURL())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, tui.JobsFoundText(len(list)))
	return err
}

// renderJob writes a single job.
func renderJob(cmd *cobra.Command, job jobs.Job, format string) error {
	w := cmd.OutOrStdout()
	record := jobRecord{Job: job, ApplyURL: job.ApplyURL()}
	switch format {
	case config.FormatJSON:
		return writeJSON(w, record)
	case config.FormatNDJSON:
		return writeNDJSON(w, []jobRecord{record})
	}

	if outputMode(cmd) != tui.OutputModePlain {
		_, err := fmt.Fprintln(w, tui.RenderJobCard(job, detail.Pane{}, cardOptions()))
		return err
	}

	title := job.Title
	if strings.TrimSpace(title) == "" {
		title = "Untitled position"
	}
	lines := []string{
		title,
		"ID:         " + job.ID.String(),
		"Location:   " + job.DisplayLocation(),
		"Salary:     " + job.DisplaySalary(),
		"Experience: " + job.DisplayExperience(),
		"Openings:   " + job.DisplayOpenings(),
	}
	absolute := config.GetGlobalConfig().UI.DateFormat == config.DateAbsolute
	if posted := jobs.PostedLabel(job.PostedDate, now(), absolute); posted != "" {
		lines = append(lines, "Posted:     "+posted)
	}
	lines = append(lines, "Apply:      "+job.ApplyURL())
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// renderSummaries writes summary results in argument order.
func renderSummaries(cmd *cobra.Command, results []summaryResult, format string) error {
	w := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return writeJSON(w, results)
	case config.FormatNDJSON:
		return writeNDJSON(w, results)
	}

	styled := outputMode(cmd) != tui.OutputModePlain
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if styled {
			fmt.Fprintln(w, tui.HeaderStyle.Render("Job "+r.ID.String()))
			fmt.Fprintln(w, summaryPane(r).View())
			continue
		}
		fmt.Fprintf(w, "Job %s\n", r.ID)
		if r.Error != "" {
			fmt.Fprintf(w, "  %s\n", r.Error)
			continue
		}
		fmt.Fprintf(w, "  %s\n", orNoSummary(r.Summary))
		if len(r.Skills) > 0 {
			fmt.Fprintf(w, "  Skills: %s\n", strings.Join(r.Skills, ", "))
		}
	}
	return nil
}

func summaryPane(r summaryResult) detail.Pane {
	if r.Error != "" {
		return detail.Pane{Status: detail.StatusError, Err: r.Error}
	}
	return detail.Pane{
		Status: detail.StatusReady,
		Text:   orNoSummary(r.Summary),
		Skills: r.Skills,
		Width:  tui.TerminalWidth(),
	}
}

func orNoSummary(s string) string {
	if s == "" {
		return jobs.NoSummary
	}
	return s
}

// cell keeps a value on one table row.
func cell(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeNDJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}
