// Package pagination slices and orders job lists for CLI output.
//
// The job board returns the whole collection in one response, so paging is
// applied client-side after filtering:
//   - Params: --limit/--offset or --page/--page-size, plus --sort
//   - Meta: page numbers and totals for the table footer
//   - JobSorter: stable ordering by a job field
package pagination
