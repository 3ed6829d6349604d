// Package jobs holds the job board's record types and the pure helpers applied
// to them on the client: title sanitising, filtering, posting age and summary
// text normalisation.
//
// Nothing in this package performs I/O. Records arrive from internal/api and
// are kept in internal/view.
package jobs
