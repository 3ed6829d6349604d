// Package detail renders the lazily loaded summary slot of a job card.
//
// A summary is only requested when the user asks for it, so the slot moves
// through hidden, loading and ready (or failed) states. Failures are shown
// inline under the job they belong to and never affect the rest of the list.
package detail
