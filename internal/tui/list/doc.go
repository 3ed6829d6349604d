// Package listview provides a scrolling list for Bubble Tea programs whose
// items render to several lines each, such as job cards.
//
// Only the window of items around the cursor is rendered on each frame, so
// large job lists stay responsive. Navigation covers up/down, j/k, g/G,
// PgUp/PgDn and Home/End.
package listview
