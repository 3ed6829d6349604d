package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals // Package-level printer for count formatting.
var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// JobsFoundText is the list header, e.g. "1,204 Jobs Found".
func JobsFoundText(n int) string {
	return FormatCount(n) + " Jobs Found"
}

// JobsOfTotalText is shown when filters hide part of the list.
func JobsOfTotalText(shown, total int) string {
	return printer.Sprintf("%d of %d Jobs", shown, total)
}
