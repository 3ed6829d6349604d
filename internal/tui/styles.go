package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorPrimary = lipgloss.Color("63")
	ColorAccent  = lipgloss.Color("86")
	ColorSubtle  = lipgloss.Color("245")
	ColorError   = lipgloss.Color("196")
	ColorLink    = lipgloss.Color("39")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(ColorPrimary).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorSubtle)

	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	InfoStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	SubtleStyle = lipgloss.NewStyle().Foreground(ColorSubtle)

	LinkStyle = lipgloss.NewStyle().Foreground(ColorLink).Underline(true)

	// CardStyle frames an unselected job card.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	// SelectedCardStyle frames the job card under the cursor.
	SelectedCardStyle = CardStyle.BorderForeground(ColorAccent)

	JobTitleStyle = lipgloss.NewStyle().Bold(true)

	ActionStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ColorError).
			PaddingLeft(1)
)
