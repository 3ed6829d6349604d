package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState is the top-level screen of the job browser.
type ViewState int

const (
	// ViewStateLoading is shown until the first job list response arrives.
	ViewStateLoading ViewState = iota
	// ViewStateList is the job list, with or without results.
	ViewStateList
	// ViewStateQuitting is set once the user has asked to leave.
	ViewStateQuitting
)

func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// Layout constants.
const (
	defaultWidth         = 100
	defaultHeight        = 30
	minHeight            = 5
	borderPadding        = 2
	filterInputCharLimit = 100
	filterInputWidth     = 40
)

// LoadingState wraps the spinner shown while requests are outstanding.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState returns a spinner with the default loading message.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = InfoStyle
	return &LoadingState{spinner: s, message: "Loading jobs..."}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on tick messages.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// Frame returns the current spinner frame.
func (l *LoadingState) Frame() string {
	return l.spinner.View()
}

// RenderLoading returns the loading line. A nil state renders plain text.
func RenderLoading(loading *LoadingState) string {
	if loading == nil {
		return "Loading..."
	}
	return fmt.Sprintf("\n %s %s\n", loading.spinner.View(), loading.message)
}
