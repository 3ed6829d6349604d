package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectOutputMode(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("CI", "")

	assert.Equal(t, OutputModePlain, DetectOutputMode(false, false, true))
	assert.Equal(t, OutputModePlain, DetectOutputMode(true, true, false))
	assert.Equal(t, OutputModeStyled, DetectOutputMode(true, false, false))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, OutputModePlain, DetectOutputMode(true, false, false))

	t.Setenv("NO_COLOR", "")
	t.Setenv("CI", "true")
	assert.Equal(t, OutputModePlain, DetectOutputMode(false, false, false))
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "unknown", OutputMode(9).String())
}

func TestTerminalWidth_Fallback(t *testing.T) {
	// Test binaries run without a terminal on stdout.
	if IsTTY() {
		t.Skip("stdout is a terminal")
	}
	assert.Equal(t, defaultWidth, TerminalWidth())
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "7", FormatCount(7))
	assert.Equal(t, "1,204", FormatCount(1204))
	assert.Equal(t, "1,204 Jobs Found", JobsFoundText(1204))
	assert.Equal(t, "3 of 1,000 Jobs", JobsOfTotalText(3, 1000))
}
