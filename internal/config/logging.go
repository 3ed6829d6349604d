package config

import (
	"github.com/jobscraperpro/jobview/internal/logging"
)

// LoggingOptions converts the logging section into logger settings.
// Logs go to logging.file, or the default log file under the config
// directory when none is set. debug switches to the debug level with
// caller annotations and, unless the TUI owns the terminal, writes
// console output to stderr instead.
func (c *Config) LoggingOptions(debug, interactive bool) logging.Config {
	out := logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		Output: logging.OutputStderr,
		File:   c.Logging.File,
	}
	if out.File == "" {
		if path, err := DefaultLogFile(); err == nil {
			out.File = path
		}
	}
	if debug {
		out.Level = "debug"
		out.Caller = true
		if !interactive {
			out.File = ""
			out.Format = logging.FormatConsole
		}
	}
	if out.File != "" {
		out.Output = logging.OutputFile
	}
	return out
}
