package config

import "flag"

// parseFlags defines and parses CLI flags on top of cfg.
// Flag defaults are the values already loaded, so unset flags change nothing.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("todoboard", flag.ContinueOnError)
	}

	// Board layout
	fs.IntVar(&cfg.Columns, "columns", cfg.Columns, "Number of card columns (1-8)")
	fs.BoolVar(&cfg.AltScreen, "alt-screen", cfg.AltScreen, "Use the terminal alternate screen")

	// Ids
	fs.StringVar(&cfg.IDFormat, "id-format", cfg.IDFormat, "Task id format (uuid|ulid)")

	// Logging
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Log directory (empty disables the log file)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log lines")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller location in log lines")

	return fs.Parse(args)
}
