package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todoboard configuration file
# Values can be overridden by TODOBOARD_* environment variables or CLI flags

# Number of card columns on the board (1-8)
columns = 4

# Draw the board on the terminal alternate screen
alt_screen = true

# Task id format: uuid (random v4) or ulid (time sortable)
id_format = "uuid"

# Log directory (supports ~ expansion and %VAR% on Windows).
# Set to "" to disable the log file.
log_dir = "~/.todoboard"

# debug, info, warn or error
log_level = "info"

# text, json or logfmt
log_format = "text"

log_timestamps = false
log_caller = false
`
}
