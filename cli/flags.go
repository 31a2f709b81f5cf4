package cli

const (
	FlagHome     = "home"
	FlagFormat   = "format"
	FlagLogLevel = "log-level"
)
