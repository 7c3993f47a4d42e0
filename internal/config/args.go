package config

import "fmt"

// Args holds the parsed command line arguments of the squelch client.
type Args struct {
	// ConfigFile is the path to an optional JSON configuration file.
	ConfigFile string
	// LogDir overrides the directory for the file logger strategy.
	LogDir string
	// Logger selects the logger strategy (file, stderr, none).
	Logger string
	// LogLevel selects the maximum log level.
	LogLevel string
	// NoColor disables ANSI terminal colors.
	NoColor bool
	// Quiet suppresses the end-of-run suppression summary.
	Quiet bool
	// What holds the comma separated input file list. Empty means stdin.
	What string
}

func (a Args) String() string {
	return fmt.Sprintf("Args(ConfigFile:%s,LogDir:%s,Logger:%s,LogLevel:%s,"+
		"NoColor:%t,Quiet:%t,What:%s)",
		a.ConfigFile, a.LogDir, a.Logger, a.LogLevel, a.NoColor, a.Quiet, a.What)
}
