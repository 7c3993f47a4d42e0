// Package config provides configuration management for the squelch client.
// It layers configuration from multiple sources with the following
// precedence (highest to lowest):
//
// 1. Command-line arguments
// 2. Environment variables
// 3. Configuration file (JSON)
// 4. Default values
package config

import (
	"encoding/json"
	"os"

	"github.com/buildnoise/squelch/internal/constants"
	"github.com/buildnoise/squelch/internal/errs"
)

const (
	// DefaultLogLevel specifies the default log level (obviously)
	DefaultLogLevel string = "info"
	// DefaultLogger specifies the default logger strategy. The filtered
	// data stream owns stderr, so logs go to a file by default.
	DefaultLogger string = "file"
	// InterruptTimeoutS specifies the Ctrl+C stats pause interval.
	InterruptTimeoutS int = constants.InterruptTimeoutSeconds
)

// Common holds the shared configuration. This global variable provides
// access to shared settings after Setup ran.
var Common *CommonConfig

// Client holds the client configuration. This global variable provides
// access to client settings after Setup ran.
var Client *ClientConfig

// Setup initializes the squelch configuration from multiple sources.
// It creates default configurations, parses an optional configuration file,
// applies environment variables and command-line arguments, and makes the
// final configuration available via the global variables.
//
// This function panics on configuration errors to make sure the process
// cannot start with invalid configuration.
func Setup(args *Args, additionalArgs []string) {
	initializer := initializer{
		Common: newDefaultCommonConfig(),
		Client: newDefaultClientConfig(),
	}
	if err := initializer.parseConfig(args); err != nil {
		panic(err)
	}
	if err := initializer.transformConfig(args, additionalArgs); err != nil {
		panic(err)
	}

	// Make config accessible globally
	Common = initializer.Common
	Client = initializer.Client
}

type initializer struct {
	Common *CommonConfig `json:"Common"`
	Client *ClientConfig `json:"Client"`
}

// parseConfig merges an optional JSON configuration file over the defaults.
func (i *initializer) parseConfig(args *Args) error {
	if args.ConfigFile == "" || args.ConfigFile == "none" {
		return nil
	}
	data, err := os.ReadFile(args.ConfigFile)
	if err != nil {
		return errs.Wrapf(errs.ErrInvalidConfig, "unable to read config file %s: %v",
			args.ConfigFile, err)
	}
	if err := json.Unmarshal(data, i); err != nil {
		return errs.Wrapf(errs.ErrInvalidConfig, "unable to parse config file %s: %v",
			args.ConfigFile, err)
	}
	return nil
}

// transformConfig applies environment variables and command line arguments
// on top of the parsed configuration.
func (i *initializer) transformConfig(args *Args, additionalArgs []string) error {
	if logLevel := os.Getenv("SQUELCH_LOG_LEVEL"); logLevel != "" {
		i.Common.LogLevel = logLevel
	}
	if Env("SQUELCH_QUIET") {
		i.Client.Quiet = true
	}

	if args.LogDir != "" {
		i.Common.LogDir = args.LogDir
	}
	if args.Logger != "" {
		i.Common.Logger = args.Logger
	}
	if args.LogLevel != "" {
		i.Common.LogLevel = args.LogLevel
	}
	if args.NoColor {
		i.Client.TermColorsEnable = false
	}
	if args.Quiet {
		i.Client.Quiet = true
	}

	// Bare positional arguments are additional input files.
	for _, file := range additionalArgs {
		if args.What == "" {
			args.What = file
			continue
		}
		args.What += "," + file
	}

	switch i.Common.Logger {
	case "file", "stderr", "none":
	default:
		return errs.Wrapf(errs.ErrInvalidConfig, "unknown logger strategy %s",
			i.Common.Logger)
	}
	return nil
}
