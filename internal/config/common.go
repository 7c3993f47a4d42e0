package config

// CommonConfig stores configuration shared by all parts of the process.
type CommonConfig struct {
	// LogDir is the directory used by the file logger strategy.
	LogDir string `json:"LogDir"`
	// Logger is the logger strategy name (file, stderr, none).
	Logger string `json:"Logger"`
	// LogLevel is the maximum log level (error, warn, info, debug, trace).
	LogLevel string `json:"LogLevel"`
}

func newDefaultCommonConfig() *CommonConfig {
	return &CommonConfig{
		LogDir:   "~/log",
		Logger:   DefaultLogger,
		LogLevel: DefaultLogLevel,
	}
}
