package constants

// Numeric limits and configuration values
const (
	// InterruptTimeoutSeconds is the timeout for interrupt handling
	InterruptTimeoutSeconds = 3

	// LoggerBufferChannelMultiplier scales the logger channel buffer
	// by runtime.NumCPU() at runtime.
	LoggerBufferChannelMultiplier = 100

	// PercentageMultiplier is used for percentage calculations
	PercentageMultiplier = 100.0
)
