package constants

import "time"

// Timeout constants used throughout the application
const (
	// StatsTimerDuration is the interval for client stats reporting
	StatsTimerDuration = 3 * time.Second
)
