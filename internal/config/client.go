package config

import (
	"os"

	"golang.org/x/term"
)

// ClientConfig stores the client specific configuration.
type ClientConfig struct {
	// TermColorsEnable controls ANSI colors for the version banner and
	// interrupt-driven stats output.
	TermColorsEnable bool `json:"TermColorsEnable"`
	// Quiet suppresses the end-of-run suppression summary.
	Quiet bool `json:"Quiet"`
}

func newDefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		TermColorsEnable: defaultTermColorsEnable(),
	}
}

// defaultTermColorsEnable enables colors only on a real terminal and
// honors the NO_COLOR convention.
func defaultTermColorsEnable() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
