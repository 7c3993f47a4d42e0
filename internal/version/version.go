// Package version provides version information and display utilities for
// squelch.
package version

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/buildnoise/squelch/internal/config"
)

const (
	// Name of the tool.
	Name string = "Squelch"
	// Version of the tool.
	Version string = "1.0.0"
	// Additional information for squelch
	Additional string = "Keep your build logs quiet!"
)

// String returns a plain text representation of the version information.
func String() string {
	return fmt.Sprintf("%s %v %s", Name, Version, Additional)
}

// PaintedString returns a color formatted version string for terminal
// environments, or the plain string when colors are disabled.
func PaintedString() string {
	if config.Client == nil || !config.Client.TermColorsEnable {
		return String()
	}

	name := color.New(color.FgYellow, color.BgBlue, color.Bold).
		Sprintf(" %s ", Name)
	version := color.New(color.FgBlue, color.BgYellow, color.Bold).
		Sprintf(" %s ", Version)
	additional := color.New(color.FgWhite, color.BgMagenta, color.Underline).
		Sprintf(" %s ", Additional)

	return fmt.Sprintf("%s%s%s", name, version, additional)
}

// Print the version.
func Print() {
	fmt.Println(PaintedString())
}

// PrintAndExit prints the program version and exits.
func PrintAndExit() {
	Print()
	os.Exit(0)
}
