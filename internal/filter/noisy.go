// Package filter implements the noisy warning suppression at the heart of
// squelch. The assembler emits a known three-line diagnostic block when an
// object file uses a deprecated section name; the filter drops these blocks
// from the stream and forwards every other line verbatim.
package filter

import "bytes"

// Substrings identifying the header line of a noisy block.
var (
	sectionWarning    = []byte("warning: section")
	sectionDeprecated = []byte("is deprecated")
	sectionRenameNote = []byte("note: change section name to")
)

// FollowOnLines is the number of lines the toolchain always emits directly
// after a noisy header line. They are discarded together with the header
// without being inspected.
const FollowOnLines = 2

// NoisyHeader reports whether the line starts a noisy three-line block.
// The asymmetric two-clause condition mirrors the exact toolchain output
// format and is deliberately not generalized: "warning: section" alone
// does not match, "note: change section name to" alone does.
func NoisyHeader(line []byte) bool {
	if bytes.Contains(line, sectionWarning) && bytes.Contains(line, sectionDeprecated) {
		return true
	}
	return bytes.Contains(line, sectionRenameNote)
}
