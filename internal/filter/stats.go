package filter

import (
	"sync/atomic"

	"github.com/buildnoise/squelch/internal/constants"
)

// Stats tracks per-run filter counters. The counters are atomic because the
// interrupt-driven stats reporter reads them while the filter loop is still
// updating them.
type Stats struct {
	lineCount        atomic.Uint64
	transmitCount    atomic.Uint64
	suppressedLines  atomic.Uint64
	suppressedBlocks atomic.Uint64
}

func (s *Stats) updatePosition() {
	s.lineCount.Add(1)
}

func (s *Stats) updateLineTransmitted() {
	s.transmitCount.Add(1)
}

func (s *Stats) updateLineSuppressed() {
	s.suppressedLines.Add(1)
}

func (s *Stats) updateBlockSuppressed() {
	s.suppressedBlocks.Add(1)
}

// TotalLineCount returns the number of lines read so far.
func (s *Stats) TotalLineCount() uint64 {
	return s.lineCount.Load()
}

// TransmittedCount returns the number of lines forwarded so far.
func (s *Stats) TransmittedCount() uint64 {
	return s.transmitCount.Load()
}

// SuppressedLineCount returns the number of lines dropped so far.
func (s *Stats) SuppressedLineCount() uint64 {
	return s.suppressedLines.Load()
}

// SuppressedBlockCount returns the number of noisy blocks dropped so far.
func (s *Stats) SuppressedBlockCount() uint64 {
	return s.suppressedBlocks.Load()
}

// TransmittedPerc returns the percentage of read lines that were forwarded.
// Returns 100 before any line was read.
func (s *Stats) TransmittedPerc() int {
	lines := s.lineCount.Load()
	transmitted := s.transmitCount.Load()
	if lines == 0 || lines == transmitted {
		return int(constants.PercentageMultiplier)
	}
	return int(float64(transmitted) / float64(lines) * constants.PercentageMultiplier)
}
