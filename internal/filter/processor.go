package filter

// LineProcessor decides for every input line whether it is forwarded.
// The returned result is only valid until the next ProcessLine call.
type LineProcessor interface {
	ProcessLine(line []byte, lineNum int, stats *Stats) (result []byte, shouldSend bool)
	Flush() []byte // For any buffered output.
}

// SuppressProcessor drops noisy three-line blocks and forwards everything
// else unmodified. It carries the skip state across lines of one stream and
// must not be reused across streams.
type SuppressProcessor struct {
	skipRemaining int
}

// NewSuppressProcessor creates a new suppress processor.
func NewSuppressProcessor() *SuppressProcessor {
	return &SuppressProcessor{}
}

// ProcessLine processes a single line. A line inside a previously started
// noisy block is discarded unconditionally, without testing it against the
// header predicate. A header line starts a new block: itself plus the next
// FollowOnLines lines are discarded. Every other line is forwarded verbatim.
func (sp *SuppressProcessor) ProcessLine(line []byte, lineNum int,
	stats *Stats) ([]byte, bool) {

	if sp.skipRemaining > 0 {
		sp.skipRemaining--
		if stats != nil {
			stats.updateLineSuppressed()
		}
		return nil, false
	}

	if NoisyHeader(line) {
		sp.skipRemaining = FollowOnLines
		if stats != nil {
			stats.updateLineSuppressed()
			stats.updateBlockSuppressed()
		}
		return nil, false
	}

	return line, true
}

// Flush returns nothing, the suppress processor never buffers output. A
// stream ending mid-block simply leaves the remaining skip count unused.
func (sp *SuppressProcessor) Flush() []byte {
	return nil
}
