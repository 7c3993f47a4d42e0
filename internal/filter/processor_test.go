package filter

import (
	"testing"

	"github.com/buildnoise/squelch/internal/testutil"
)

// run feeds lines through a fresh suppress processor and collects the
// forwarded ones.
func run(t *testing.T, lines []string) []string {
	t.Helper()

	sp := NewSuppressProcessor()
	stats := &Stats{}

	var out []string
	for i, line := range lines {
		if result, shouldSend := sp.ProcessLine([]byte(line), i+1, stats); shouldSend {
			out = append(out, string(result))
		}
	}
	return out
}

func TestSuppressProcessor(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "no noisy lines pass through",
			input:    []string{"A", "B", "C"},
			expected: []string{"A", "B", "C"},
		},
		{
			name:     "header plus two lines fully suppressed",
			input:    []string{"warning: section `.x' is deprecated", "x", "y"},
			expected: nil,
		},
		{
			name: "block suppressed in the middle of a stream",
			input: []string{"A", "warning: section .foo is deprecated",
				"x", "y", "B"},
			expected: []string{"A", "B"},
		},
		{
			name:     "rename note triggers suppression",
			input:    []string{"note: change section name to .bar", "x", "y", "Z"},
			expected: []string{"Z"},
		},
		{
			name:     "section warning alone passes through",
			input:    []string{"warning: section `.text' too large", "x"},
			expected: []string{"warning: section `.text' too large", "x"},
		},
		{
			name: "follow-on lines are not tested against the predicate",
			input: []string{"note: change section name to .a",
				"warning: section `.b' is deprecated", "y", "Z"},
			expected: []string{"Z"},
		},
		{
			name: "back to back blocks",
			input: []string{"warning: section .a is deprecated", "x", "y",
				"note: change section name to .b", "p", "q", "tail"},
			expected: []string{"tail"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, tt.input)
			testutil.AssertEqual(t, len(tt.expected), len(out))
			for i := range tt.expected {
				if i < len(out) {
					testutil.AssertEqual(t, tt.expected[i], out[i])
				}
			}
		})
	}
}

func TestSuppressProcessorStats(t *testing.T) {
	sp := NewSuppressProcessor()
	stats := &Stats{}

	lines := []string{"A", "warning: section .foo is deprecated", "x", "y", "B"}
	for i, line := range lines {
		stats.updatePosition()
		if _, shouldSend := sp.ProcessLine([]byte(line), i+1, stats); shouldSend {
			stats.updateLineTransmitted()
		}
	}

	testutil.AssertEqual(t, uint64(5), stats.TotalLineCount())
	testutil.AssertEqual(t, uint64(2), stats.TransmittedCount())
	testutil.AssertEqual(t, uint64(3), stats.SuppressedLineCount())
	testutil.AssertEqual(t, uint64(1), stats.SuppressedBlockCount())
	testutil.AssertEqual(t, 40, stats.TransmittedPerc())
}

func TestSuppressProcessorNilStats(t *testing.T) {
	sp := NewSuppressProcessor()

	// Must not panic without a stats instance.
	if _, shouldSend := sp.ProcessLine(
		[]byte("warning: section .a is deprecated"), 1, nil); shouldSend {
		t.Error("expected header line to be suppressed")
	}
	if _, shouldSend := sp.ProcessLine([]byte("x"), 2, nil); shouldSend {
		t.Error("expected follow-on line to be suppressed")
	}
}

func TestSuppressProcessorFlush(t *testing.T) {
	sp := NewSuppressProcessor()

	// Nothing buffered, even mid-block.
	sp.ProcessLine([]byte("note: change section name to .x"), 1, nil)
	if out := sp.Flush(); len(out) != 0 {
		t.Errorf("expected empty flush, got %q", out)
	}
}
