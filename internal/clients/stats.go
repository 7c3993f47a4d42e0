package clients

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/buildnoise/squelch/internal/config"
	"github.com/buildnoise/squelch/internal/constants"
	"github.com/buildnoise/squelch/internal/filter"
	"github.com/buildnoise/squelch/internal/io/dlog"
)

// stats aggregates the counters of all processed input streams and reports
// them, either periodically to the log or on demand when the user interrupts
// the run.
type stats struct {
	mutex   sync.Mutex
	tracked []*filter.Stats
}

func newFilterStats() *stats {
	return &stats{}
}

// track registers the counters of one input stream.
func (s *stats) track(streamStats *filter.Stats) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.tracked = append(s.tracked, streamStats)
}

// Start begins the statistics reporting loop: periodic log updates whenever
// the counters changed, and immediate terminal output when a message arrives
// on statsCh (Ctrl+C). Runs until the context is canceled.
func (s *stats) Start(ctx context.Context, statsCh <-chan string, quiet bool) {
	statsTimer := time.NewTimer(constants.StatsTimerDuration)
	defer statsTimer.Stop()

	var linesLast uint64
	for {
		if !statsTimer.Stop() {
			select {
			case <-statsTimer.C:
			default:
			}
		}
		statsTimer.Reset(constants.StatsTimerDuration)

		var force bool
		var messages []string

		select {
		case message := <-statsCh:
			messages = append(messages, message)
			force = true
		case <-statsTimer.C:
		case <-ctx.Done():
			return
		}

		lines, _, _, _ := s.totals()
		if (lines == linesLast || quiet) && !force {
			continue
		}

		if force {
			messages = append(messages,
				fmt.Sprintf("Filter stats: %s", s.summaryLine()))
			s.printStatsDueInterrupt(messages)
		} else {
			dlog.Client.Debug("STATS", s.summaryLine())
		}

		linesLast = lines
	}
}

// printStatsDueInterrupt displays statistics on the terminal when triggered
// by SIGINT, pausing the log output stream while the user reads them.
func (s *stats) printStatsDueInterrupt(messages []string) {
	dlog.Client.Pause()
	for i, message := range messages {
		if i > 0 && config.Client.TermColorsEnable {
			fmt.Println(color.New(color.FgBlack, color.BgYellow).Sprint(message))
			continue
		}
		fmt.Printf(" %s\n", message)
	}
	time.Sleep(time.Second * time.Duration(constants.InterruptTimeoutSeconds))
	dlog.Client.Resume()
}

// totals sums the counters over all tracked streams.
func (s *stats) totals() (lines, transmitted, suppressedLines, suppressedBlocks uint64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, t := range s.tracked {
		lines += t.TotalLineCount()
		transmitted += t.TransmittedCount()
		suppressedLines += t.SuppressedLineCount()
		suppressedBlocks += t.SuppressedBlockCount()
	}
	return
}

// summaryLine formats the aggregated counters as key=value pairs.
func (s *stats) summaryLine() string {
	lines, transmitted, suppressedLines, suppressedBlocks := s.totals()

	perc := int(constants.PercentageMultiplier)
	if lines > 0 {
		perc = int(float64(transmitted) / float64(lines) * constants.PercentageMultiplier)
	}

	sb := strings.Builder{}
	fmt.Fprintf(&sb, "lines=%d", lines)
	fmt.Fprintf(&sb, "|transmitted=%d", transmitted)
	fmt.Fprintf(&sb, "|suppressedlines=%d", suppressedLines)
	fmt.Fprintf(&sb, "|suppressedblocks=%d", suppressedBlocks)
	fmt.Fprintf(&sb, "|transmitted%%=%d", perc)
	return sb.String()
}
