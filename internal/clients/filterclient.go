package clients

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/buildnoise/squelch/internal/config"
	"github.com/buildnoise/squelch/internal/filter"
	"github.com/buildnoise/squelch/internal/io/dlog"
	"github.com/buildnoise/squelch/internal/io/fs"
)

// FilterClient removes noisy assembler warning blocks from local input
// streams. Without file operands it consumes stdin; otherwise each file is
// processed as an independent stream (the three-line skip state never
// crosses a stream boundary). Accepted lines are relayed to stderr, which
// keeps stdout clean when squelch sits inside a build pipeline.
type FilterClient struct {
	config.Args

	stats  *stats
	output io.Writer
}

var _ Client = (*FilterClient)(nil)

// NewFilterClient creates a new filter client.
func NewFilterClient(args config.Args) (*FilterClient, error) {
	dlog.Client.Debug("Initiating filter client", args.String())

	return &FilterClient{
		Args:   args,
		stats:  newFilterStats(),
		output: os.Stderr,
	}, nil
}

// Start processes all input streams sequentially. Returns 0 when every
// stream reached EOF, 1 when an input failed to open or a read failed
// mid-stream (remaining inputs are skipped, matching the fail-fast
// semantics of a pipeline relay).
func (c *FilterClient) Start(ctx context.Context, statsCh <-chan string) int {
	statsCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go c.stats.Start(statsCtx, statsCh, config.Client.Quiet)

	for _, source := range c.inputSources() {
		if err := c.processSource(ctx, source); err != nil {
			dlog.Client.Error(source, err)
			return 1
		}
	}

	if !config.Client.Quiet {
		dlog.Client.Info("Filter stats", c.stats.summaryLine())
	}
	return 0
}

func (c *FilterClient) processSource(ctx context.Context, source string) error {
	processor := filter.NewDirectProcessor(filter.NewSuppressProcessor(),
		c.output, source)
	c.stats.track(processor.Stats())

	if source == stdinSource {
		return processor.ProcessReader(ctx, os.Stdin)
	}

	dlog.Client.Debug("Processing input file", source)
	reader, err := fs.Open(source)
	if err != nil {
		return err
	}
	defer reader.Close()
	return processor.ProcessReader(ctx, reader)
}

const stdinSource = "stdin"

// inputSources returns the stream names to process, resolved from the
// comma separated -files argument. Empty means stdin.
func (c *FilterClient) inputSources() []string {
	if c.What == "" {
		return []string{stdinSource}
	}

	var sources []string
	for _, file := range strings.Split(c.What, ",") {
		if file = strings.TrimSpace(file); file != "" {
			sources = append(sources, file)
		}
	}
	return sources
}
