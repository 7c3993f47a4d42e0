package filter

import (
	"bytes"
	"context"
	"io"

	"github.com/buildnoise/squelch/internal/constants"
	"github.com/buildnoise/squelch/internal/errs"
	"github.com/buildnoise/squelch/internal/io/pool"
)

// Flusher is implemented by output writers that buffer data. DirectProcessor
// flushes after every accepted line so that a downstream consumer sees each
// line as soon as possible.
type Flusher interface {
	Flush() error
}

// DirectProcessor drives an input stream through a LineProcessor without
// channels, writing accepted lines to the output writer. Lines are split on
// LF and forwarded with their original line terminator intact, so the output
// is byte-identical to the input minus the suppressed lines.
type DirectProcessor struct {
	processor LineProcessor
	output    io.Writer
	stats     *Stats
	sourceID  string
}

// NewDirectProcessor creates a new direct processor. The sourceID names the
// input stream for logging and stats (file path or "stdin").
func NewDirectProcessor(processor LineProcessor, output io.Writer,
	sourceID string) *DirectProcessor {

	return &DirectProcessor{
		processor: processor,
		output:    output,
		stats:     &Stats{},
		sourceID:  sourceID,
	}
}

// Stats returns the counters of this processor.
func (dp *DirectProcessor) Stats() *Stats {
	return dp.stats
}

// SourceID returns the name of the input stream.
func (dp *DirectProcessor) SourceID() string {
	return dp.sourceID
}

// ProcessReader consumes the reader line by line until EOF. EOF is the
// normal termination and not an error; any other read error is wrapped
// with errs.ErrReadFailed and returned. A trailing line without a
// terminator is processed as a final line.
func (dp *DirectProcessor) ProcessReader(ctx context.Context, reader io.Reader) error {
	chunk := make([]byte, constants.DefaultChunkSize)
	message := pool.BytesBuffer.Get().(*bytes.Buffer)
	defer pool.RecycleBytesBuffer(message)

	lineNum := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := reader.Read(chunk)
		if n > 0 {
			data := chunk[:n]
			for {
				lfIndex := bytes.IndexByte(data, '\n')
				if lfIndex == -1 {
					// Partial line, keep for the next chunk.
					message.Write(data)
					break
				}
				message.Write(data[:lfIndex+1])
				data = data[lfIndex+1:]
				lineNum++
				if err := dp.processLine(message.Bytes(), lineNum); err != nil {
					return err
				}
				message.Reset()
			}
		}

		if err != nil {
			if err == io.EOF {
				if message.Len() > 0 {
					lineNum++
					return dp.processLine(message.Bytes(), lineNum)
				}
				return nil
			}
			return errs.Wrapf(errs.ErrReadFailed, "%s: %v", dp.sourceID, err)
		}
	}
}

func (dp *DirectProcessor) processLine(line []byte, lineNum int) error {
	dp.stats.updatePosition()

	result, shouldSend := dp.processor.ProcessLine(line, lineNum, dp.stats)
	if !shouldSend {
		return nil
	}
	if _, err := dp.output.Write(result); err != nil {
		return err
	}
	dp.stats.updateLineTransmitted()

	if flusher, ok := dp.output.(Flusher); ok {
		return flusher.Flush()
	}
	return nil
}
