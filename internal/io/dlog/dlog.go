// Package dlog provides the asynchronous logger used by the squelch client.
// Log messages are formatted on the calling goroutine and written by a
// background flusher, so that logging never stalls the filter loop. The
// filtered data stream owns stderr, therefore the default strategy writes
// to a log file and never to the data stream.
package dlog

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/buildnoise/squelch/internal/config"
	"github.com/buildnoise/squelch/internal/constants"
)

// Client is the global logger instance, initialized by Start.
var Client *DLog

type level int

const (
	levelError level = iota
	levelWarn
	levelInfo
	levelDebug
	levelTrace
)

func (l level) String() string {
	switch l {
	case levelError:
		return "ERROR"
	case levelWarn:
		return "WARN"
	case levelInfo:
		return "INFO"
	case levelDebug:
		return "DEBUG"
	default:
		return "TRACE"
	}
}

func newLevel(s string) level {
	switch strings.ToLower(s) {
	case "error":
		return levelError
	case "warn":
		return levelWarn
	case "debug":
		return levelDebug
	case "trace":
		return levelTrace
	default:
		return levelInfo
	}
}

// DLog is a leveled logger writing via a buffered channel to one of the
// configured sink strategies ("file", "stderr" or "none").
type DLog struct {
	maxLevel level
	strategy string
	logDir   string

	sink     io.Writer
	sinkOnce sync.Once

	messages chan string
	// Held while a stats interrupt owns the terminal.
	pauseMutex sync.Mutex
}

// New creates a logger. Use Start for the global Client instance.
func New(strategy, logLevel, logDir string) *DLog {
	return &DLog{
		maxLevel: newLevel(logLevel),
		strategy: strategy,
		logDir:   logDir,
		messages: make(chan string, runtime.NumCPU()*constants.LoggerBufferChannelMultiplier),
	}
}

// Start initializes the global Client logger from the process configuration
// and launches the background flusher. The wait group is released once the
// context is canceled and all pending messages are drained.
func Start(ctx context.Context, wg *sync.WaitGroup) {
	Client = New(config.Common.Logger, config.Common.LogLevel, config.Common.LogDir)
	go Client.run(ctx, wg)
}

func (d *DLog) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case message := <-d.messages:
			d.write(message)
		case <-ctx.Done():
			for {
				select {
				case message := <-d.messages:
					d.write(message)
				default:
					return
				}
			}
		}
	}
}

// openSink resolves the sink lazily so that a run which never logs anything
// does not create a log directory.
func (d *DLog) openSink() {
	d.sinkOnce.Do(func() {
		switch d.strategy {
		case "stderr":
			d.sink = os.Stderr
		case "none":
			d.sink = io.Discard
		default:
			logDir := d.logDir
			if strings.HasPrefix(logDir, "~/") {
				if home, err := os.UserHomeDir(); err == nil {
					logDir = filepath.Join(home, logDir[2:])
				}
			}
			if err := os.MkdirAll(logDir, 0755); err != nil {
				d.sink = io.Discard
				return
			}
			logFile := filepath.Join(logDir, "squelch.log")
			file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				d.sink = io.Discard
				return
			}
			d.sink = file
		}
	})
}

func (d *DLog) write(message string) {
	d.openSink()
	d.pauseMutex.Lock()
	defer d.pauseMutex.Unlock()
	fmt.Fprintln(d.sink, message)
}

func (d *DLog) log(lv level, args []interface{}) string {
	message := d.format(lv, args)
	if lv > d.maxLevel {
		return message
	}
	select {
	case d.messages <- message:
	default:
		// Channel full, write synchronously rather than dropping.
		d.write(message)
	}
	return message
}

func (d *DLog) format(lv level, args []interface{}) string {
	sb := strings.Builder{}
	sb.WriteString(lv.String())
	sb.WriteByte('|')
	sb.WriteString(time.Now().Format("20060102-150405"))
	for _, arg := range args {
		sb.WriteByte('|')
		sb.WriteString(fmt.Sprint(arg))
	}
	return sb.String()
}

// Error logs an error message and returns it.
func (d *DLog) Error(args ...interface{}) string {
	return d.log(levelError, args)
}

// Warn logs a warning message and returns it.
func (d *DLog) Warn(args ...interface{}) string {
	return d.log(levelWarn, args)
}

// Info logs an info message and returns it.
func (d *DLog) Info(args ...interface{}) string {
	return d.log(levelInfo, args)
}

// Debug logs a debug message and returns it.
func (d *DLog) Debug(args ...interface{}) string {
	return d.log(levelDebug, args)
}

// Trace logs a trace message and returns it.
func (d *DLog) Trace(args ...interface{}) string {
	return d.log(levelTrace, args)
}

// FatalPanic logs the message synchronously and panics. Only used for
// conditions the process cannot start or continue from.
func (d *DLog) FatalPanic(args ...interface{}) {
	message := d.format(levelError, args)
	d.write(message)
	panic(message)
}

// Pause stops the log output stream, e.g. while interrupt-driven stats
// own the terminal. Must be followed by Resume.
func (d *DLog) Pause() {
	d.pauseMutex.Lock()
}

// Resume continues the log output stream after a Pause.
func (d *DLog) Resume() {
	d.pauseMutex.Unlock()
}
