// Package main provides the squelch command-line tool. Squelch sits in a
// build pipeline, reads linker/assembler output line by line and relays it
// to standard error with the known-noisy three-line section-deprecation
// warning blocks removed.
//
// Key features:
// - Filters stdin or a list of input files
// - Transparent zstd decompression of compressed input files
// - Interrupt-driven suppression statistics (hit Ctrl+C once)
// - Quiet and noColor output modes
//
// The canonical invocation takes no flags at all:
//
//	ld -o prog prog.o 2>&1 | squelch
package main

import (
	"context"
	"flag"
	"os"
	"sync"

	"github.com/buildnoise/squelch/internal/clients"
	"github.com/buildnoise/squelch/internal/config"
	"github.com/buildnoise/squelch/internal/io/dlog"
	"github.com/buildnoise/squelch/internal/io/signal"
	"github.com/buildnoise/squelch/internal/version"
)

// main parses command-line arguments, initializes configuration and logging,
// creates a FilterClient and relays the filtered streams. The exit status is
// 0 after all inputs reached end-of-file and non-zero when reading failed.
func main() {
	var args config.Args
	var displayVersion bool

	flag.BoolVar(&args.NoColor, "noColor", false, "Disable ANSII terminal colors")
	flag.BoolVar(&args.Quiet, "quiet", false, "Quiet output mode")
	flag.BoolVar(&displayVersion, "version", false, "Display version")
	flag.StringVar(&args.ConfigFile, "cfg", "", "Config file path")
	flag.StringVar(&args.LogDir, "logDir", "", `Log dir (default "~/log")`)
	flag.StringVar(&args.Logger, "logger", "",
		`Logger name (default "`+config.DefaultLogger+`")`)
	flag.StringVar(&args.LogLevel, "logLevel", "",
		`Log level (default "`+config.DefaultLogLevel+`")`)
	flag.StringVar(&args.What, "files", "", "File(s) to filter (default stdin)")

	flag.Parse()
	config.Setup(&args, flag.Args())

	if displayVersion {
		version.PrintAndExit()
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	dlog.Start(ctx, &wg)

	client, err := clients.NewFilterClient(args)
	if err != nil {
		panic(err)
	}

	status := client.Start(ctx, signal.InterruptCh(ctx))
	cancel()

	wg.Wait()

	os.Exit(status)
}
