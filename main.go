package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	navigationservice "navsim/cmd/navigation_service"
	routesimulator "navsim/cmd/route_simulator"
	"navsim/internal/cli"
)

func main() {
	// quick path for global help
	if len(os.Args) == 2 && (os.Args[1] == "--help" || os.Args[1] == "-h") {
		cli.PrintUsage(os.Stdout)
		os.Exit(0)
	}

	// parse mode and collect the remaining args for that mode
	mode, svcArgs, err := cli.ParseMode(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cli.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	// context cancelled on SIGINT/SIGTERM for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// run the service specified by the mode flag
	switch mode {

	case cli.ModeNavigation:
		fs := flag.NewFlagSet(cli.ModeNavigation, flag.ContinueOnError)
		maxConc := fs.Int("max-concurrent", 100, "Maximum number of concurrent HTTP requests to process")
		cfgPath := fs.String("config", "config/config.yaml", "Path to the YAML config file")
		cli.AttachUsage(fs, cli.ModeNavigation)

		if err := fs.Parse(svcArgs); err != nil {
			if err == flag.ErrHelp {
				os.Exit(0)
			}
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}
		if *maxConc < 1 {
			fmt.Fprintln(os.Stderr, "Error: --max-concurrent must be >= 1")
			fs.Usage()
			os.Exit(2)
		}
		if err := navigationservice.Run(ctx, *cfgPath, *maxConc); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

	case cli.ModeSimulator:
		fs := flag.NewFlagSet(cli.ModeSimulator, flag.ContinueOnError)
		from := fs.String("from", "Grand Central", "Directory query for the trip origin")
		to := fs.String("to", "Harbor View", "Directory query for the trip destination")
		via := fs.String("via", "", "Optional directory query for an intermediate waypoint")
		stepSeconds := fs.Int("step-seconds", 2, "Seconds between simulated progress steps")
		cfgPath := fs.String("config", "config/config.yaml", "Path to the YAML config file")
		cli.AttachUsage(fs, cli.ModeSimulator)

		if err := fs.Parse(svcArgs); err != nil {
			if err == flag.ErrHelp {
				os.Exit(0)
			}
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}
		if *stepSeconds < 1 {
			fmt.Fprintln(os.Stderr, "Error: --step-seconds must be >= 1")
			fs.Usage()
			os.Exit(2)
		}
		if err := routesimulator.Run(ctx, *cfgPath, *from, *to, *via, *stepSeconds); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

	default:
		// should not happen because ParseMode validates known modes
		fmt.Fprintln(os.Stderr, "Error: unknown mode")
		os.Exit(2)
	}

	// tiny delay to let deferred logs flush on very fast exits
	select {
	case <-ctx.Done():
	case <-time.After(10 * time.Millisecond):
	}
}
