package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

const (
	ModeNavigation = "navigation-service"
	ModeSimulator  = "route-simulator"
)

// isKnownMode checks if the provided mode name is known.
func isKnownMode(s string) (string, bool) {
	switch s {
	case ModeNavigation, "navigation", "nav", "n":
		return ModeNavigation, true
	case ModeSimulator, "simulator", "simulate", "sim", "s":
		return ModeSimulator, true
	default:
		return "", false
	}
}

// ParseMode supports:
//
//	--mode=<value>
//	<value> (subcommand shorthand), e.g., `navigation-service --max-concurrent=100`
func ParseMode(args []string) (string, []string, error) {
	var mode string
	var out []string

	for i := range args {
		arg := args[i]
		if after, ok := strings.CutPrefix(arg, "--mode="); ok {
			mode = after
			continue
		}

		if mode == "" {
			if m, ok := isKnownMode(arg); ok {
				mode = m
				continue
			}
		}
		out = append(out, arg)
	}

	if mode == "" {
		return "", out, errors.New("no mode specified: use --mode=<service>")
	}

	if m, ok := isKnownMode(mode); ok {
		mode = m
	}

	return mode, out, nil
}

// PrintUsage prints the usage information with examples.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, "\033[36m") // cyan

	fmt.Fprintln(w, `Usage:
  ./navsim --mode=<service> [flags]

Services (modes):
  navigation-service           HTTP + WebSocket API for the navigation session
  route-simulator              Headless drive between two directory places

Examples:
  ./navsim --mode=navigation-service --max-concurrent=100
  ./navsim --mode=route-simulator --from="Grand Central" --to="Harbor View" --step-seconds=1`)

	fmt.Fprint(w, "\033[0m") // reset
}

// AttachUsage wires a concise per-mode usage to a FlagSet.
func AttachUsage(fs *flag.FlagSet, mode string) {
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: ./navsim --mode=%s [flags]\n", mode)
		fs.PrintDefaults()
	}
}
