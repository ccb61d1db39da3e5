// Command physkit reads a scenario of physics problems in YAML or JSON from a file
// argument (or stdin), solves it, and writes the JSON report to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zeusync/physkit/internal/core/observability/log"
	"github.com/zeusync/physkit/internal/injector"
	"github.com/zeusync/physkit/internal/scenario"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("physkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		formatFlag  = fs.String("format", "", "scenario format: yaml or json (default: from extension or content)")
		levelFlag   = fs.String("log-level", "info", "log level: debug, info, warn, error or silent")
		logEncoding = fs.String("log-encoding", "json", "log encoding: json or console")
		listKinds   = fs.Bool("kinds", false, "list supported problem kinds and exit")
		strict      = fs.Bool("strict", false, "exit with status 2 when any problem fails")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: physkit [flags] [scenario-file]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *listKinds {
		for _, k := range scenario.Kinds() {
			fmt.Fprintln(stdout, k)
		}
		return 0
	}

	level, err := log.ParseLevel(*levelFlag)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	format, err := scenario.ParseFormat(*formatFlag)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	input := stdin
	if path := fs.Arg(0); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "error reading input: %v\n", err)
			return 1
		}
		defer f.Close()
		input = f
		if format == scenario.FormatAuto {
			format = scenario.FormatForPath(path)
		}
	}

	cfg := log.DefaultConfig()
	cfg.Level = level
	cfg.Encoding = *logEncoding
	components, err := injector.InitializeComponents(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error creating logger: %v\n", err)
		return 1
	}
	defer func() { _ = components.Logger.Sync() }()

	report, err := components.Evaluator.Run(input, format)
	if err != nil {
		fmt.Fprintf(stderr, "scenario error: %v\n", err)
		return 1
	}
	if err = report.Encode(stdout); err != nil {
		fmt.Fprintf(stderr, "error writing report: %v\n", err)
		return 1
	}

	if *strict && report.Failed > 0 {
		return 2
	}
	return 0
}
