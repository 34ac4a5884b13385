package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

var (
	trace  bool
	format string
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func init() {
	registerFlags(flag.CommandLine)
}

func registerFlags(fs *flag.FlagSet) {
	fs.BoolVar(&trace, "trace", false, "log every prepend to stderr")
	fs.BoolVar(&trace, "t", false, "log every prepend to stderr (shorthand)")

	fs.StringVar(&format, "format", FormatText, "output format: text or yaml")
	fs.StringVar(&format, "f", FormatText, "output format: text or yaml (shorthand)")
}

func doMain() int {
	flag.Parse()

	logger := DefaultSLogger()
	if trace {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	d := NewDriver(stdout, logger)
	d.Format = format
	if err := d.Run(flag.Args()); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(doMain())
}
