// fenboard decodes, explores and plays chess positions given in FEN, from
// the command line or over HTTP.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/lgbarn/fenboard/internal/config"
	"github.com/lgbarn/fenboard/internal/logging"
	"github.com/lgbarn/fenboard/internal/store"
)

const programVersion = "0.1.0"

// errUsage reports a command line the user should correct.
var errUsage = errors.New("usage")

// env is what every subcommand runs with.
type env struct {
	cfg    *config.Config
	log    zerolog.Logger
	store  *store.Store
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	summary string
	run     func(e *env, args []string) error
}

var commands = map[string]command{
	"serve":   {"run the HTTP/WebSocket server", cmdServe},
	"show":    {"show a position: show <fen|file>", cmdShow},
	"moves":   {"list the targets of a square: moves <fen|file> <square>", cmdMoves},
	"play":    {"apply moves: play [-save name] <fen|file> <move>...", cmdPlay},
	"perft":   {"count move paths: perft [-depth n] [-divide] <fen|file>", cmdPerft},
	"batch":   {"normalise FEN lines: batch [-workers n] [-dedupe] [file]", cmdBatch},
	"config":  {"print the effective configuration", cmdConfig},
	"version": {"print the version", cmdVersion},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fenboard", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "YAML configuration file")
	logLevel := fs.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "", "Log format (console, json)")
	positionsDir := fs.String("positions", "", "Directory bare position file names resolve under")
	fs.Usage = func() { usage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		usage(stderr, fs)
		return 2
	}

	cmd, ok := commands[fs.Arg(0)]
	if !ok {
		fmt.Fprintf(stderr, "fenboard: unknown command %q\n", fs.Arg(0))
		usage(stderr, fs)
		return 2
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "fenboard: %v\n", err)
		return 1
	}
	b := config.NewConfigBuilderFrom(cfg)
	if *logLevel != "" {
		b.WithLogLevel(*logLevel)
	}
	if *logFormat != "" {
		b.WithLogFormat(*logFormat)
	}
	if *positionsDir != "" {
		b.WithPositionsDir(*positionsDir)
	}
	cfg = b.Build()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "fenboard: %v\n", err)
		return 1
	}
	log, err := logging.NewWithWriter(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "fenboard: %v\n", err)
		return 1
	}

	e := &env{
		cfg:    cfg,
		log:    log,
		store:  store.New(cfg.Engine.PositionsDir),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	if err := cmd.run(e, fs.Args()[1:]); err != nil {
		fmt.Fprintf(stderr, "fenboard %s: %v\n", fs.Arg(0), err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.NewConfig(), nil
	}
	return config.Load(path)
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "Usage: fenboard [options] <command> [arguments]\n\nCommands:\n")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-8s %s\n", name, commands[name].summary)
	}
	fmt.Fprintf(w, "\nOptions:\n")
	fs.PrintDefaults()
}
