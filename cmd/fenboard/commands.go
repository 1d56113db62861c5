package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/engine"
	"github.com/lgbarn/fenboard/internal/output"
	"github.com/lgbarn/fenboard/internal/server"
	"github.com/lgbarn/fenboard/internal/session"
	"github.com/lgbarn/fenboard/internal/worker"
)

// newFlagSet returns a flag set for a subcommand that reports to stderr.
func (e *env) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string, minArgs int) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() < minArgs {
		return fmt.Errorf("%w: want at least %d arguments, got %d", errUsage, minArgs, fs.NArg())
	}
	return nil
}

func (e *env) positionWriter(asJSON bool) output.PositionWriter {
	if asJSON {
		return output.NewJSONWriterSingle(e.stdout)
	}
	return output.NewDiagramWriter(e.stdout)
}

func (e *env) writePosition(asJSON bool, pos *chess.Position, highlights ...chess.Square) error {
	w := e.positionWriter(asJSON)
	if err := w.WritePosition(pos, highlights...); err != nil {
		return err
	}
	return w.Close()
}

// signalContext is cancelled on interrupt or termination.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func cmdShow(e *env, args []string) error {
	fs := e.newFlagSet("show")
	asJSON := fs.Bool("json", false, "Output JSON")
	if err := parseFlags(fs, args, 1); err != nil {
		return err
	}

	pos, err := e.store.LoadOrDecode(fs.Arg(0))
	if err != nil {
		return err
	}
	return e.writePosition(*asJSON, pos)
}

func cmdMoves(e *env, args []string) error {
	fs := e.newFlagSet("moves")
	asJSON := fs.Bool("json", false, "Output JSON")
	if err := parseFlags(fs, args, 2); err != nil {
		return err
	}

	pos, err := e.store.LoadOrDecode(fs.Arg(0))
	if err != nil {
		return err
	}
	from, err := chess.ParseSquare(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	targets := engine.GenerateTargets(pos, from)
	if err := e.writePosition(*asJSON, pos, targets...); err != nil {
		return err
	}
	if !*asJSON {
		fmt.Fprintf(e.stdout, "%s:", from)
		for _, to := range targets {
			fmt.Fprintf(e.stdout, " %s", to)
		}
		fmt.Fprintln(e.stdout)
	}
	return nil
}

func cmdPlay(e *env, args []string) error {
	fs := e.newFlagSet("play")
	asJSON := fs.Bool("json", false, "Output JSON")
	save := fs.String("save", "", "Save the final position under this name")
	if err := parseFlags(fs, args, 1); err != nil {
		return err
	}

	pos, err := e.store.LoadOrDecode(fs.Arg(0))
	if err != nil {
		return err
	}

	for i, text := range fs.Args()[1:] {
		m, err := engine.ParseMove(text)
		if err != nil {
			return fmt.Errorf("%w: move %d: %v", errUsage, i+1, err)
		}
		result, err := engine.MakeMove(pos, m)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		e.log.Debug().Str("move", m.String()).Str("fen", engine.PositionToFEN(pos)).Msg("move applied")
		if result.FiftyMoveRule {
			e.log.Info().Int("halfmove_clock", pos.HalfmoveClock).Msg("fifty-move rule reached")
		}
	}

	if err := e.writePosition(*asJSON, pos); err != nil {
		return err
	}
	if *save != "" {
		if err := e.store.Save(*save, pos); err != nil {
			return err
		}
		e.log.Info().Str("path", e.store.Resolve(*save)).Msg("position saved")
	}
	return nil
}

func cmdPerft(e *env, args []string) error {
	fs := e.newFlagSet("perft")
	depth := fs.Int("depth", 3, "Search depth in plies")
	divide := fs.Bool("divide", false, "Print the node count below each root move")
	workers := fs.Int("workers", e.cfg.Batch.Workers, "Number of worker goroutines")
	if err := parseFlags(fs, args, 1); err != nil {
		return err
	}
	if *depth < 0 {
		return fmt.Errorf("%w: negative depth %d", errUsage, *depth)
	}

	pos, err := e.store.LoadOrDecode(fs.Arg(0))
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	start := time.Now()
	entries, nodes, err := engine.Divide(ctx, pos, *depth, *workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if *divide {
		for _, entry := range entries {
			fmt.Fprintf(e.stdout, "%s: %d\n", entry.Move, entry.Nodes)
		}
		fmt.Fprintln(e.stdout)
	}
	fmt.Fprintf(e.stdout, "nodes: %d\n", nodes)
	e.log.Info().Int("depth", *depth).Uint64("nodes", nodes).Dur("elapsed", elapsed).Msg("perft done")
	return nil
}

func cmdBatch(e *env, args []string) error {
	fs := e.newFlagSet("batch")
	workers := fs.Int("workers", e.cfg.Batch.Workers, "Number of worker goroutines")
	dedupe := fs.Bool("dedupe", e.cfg.Batch.SuppressDuplicates, "Drop repeated positions")
	keys := fs.Bool("keys", false, "Prefix each FEN with its Zobrist key")
	if err := parseFlags(fs, args, 0); err != nil {
		return err
	}

	in := e.stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	lines, err := readLines(in)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	results, err := worker.NormalizeBatch(ctx, lines, worker.BatchOptions{
		Workers:            *workers,
		BufferSize:         e.cfg.Batch.BufferSize,
		SuppressDuplicates: *dedupe,
	})
	if err != nil {
		return err
	}

	out := bufio.NewWriter(e.stdout)
	var failed, duplicates int
	for _, r := range results {
		switch {
		case r.Error != nil:
			failed++
			fmt.Fprintf(e.stderr, "line %d: %v\n", r.Index+1, r.Error)
		case r.Duplicate:
			duplicates++
		case *keys:
			fmt.Fprintf(out, "%016x %s\n", r.Key, r.FEN)
		default:
			fmt.Fprintln(out, r.FEN)
		}
	}
	if err := out.Flush(); err != nil {
		return err
	}

	e.log.Info().
		Int("records", len(results)).
		Int("invalid", failed).
		Int("duplicates", duplicates).
		Msg("batch done")
	if failed > 0 {
		return fmt.Errorf("%d invalid records", failed)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func cmdServe(e *env, args []string) error {
	fs := e.newFlagSet("serve")
	addr := fs.String("addr", e.cfg.Server.Addr, "Listen address")
	if err := parseFlags(fs, args, 0); err != nil {
		return err
	}
	e.cfg.Server.Addr = *addr

	if fen := e.cfg.Engine.StartFEN; fen != "" {
		if _, err := engine.NewPositionFromFEN(fen); err != nil {
			return fmt.Errorf("start position: %w", err)
		}
	}

	ctx, stop := signalContext()
	defer stop()

	games := session.NewManager(e.cfg.Engine.StartFEN, e.log)
	return server.New(e.cfg.Server, games, e.log).Run(ctx)
}

func cmdConfig(e *env, args []string) error {
	return e.cfg.WriteYAML(e.stdout)
}

func cmdVersion(e *env, args []string) error {
	_, err := fmt.Fprintf(e.stdout, "fenboard version %s\n", programVersion)
	return err
}
