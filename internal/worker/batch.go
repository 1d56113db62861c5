package worker

import (
	"context"
	"strings"

	"github.com/lgbarn/fenboard/internal/engine"
	"github.com/lgbarn/fenboard/internal/hashing"
)

// NormalizeFEN decodes a FEN record, re-encodes it canonically and computes
// its Zobrist key.
func NormalizeFEN(item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index, Input: item.Line}

	pos, err := engine.NewPositionFromFEN(item.Line)
	if err != nil {
		result.Error = err
		return result
	}
	result.Position = pos
	result.FEN = engine.PositionToFEN(pos)
	result.Key = hashing.Key(pos)
	return result
}

// BatchOptions configures NormalizeBatch.
type BatchOptions struct {
	Workers            int
	BufferSize         int
	SuppressDuplicates bool // Mark every repeat of an earlier position
}

// NormalizeBatch normalises FEN lines in parallel and returns the results in
// input order. Blank lines and lines starting with '#' are skipped but keep
// their index. If ctx is cancelled, unprocessed records are omitted and
// ctx.Err() is returned with the results gathered so far.
func NormalizeBatch(ctx context.Context, lines []string, opts BatchOptions) ([]ProcessResult, error) {
	pool := NewPool(opts.Workers, opts.BufferSize, NormalizeFEN)
	pool.Start(ctx)

	go func() {
		defer pool.Close()
		for i, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if pool.Submit(ctx, WorkItem{Line: line, Index: i}) != nil {
				return
			}
		}
	}()

	byIndex := make([]*ProcessResult, len(lines))
	for result := range pool.Results() {
		byIndex[result.Index] = &result
	}

	var detector *hashing.DuplicateDetector
	if opts.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector(false, 0)
	}

	results := make([]ProcessResult, 0, len(lines))
	for _, r := range byIndex {
		if r == nil {
			continue
		}
		if detector != nil && r.Error == nil {
			r.Duplicate = detector.CheckAndAdd(r.Position)
		}
		results = append(results, *r)
	}
	return results, ctx.Err()
}
