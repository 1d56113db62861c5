package hashing

import (
	"sync"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/engine"
)

// Sighting describes one observation of a position by KnownPositions.
type Sighting struct {
	// SeenBefore is set when an equal position (clocks ignored) was observed
	// earlier.
	SeenBefore bool
	// FirstFEN is the canonical FEN the position was first recorded as. It is
	// empty when the position could not be recorded because the registry is full.
	FirstFEN string
	// Count is the number of observations including this one, or 0 when the
	// position is not recorded.
	Count int
}

// KnownPositions remembers the positions a long-running process has been
// shown. It is safe for concurrent use.
type KnownPositions struct {
	mu       sync.Mutex
	detector *DuplicateDetector
	first    map[uint64]string
	counts   map[uint64]int
}

// NewKnownPositions creates a registry holding at most capacity positions.
// A capacity of 0 means unlimited.
func NewKnownPositions(capacity int) *KnownPositions {
	return &KnownPositions{
		detector: NewDuplicateDetector(false, capacity),
		first:    make(map[uint64]string),
		counts:   make(map[uint64]int),
	}
}

// Observe records pos and reports whether it was known already.
func (k *KnownPositions) Observe(pos *chess.Position) Sighting {
	if pos == nil {
		return Sighting{}
	}
	key := Key(pos)

	k.mu.Lock()
	defer k.mu.Unlock()

	full := k.detector.IsFull()
	if k.detector.CheckAndAdd(pos) {
		k.counts[key]++
		return Sighting{SeenBefore: true, FirstFEN: k.first[key], Count: k.counts[key]}
	}
	if full {
		return Sighting{}
	}

	if _, ok := k.first[key]; !ok {
		k.first[key] = engine.PositionToFEN(pos)
	}
	k.counts[key]++
	return Sighting{FirstFEN: k.first[key], Count: k.counts[key]}
}

// Len returns the number of distinct positions recorded.
func (k *KnownPositions) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.detector.UniqueCount()
}

// IsFull reports whether the registry stopped recording new positions.
func (k *KnownPositions) IsFull() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.detector.IsFull()
}
