// Package hashing provides Zobrist keys and duplicate detection for chess
// positions.
package hashing

import (
	"github.com/lgbarn/fenboard/internal/chess"
)

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist key
	hashTable map[uint64][]PositionSignature
	// useExactMatch also requires equal clocks
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
	uniqueCount int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist key
	Hash uint64
	// WeakHash is a fast checksum for additional confidence
	WeakHash uint32
	// Halfmove and Fullmove are compared only in exact mode
	Halfmove int
	Fullmove int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]PositionSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of a position.
func Signature(pos *chess.Position) PositionSignature {
	return PositionSignature{
		Hash:     Key(pos),
		WeakHash: WeakHash(pos),
		Halfmove: pos.HalfmoveClock,
		Fullmove: pos.FullmoveNumber,
	}
}

// CheckAndAdd checks if a position was seen before and records it.
// Returns true if the position is a duplicate. Once the detector is full,
// new positions are still checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(pos *chess.Position) bool {
	if pos == nil {
		return false
	}

	sig := Signature(pos)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.uniqueCount++
	return false
}

// signaturesMatch checks if two position signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b PositionSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && (a.Halfmove != b.Halfmove || a.Fullmove != b.Fullmove) {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
	d.uniqueCount = 0
}

// RepetitionTable counts how often each position occurs in a game.
// The zero value is not usable; call NewRepetitionTable.
type RepetitionTable struct {
	counts map[uint64]int
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Add records an occurrence of pos and returns how often it has now occurred.
func (r *RepetitionTable) Add(pos *chess.Position) int {
	key := Key(pos)
	r.counts[key]++
	return r.counts[key]
}

// Count returns how often pos has occurred.
func (r *RepetitionTable) Count(pos *chess.Position) int {
	return r.counts[Key(pos)]
}
