package hashing

import (
	"testing"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/engine"
)

func mustPosition(t testing.TB, fen string) *chess.Position {
	t.Helper()
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) failed: %v", fen, err)
	}
	return pos
}

func TestKeyConsistency(t *testing.T) {
	pos1 := engine.NewInitialPosition()
	pos2 := mustPosition(t, engine.InitialFEN)

	if Key(pos1) != Key(pos2) {
		t.Errorf("identical positions produced different keys: %x != %x", Key(pos1), Key(pos2))
	}
	if WeakHash(pos1) != WeakHash(pos2) {
		t.Errorf("identical positions produced different weak hashes: %x != %x", WeakHash(pos1), WeakHash(pos2))
	}
}

func TestKeyChangesAfterEveryMove(t *testing.T) {
	pos := engine.NewInitialPosition()
	before := Key(pos)

	for _, m := range engine.GenerateMoves(pos) {
		child := pos.Copy()
		if _, err := engine.MakeMove(child, m); err != nil {
			t.Fatalf("MakeMove(%s) failed: %v", m, err)
		}
		if Key(child) == before {
			t.Errorf("key unchanged after %s", m)
		}
	}
}

func TestKeyComponents(t *testing.T) {
	base := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	tests := []struct {
		name string
		fen  string
		same bool
	}{
		{"clocks ignored", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 17 40", true},
		{"side to move", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", false},
		{"castling rights", "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1", false},
		{"en passant", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq e3 0 1", false},
		{"placement", "r3k2r/8/8/8/8/8/8/R3K1R1 w KQkq - 0 1", false},
	}

	baseKey := Key(mustPosition(t, base))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Key(mustPosition(t, tt.fen)) == baseKey
			if got != tt.same {
				t.Errorf("Key(%q) == Key(%q) is %v, want %v", tt.fen, base, got, tt.same)
			}
		})
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	pos := engine.NewInitialPosition()

	if detector.CheckAndAdd(pos) {
		t.Error("first position was marked as duplicate")
	}
	if !detector.CheckAndAdd(pos.Copy()) {
		t.Error("duplicate position was not detected")
	}
	if detector.CheckAndAdd(nil) {
		t.Error("nil position was marked as duplicate")
	}

	if detector.DuplicateCount() != 1 {
		t.Errorf("expected 1 duplicate, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("expected 1 unique position, got %d", detector.UniqueCount())
	}
}

func TestDuplicateDetector_ExactMatch(t *testing.T) {
	a := mustPosition(t, "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1")
	b := mustPosition(t, "8/5k2/8/8/8/8/5K2/4R3 w - - 12 30")

	loose := NewDuplicateDetector(false, 0)
	loose.CheckAndAdd(a)
	if !loose.CheckAndAdd(b) {
		t.Error("clock differences should be ignored without exact matching")
	}

	exact := NewDuplicateDetector(true, 0)
	exact.CheckAndAdd(a)
	if exact.CheckAndAdd(b) {
		t.Error("clock differences should matter with exact matching")
	}
}

func TestDuplicateDetectorReset(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	pos := engine.NewInitialPosition()

	detector.CheckAndAdd(pos)
	detector.CheckAndAdd(pos)
	detector.Reset()

	if detector.DuplicateCount() != 0 || detector.UniqueCount() != 0 {
		t.Errorf("after reset: %d duplicates, %d unique", detector.DuplicateCount(), detector.UniqueCount())
	}
	if detector.CheckAndAdd(pos) {
		t.Error("position reported as duplicate after reset")
	}
}

func TestDuplicateDetector_Capacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 2)
	positions := []string{
		engine.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1",
	}

	for _, fen := range positions {
		detector.CheckAndAdd(mustPosition(t, fen))
	}

	if !detector.IsFull() {
		t.Error("detector should be full")
	}
	if detector.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d, want 2", detector.UniqueCount())
	}
	// Recorded positions are still recognised once full
	if !detector.CheckAndAdd(mustPosition(t, positions[0])) {
		t.Error("recorded position not detected once full")
	}
}

func TestRepetitionTable(t *testing.T) {
	table := NewRepetitionTable()
	pos := engine.NewInitialPosition()

	if got := table.Add(pos); got != 1 {
		t.Errorf("first Add() = %d, want 1", got)
	}

	for _, move := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		m, err := engine.ParseMove(move)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := engine.MakeMove(pos, m); err != nil {
			t.Fatalf("MakeMove(%s) failed: %v", move, err)
		}
		table.Add(pos)
	}

	if got := table.Count(pos); got != 2 {
		t.Errorf("Count(initial) after knight shuffle = %d, want 2", got)
	}
}

func BenchmarkKey(b *testing.B) {
	pos := engine.NewInitialPosition()
	for i := 0; i < b.N; i++ {
		Key(pos)
	}
}
