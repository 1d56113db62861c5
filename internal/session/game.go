package session

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/engine"
	"github.com/lgbarn/fenboard/internal/errors"
	"github.com/lgbarn/fenboard/internal/hashing"
)

// subscriberBuffer is the number of snapshots queued per subscriber before
// further snapshots are dropped for it.
const subscriberBuffer = 8

// Snapshot is a consistent copy of a game's state.
type Snapshot struct {
	ID       string
	Position *chess.Position
	FEN      string
	// Selected is the square of the first click, or chess.NoSquare.
	Selected   chess.Square
	Highlights []chess.Square
	LastResult *engine.MoveResult
	History    []string
	// Repetitions counts occurrences of the current position in this game.
	Repetitions int
}

// Game is one position plus the selection state of the two-click input
// flow. All methods are safe for concurrent use.
type Game struct {
	ID        string
	CreatedAt time.Time

	mu          sync.Mutex
	pos         *chess.Position
	selected    chess.Square
	highlights  []chess.Square
	last        *engine.MoveResult
	history     []string
	repetitions *hashing.RepetitionTable
	subscribers map[<-chan Snapshot]chan Snapshot
	closed      bool
}

func newGame(id string, pos *chess.Position) *Game {
	g := &Game{
		ID:          id,
		CreatedAt:   time.Now(),
		pos:         pos,
		selected:    chess.NoSquare,
		history:     []string{engine.PositionToFEN(pos)},
		repetitions: hashing.NewRepetitionTable(),
		subscribers: make(map[<-chan Snapshot]chan Snapshot),
	}
	g.repetitions.Add(pos)
	return g
}

// Select records sq as the source of the next move and returns its targets.
// A square without targets clears the selection and returns none.
func (g *Game) Select(sq chess.Square) ([]chess.Square, error) {
	if !sq.Valid() {
		return nil, fmt.Errorf("select %d: %w", sq, errors.ErrInvalidSquare)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	targets := engine.GenerateTargets(g.pos, sq)
	if len(targets) == 0 {
		g.clearSelection()
		return nil, nil
	}
	g.selected = sq
	g.highlights = targets
	return slices.Clone(targets), nil
}

// ClearSelection forgets the first click.
func (g *Game) ClearSelection() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clearSelection()
}

func (g *Game) clearSelection() {
	g.selected = chess.NoSquare
	g.highlights = nil
}

// Move applies from-to to the game and notifies subscribers. On error the
// game is unchanged, the selection included.
func (g *Game) Move(from, to chess.Square, promotion chess.PieceType) (engine.MoveResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !from.Valid() || !to.Valid() {
		return engine.MoveResult{}, fmt.Errorf("move %d-%d: %w", from, to, errors.ErrInvalidSquare)
	}

	return g.move(from, to, promotion)
}

// MoveSelected is the second click: it moves the selected piece to to.
func (g *Game) MoveSelected(to chess.Square, promotion chess.PieceType) (engine.MoveResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.selected == chess.NoSquare {
		return engine.MoveResult{}, errors.ErrNoSelection
	}
	if !to.Valid() {
		return engine.MoveResult{}, fmt.Errorf("move to %d: %w", to, errors.ErrInvalidSquare)
	}
	return g.move(g.selected, to, promotion)
}

func (g *Game) move(from, to chess.Square, promotion chess.PieceType) (engine.MoveResult, error) {
	result, err := engine.ApplyMove(g.pos, from, to, promotion)
	if err != nil {
		return engine.MoveResult{}, err
	}

	g.clearSelection()
	g.last = &result
	g.history = append(g.history, engine.PositionToFEN(g.pos))
	g.repetitions.Add(g.pos)
	g.broadcast(g.snapshot())
	return result, nil
}

// Snapshot returns a copy of the game state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	s := Snapshot{
		ID:          g.ID,
		Position:    g.pos.Copy(),
		FEN:         engine.PositionToFEN(g.pos),
		Selected:    g.selected,
		Highlights:  slices.Clone(g.highlights),
		History:     slices.Clone(g.history),
		Repetitions: g.repetitions.Count(g.pos),
	}
	if g.last != nil {
		last := *g.last
		s.LastResult = &last
	}
	return s
}

// Subscribe returns a channel receiving a snapshot after every move. The
// channel is closed by Unsubscribe or when the game is deleted. A slow
// subscriber misses snapshots rather than blocking the game.
func (g *Game) Subscribe() <-chan Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	ch := make(chan Snapshot, subscriberBuffer)
	if g.closed {
		close(ch)
		return ch
	}
	g.subscribers[ch] = ch
	return ch
}

// Unsubscribe stops and closes a channel returned by Subscribe.
func (g *Game) Unsubscribe(ch <-chan Snapshot) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.subscribers[ch]; ok {
		delete(g.subscribers, ch)
		close(c)
	}
}

// Subscribers returns the number of subscribed channels.
func (g *Game) Subscribers() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.subscribers)
}

func (g *Game) broadcast(s Snapshot) {
	for _, ch := range g.subscribers {
		select {
		case ch <- s:
		default:
		}
	}
}

// close closes every subscriber channel. Later subscribers get a closed
// channel.
func (g *Game) close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for key, ch := range g.subscribers {
		delete(g.subscribers, key)
		close(ch)
	}
	g.closed = true
}
