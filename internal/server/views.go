package server

import (
	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/output"
	"github.com/lgbarn/fenboard/internal/session"
)

// gameView is the JSON view of a game.
type gameView struct {
	GameID      string                 `json:"game_id"`
	Position    *output.PositionJSON   `json:"position"`
	Selected    string                 `json:"selected,omitempty"`
	Highlights  []string               `json:"highlights,omitempty"`
	LastMove    *output.MoveResultJSON `json:"last_move,omitempty"`
	Plies       int                    `json:"plies"`
	Repetitions int                    `json:"repetitions"`
}

func newGameView(s session.Snapshot) *gameView {
	v := &gameView{
		GameID:      s.ID,
		Position:    output.NewPositionJSON(s.Position),
		Highlights:  squareNames(s.Highlights),
		Plies:       len(s.History) - 1,
		Repetitions: s.Repetitions,
	}
	if s.Selected.Valid() {
		v.Selected = s.Selected.String()
	}
	if s.LastResult != nil {
		v.LastMove = output.NewMoveResultJSON(*s.LastResult)
	}
	return v
}

// targetsView answers a first click.
type targetsView struct {
	From    string   `json:"from"`
	Targets []string `json:"targets"`
}

func newTargetsView(from chess.Square, targets []chess.Square) *targetsView {
	v := &targetsView{From: from.String(), Targets: squareNames(targets)}
	if v.Targets == nil {
		v.Targets = []string{}
	}
	return v
}

// moveView answers an applied move.
type moveView struct {
	Position *output.PositionJSON   `json:"position"`
	Result   *output.MoveResultJSON `json:"result"`
}

func squareNames(squares []chess.Square) []string {
	if len(squares) == 0 {
		return nil
	}
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}

// normalizeView is the reply of the FEN normalisation endpoint. FirstFEN and
// TimesSeen are omitted once the server stopped recording positions.
type normalizeView struct {
	FEN        string `json:"fen"`
	SeenBefore bool   `json:"seen_before"`
	FirstFEN   string `json:"first_fen,omitempty"`
	TimesSeen  int    `json:"times_seen,omitempty"`
}
