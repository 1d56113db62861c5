package server

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/engine"
	"github.com/lgbarn/fenboard/internal/errors"
	"github.com/lgbarn/fenboard/internal/output"
	"github.com/lgbarn/fenboard/internal/session"
)

type fenRequest struct {
	FEN string `json:"fen"`
}

// moveRequest names a move either as squares or as one coordinate move
// such as "e7e8q".
type moveRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion"`
	Move      string `json:"move"`
}

func (r moveRequest) parse() (engine.Move, error) {
	if r.Move != "" {
		m, err := engine.ParseMove(r.Move)
		if err != nil {
			return engine.Move{}, fmt.Errorf("%v: %w", err, errors.ErrInvalidSquare)
		}
		return m, nil
	}

	from, err := parseSquare(r.From)
	if err != nil {
		return engine.Move{}, err
	}
	to, err := parseSquare(r.To)
	if err != nil {
		return engine.Move{}, err
	}
	promotion, err := parsePromotion(r.Promotion)
	if err != nil {
		return engine.Move{}, err
	}
	return engine.Move{From: from, To: to, Promotion: promotion}, nil
}

func parseSquare(name string) (chess.Square, error) {
	sq, err := chess.ParseSquare(strings.TrimSpace(name))
	if err != nil {
		return chess.NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// parsePromotion accepts a piece letter in either case or "".
func parsePromotion(text string) (chess.PieceType, error) {
	switch len(text) {
	case 0:
		return chess.NoPieceType, nil
	case 1:
		if pt := chess.ParsePieceType(text[0]); pt != chess.NoPieceType {
			return pt, nil
		}
	}
	return chess.NoPieceType, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid promotion %q", text))
}

func bodyError(err error) error {
	return fiber.NewError(fiber.StatusBadRequest, "malformed request body: "+err.Error())
}

func gameOf(c *fiber.Ctx) *session.Game {
	return c.Locals(localGame).(*session.Game)
}

// requireGame loads the game named by the :id parameter.
func (s *Server) requireGame(c *fiber.Ctx) error {
	g, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}
	c.Locals(localGame, g)
	return c.Next()
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"games":  s.games.Len(),
	})
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req fenRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return bodyError(err)
		}
	}

	g, err := s.games.Create(strings.TrimSpace(req.FEN))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(newGameView(g.Snapshot()))
}

func (s *Server) listGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"games": s.games.List()})
}

func (s *Server) getGame(c *fiber.Ctx) error {
	return c.JSON(newGameView(gameOf(c).Snapshot()))
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	if err := s.games.Delete(gameOf(c).ID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) getFEN(c *fiber.Ctx) error {
	return c.SendString(gameOf(c).Snapshot().FEN)
}

func (s *Server) getTargets(c *fiber.Ctx) error {
	from, err := parseSquare(c.Params("square"))
	if err != nil {
		return err
	}
	targets, err := gameOf(c).Select(from)
	if err != nil {
		return err
	}
	return c.JSON(newTargetsView(from, targets))
}

func (s *Server) postMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	m, err := req.parse()
	if err != nil {
		return err
	}

	g := gameOf(c)
	result, err := g.Move(m.From, m.To, m.Promotion)
	if err != nil {
		return err
	}

	snap := g.Snapshot()
	s.log.Debug().Str("game", g.ID).Str("move", result.Move().String()).Str("fen", snap.FEN).Msg("move applied")
	return c.JSON(&moveView{
		Position: output.NewPositionJSON(snap.Position),
		Result:   output.NewMoveResultJSON(result),
	})
}

// normalizeFEN answers with the canonical form of a FEN and whether the
// position was seen by an earlier request.
func (s *Server) normalizeFEN(c *fiber.Ctx) error {
	var req fenRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}

	pos, err := engine.NewPositionFromFEN(req.FEN)
	if err != nil {
		return err
	}
	seen := s.known.Observe(pos)
	return c.JSON(&normalizeView{
		FEN:        engine.PositionToFEN(pos),
		SeenBefore: seen.SeenBefore,
		FirstFEN:   seen.FirstFEN,
		TimesSeen:  seen.Count,
	})
}
