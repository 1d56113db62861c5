package server

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/lgbarn/fenboard/internal/engine"
	"github.com/lgbarn/fenboard/internal/session"
)

// MessageType names a WebSocket message.
type MessageType string

const (
	// Client to server.
	MessageSelect MessageType = "select"
	MessageMove   MessageType = "move"

	// Server to client.
	MessagePosition MessageType = "position"
	MessageTargets  MessageType = "targets"
	MessageError    MessageType = "error"
)

// Message is the envelope of every WebSocket message.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type selectPayload struct {
	Square string `json:"square"`
}

// socket serialises writes to one connection; the read loop and the
// broadcast loop both write.
type socket struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *socket) send(t MessageType, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(Message{Type: t, Payload: b})
}

func (s *socket) sendError(err error) error {
	code, kind := statusOf(err)
	return s.send(MessageError, struct {
		errorResponse
		Status int `json:"status"`
	}{errorResponse{Error: err.Error(), Kind: kind}, code})
}

// handleSocket runs one WebSocket client of a game. The client receives
// the current position on connect and every position after a move by any
// client of the same game.
func (s *Server) handleSocket(conn *websocket.Conn) {
	g := conn.Locals(localGame).(*session.Game)
	log := s.log.With().Str("game", g.ID).Str("remote", conn.RemoteAddr().String()).Logger()
	sock := &socket{conn: conn}

	updates := g.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for snap := range updates {
			if err := sock.send(MessagePosition, newGameView(snap)); err != nil {
				log.Debug().Err(err).Msg("broadcast failed")
			}
		}
	}()
	defer func() {
		g.Unsubscribe(updates)
		<-done
	}()

	log.Info().Msg("socket connected")
	if err := sock.send(MessagePosition, newGameView(g.Snapshot())); err != nil {
		log.Debug().Err(err).Msg("initial position not sent")
		return
	}

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			log.Info().Err(err).Msg("socket closed")
			return
		}
		if err := s.handleMessage(g, sock, msg, log); err != nil {
			if werr := sock.sendError(err); werr != nil {
				log.Debug().Err(werr).Msg("error reply failed")
				return
			}
		}
	}
}

// handleMessage answers one client message. Applied moves reach the client
// through its subscription, not through a direct reply.
func (s *Server) handleMessage(g *session.Game, sock *socket, msg Message, log zerolog.Logger) error {
	switch msg.Type {
	case MessageSelect:
		var p selectPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return badMessage("select payload: %v", err)
		}
		from, err := parseSquare(p.Square)
		if err != nil {
			return err
		}
		targets, err := g.Select(from)
		if err != nil {
			return err
		}
		return sock.send(MessageTargets, newTargetsView(from, targets))

	case MessageMove:
		var req moveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return badMessage("move payload: %v", err)
		}
		var (
			result engine.MoveResult
			err    error
		)
		if req.From == "" && req.Move == "" {
			result, err = s.moveSelected(g, req)
		} else {
			var m engine.Move
			if m, err = req.parse(); err == nil {
				result, err = g.Move(m.From, m.To, m.Promotion)
			}
		}
		if err != nil {
			return err
		}
		log.Debug().Str("move", result.Move().String()).Msg("move applied")
		return nil

	default:
		return badMessage("unknown message type %q", msg.Type)
	}
}

func badMessage(format string, args ...any) error {
	return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf(format, args...))
}

// moveSelected completes a two-click move from the selected square.
func (s *Server) moveSelected(g *session.Game, req moveRequest) (engine.MoveResult, error) {
	to, err := parseSquare(req.To)
	if err != nil {
		return engine.MoveResult{}, err
	}
	promotion, err := parsePromotion(req.Promotion)
	if err != nil {
		return engine.MoveResult{}, err
	}
	return g.MoveSelected(to, promotion)
}
