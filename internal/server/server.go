// Package server exposes games over HTTP and WebSocket.
package server

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/lgbarn/fenboard/internal/config"
	"github.com/lgbarn/fenboard/internal/hashing"
	"github.com/lgbarn/fenboard/internal/session"
)

// Server serves the game API.
type Server struct {
	cfg   config.ServerConfig
	app   *fiber.App
	games *session.Manager
	known *hashing.KnownPositions
	log   zerolog.Logger
}

// New builds a server with all routes registered.
func New(cfg config.ServerConfig, games *session.Manager, log zerolog.Logger) *Server {
	s := &Server{
		cfg:   cfg,
		games: games,
		known: hashing.NewKnownPositions(cfg.KnownPositions),
		log:   log,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "fenboard",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Use(requestID())
	s.app.Use(accessLog(s.log))
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: s.cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	s.app.Get("/healthz", s.health)

	api := s.app.Group("/api")
	api.Post("/fen/normalize", s.normalizeFEN)

	games := api.Group("/games")
	games.Post("/", s.createGame)
	games.Get("/", s.listGames)
	games.Get("/:id", s.requireGame, s.getGame)
	games.Delete("/:id", s.requireGame, s.deleteGame)
	games.Get("/:id/fen", s.requireGame, s.getFEN)
	games.Get("/:id/targets/:square", s.requireGame, s.getTargets)
	games.Post("/:id/moves", s.requireGame, s.postMove)

	s.app.Use("/ws", websocketUpgrade())
	s.app.Get("/ws/games/:id", s.requireGame, websocket.New(s.handleSocket, websocket.Config{
		ReadBufferSize:  s.cfg.ReadBuffer,
		WriteBufferSize: s.cfg.WriteBuffer,
	}))
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errc := make(chan error, 1)
	go func() {
		errc <- s.app.Listener(ln)
	}()

	s.log.Info().Str("addr", ln.Addr().String()).Msg("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	if err := s.app.Shutdown(); err != nil {
		return err
	}
	return <-errc
}
