package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/fenboard/internal/errors"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// statusOf maps an error to its HTTP status and kind.
func statusOf(err error) (int, string) {
	var fe *errors.FormatError
	var me *errors.MoveError
	var ferr *fiber.Error

	switch {
	case errors.As(err, &fe):
		return fiber.StatusBadRequest, fe.Kind.String()
	case errors.As(err, &me):
		return fiber.StatusUnprocessableEntity, me.Kind.String()
	case errors.Is(err, errors.ErrInvalidFEN),
		errors.Is(err, errors.ErrInvalidSquare),
		errors.Is(err, errors.ErrNoSelection):
		return fiber.StatusBadRequest, ""
	case errors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound, ""
	case errors.As(err, &ferr):
		return ferr.Code, ""
	}
	return fiber.StatusInternalServerError, ""
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code, kind := statusOf(err)
	if code >= fiber.StatusInternalServerError {
		rid, _ := c.Locals(localRequestID).(string)
		s.log.Error().Err(err).Str("rid", rid).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(code).JSON(errorResponse{Error: err.Error(), Kind: kind})
}
