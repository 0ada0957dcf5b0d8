package rest

import (
	"errors"

	"github.com/KirkDiggler/mentorcast/internal/services/schedule"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// errorHandler maps service errors onto status codes. Anything unknown is a 500
// and its message is not echoed.
func (h *Handler) errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	resp := ErrorResponse{Error: "internal error", RequestID: requestID(c)}

	var fiberErr *fiber.Error
	var conflictErr *schedule.ConflictError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &conflictErr):
		status = fiber.StatusConflict
		resp.Error = conflictErr.Error()
		resp.Conflict = &ConflictBody{
			MentorID:  conflictErr.MentorID,
			Table:     conflictErr.Table,
			Cohort:    conflictErr.Cohort,
			Subject:   conflictErr.Subject,
			SessionID: conflictErr.SessionID,
		}
	case errors.As(err, &validationErrs):
		status = fiber.StatusBadRequest
		resp.Error = validationErrs.Error()
	case errors.Is(err, schedule.ErrBadInput):
		status = fiber.StatusBadRequest
		resp.Error = err.Error()
	case errors.Is(err, schedule.ErrSessionNotFound):
		status = fiber.StatusNotFound
		resp.Error = err.Error()
	case errors.Is(err, schedule.ErrSessionBusy):
		status = fiber.StatusLocked
		resp.Error = err.Error()
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		resp.Error = fiberErr.Message
	}

	if status >= fiber.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("request_id", resp.RequestID),
			zap.String("path", c.Path()),
			zap.Error(err))
	}
	return c.Status(status).JSON(resp)
}
