package rest

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	headerRequestID = "X-Request-ID"
	localRequestID  = "request_id"
)

// requestContext tags each request with an id, bounds it with a timeout and logs it
func (h *Handler) requestContext(c *fiber.Ctx) error {
	id := c.Get(headerRequestID)
	if id == "" {
		id = h.uuid.NewUUID()
	}
	c.Set(headerRequestID, id)
	c.Locals(localRequestID, id)

	ctx, cancel := context.WithTimeout(c.UserContext(), h.requestTimeout)
	defer cancel()
	c.SetUserContext(ctx)

	start := time.Now()
	err := c.Next()
	if err != nil {
		// run the error handler now so the logged status is the final one
		if herr := h.errorHandler(c, err); herr != nil {
			return herr
		}
	}

	h.log.Info("request",
		zap.String("request_id", id),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(localRequestID).(string)
	return id
}
