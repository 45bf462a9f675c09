package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/anuncios-armazem/pkg/logger"
)

// LocalRequestID clave donde el middleware requestid deja el id de la petición.
const LocalRequestID = "requestid"

// RequestLogger registra una línea por petición con método, ruta, status y latencia.
// Debe montarse DESPUÉS de requestid para incluir el id.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// el ErrorHandler fija el status final
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		ev.Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalRequestID).(string)
	return id
}
