package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

// internalError registra el error real del lado del servidor y responde un
// 500 con mensaje fijo. Los detalles del store (hosts, DSN, credenciales)
// viajan al log, nunca al cliente.
func internalError(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("operación fallida")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
