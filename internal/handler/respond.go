package handler

import (
	"go-apparel-stock/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// fail maps an application error onto the response. Validation and stock
// failures carry the violated constraint; storage faults are logged with
// detail and reported generically.
func fail(c *fiber.Ctx, log zerolog.Logger, err error) error {
	if apperr.IsCode(err, apperr.CodeStorage) {
		log.Error().Err(err).Str("path", c.Path()).Msg("storage fault")
	}
	return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": apperr.PublicMessage(err)})
}
