package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studysync/studysync-api/database"
	"github.com/studysync/studysync-api/utils/response"
)

// HandleCheckHealth reports whether the service and its storage are alive
func HandleCheckHealth(c *fiber.Ctx, store database.Storage) error {
	if err := store.HealthCheck(); err != nil {
		return response.ServiceUnavailable(c, "Database unavailable")
	}
	return response.Success(c, fiber.Map{"status": "ok"})
}
