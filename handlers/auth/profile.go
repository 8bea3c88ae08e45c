package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studysync/studysync-api/utils/middleware"
	"github.com/studysync/studysync-api/utils/response"
)

// Me returns the currently authenticated user's profile
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	return response.Success(c, NewUserResponse(user))
}
