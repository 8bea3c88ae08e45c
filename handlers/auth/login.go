package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/studysync/studysync-api/model"
	authutil "github.com/studysync/studysync-api/utils/auth"
	"github.com/studysync/studysync-api/utils/response"
)

// LoginRequest represents a user login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles user login. Wrong email and wrong password are
// indistinguishable to the caller. A banned account cannot create a new
// session even with correct credentials.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	ip := c.IP()

	var user model.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Incorrect email or password")
	}

	if err := authutil.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Incorrect email or password")
	}

	if user.Banned {
		return response.Forbidden(c, "Account has been banned")
	}

	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordSuccessfulAttempt(c, ip)
	}

	// Update last active on successful login
	now := time.Now()
	if err := h.db.Model(&user).UpdateColumn("last_active", now).Error; err != nil {
		return response.InternalServerError(c, "Failed to update user")
	}
	user.LastActive = now

	accessToken, err := h.jwtManager.Generate(user.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate access token")
	}

	return response.Success(c, TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        NewUserResponse(&user),
	})
}
