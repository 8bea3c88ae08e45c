package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/studysync/studysync-api/model"
	authutil "github.com/studysync/studysync-api/utils/auth"
	"github.com/studysync/studysync-api/utils/middleware"
	"github.com/studysync/studysync-api/utils/response"
	"github.com/studysync/studysync-api/utils/validation"
	"gorm.io/gorm"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	db                   *gorm.DB
	jwtManager           *authutil.JWTManager
	validator            *validation.Validator
	bruteForceProtection *middleware.BruteForceProtection
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, jwtManager *authutil.JWTManager, bruteForceProtection *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		db:                   db,
		jwtManager:           jwtManager,
		validator:            validation.NewValidator(),
		bruteForceProtection: bruteForceProtection,
	}
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// TokenResponse carries a bearer token plus the sanitized user record
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// UserResponse represents user data in responses. It never includes the
// password digest.
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	JoinDate   time.Time `json:"joinDate"`
	LastActive time.Time `json:"lastActive"`
	Banned     bool      `json:"banned"`
}

// NewUserResponse builds the sanitized response shape for a user
func NewUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		JoinDate:   user.JoinDate,
		LastActive: user.LastActive,
		Banned:     user.Banned,
	}
}

// Register handles user registration. New accounts always start as students;
// roles are only mutated by an admin.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, "Name, a valid email, and a password of at least 8 characters are required")
	}

	// Email uniqueness is enforced at creation
	var existingUser model.User
	if err := h.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		return response.Conflict(c, "Email already registered")
	}

	hashedPassword, err := authutil.HashPassword(req.Password)
	if err != nil {
		return response.BadRequest(c, "Password must be at least 8 characters long")
	}

	user := model.User{
		Name:         validation.SanitizeString(req.Name),
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         model.RoleStudent,
	}

	if err := h.db.Create(&user).Error; err != nil {
		return response.InternalServerError(c, "Failed to create user")
	}

	accessToken, err := h.jwtManager.Generate(user.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate access token")
	}

	return response.Created(c, TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        NewUserResponse(&user),
	})
}
