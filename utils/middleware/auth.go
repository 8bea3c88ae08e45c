package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/studysync/studysync-api/model"
	"github.com/studysync/studysync-api/utils/auth"
	"github.com/studysync/studysync-api/utils/policy"
	"github.com/studysync/studysync-api/utils/response"
	"gorm.io/gorm"
)

// AuthMiddleware resolves the bearer token on each request to a user record.
// Ban status is intentionally not checked here: a ban blocks new logins but
// does not revoke outstanding tokens, so routes that need hard revocation
// must check the banned flag themselves.
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	db         *gorm.DB
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager, db *gorm.DB) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		db:         db,
	}
}

// resolve authenticates the request and loads the subject user. It returns a
// non-nil error response when the credential is missing, invalid, expired,
// or its subject no longer exists.
func (m *AuthMiddleware) resolve(c *fiber.Ctx) (*model.User, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, response.Unauthorized(c, "Missing authorization token")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, response.Unauthorized(c, "Invalid authorization format")
	}

	claims, err := m.jwtManager.Validate(parts[1])
	if err != nil {
		return nil, response.Unauthorized(c, "Invalid or expired token")
	}

	var user model.User
	if err := m.db.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.Unauthorized(c, "Invalid or expired token")
		}
		return nil, response.InternalServerError(c, "Failed to load user")
	}

	c.Locals("user", &user)
	c.Locals("user_id", user.ID)
	c.Locals("user_role", user.Role)

	return &user, nil
}

// Required is middleware that requires a valid bearer token
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := m.resolve(c); err != nil {
			return err
		}
		return c.Next()
	}
}

// RequireAdmin is middleware that requires a valid bearer token belonging to
// an admin. Any authenticated non-admin receives Forbidden, never NotFound.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := m.resolve(c)
		if err != nil {
			return err
		}
		if !policy.IsAdmin(user) {
			return response.Forbidden(c, "Admin access required")
		}
		return c.Next()
	}
}

// GetUser extracts the resolved user from context
func GetUser(c *fiber.Ctx) (*model.User, bool) {
	user := c.Locals("user")
	if user == nil {
		return nil, false
	}
	u, ok := user.(*model.User)
	return u, ok
}

// GetUserID extracts the resolved user id from context
func GetUserID(c *fiber.Ctx) (string, bool) {
	userID := c.Locals("user_id")
	if userID == nil {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok
}
