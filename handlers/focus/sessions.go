package focus

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studysync/studysync-api/model"
	"github.com/studysync/studysync-api/utils/middleware"
	"github.com/studysync/studysync-api/utils/response"
	"gorm.io/gorm"
)

const listCap = 1000

// FocusHandler handles focus session logging. Sessions are append-only and
// owner-scoped: create and list only, no update or delete.
type FocusHandler struct {
	db *gorm.DB
}

// NewFocusHandler creates a new focus handler
func NewFocusHandler(db *gorm.DB) *FocusHandler {
	return &FocusHandler{db: db}
}

// CreateSessionRequest represents a completed focus timer run
type CreateSessionRequest struct {
	Duration int    `json:"duration"`
	TaskTag  string `json:"taskTag,omitempty"`
}

// CreateSession records a focus session for the requesting user
func (h *FocusHandler) CreateSession(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Duration <= 0 {
		return response.BadRequest(c, "Duration must be positive")
	}

	session := model.FocusSession{
		UserID:   user.ID,
		Duration: req.Duration,
		TaskTag:  req.TaskTag,
	}

	if err := h.db.Create(&session).Error; err != nil {
		return response.InternalServerError(c, "Failed to create focus session")
	}

	return response.Created(c, session)
}

// ListSessions returns the requesting user's focus sessions, newest first
func (h *FocusHandler) ListSessions(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var sessions []model.FocusSession
	err := h.db.Where("user_id = ?", user.ID).
		Order("date DESC").
		Limit(listCap).
		Find(&sessions).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch focus sessions")
	}

	return response.Success(c, sessions)
}
