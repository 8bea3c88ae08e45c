package collab

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/studysync/studysync-api/model"
	"github.com/studysync/studysync-api/utils/middleware"
	"github.com/studysync/studysync-api/utils/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const listCap = 1000

// CollabHandler handles collaboration rooms and their messages. Rooms are
// visible to every authenticated user; membership is an unordered set and
// joining is idempotent.
type CollabHandler struct {
	db *gorm.DB
}

// NewCollabHandler creates a new collab handler
func NewCollabHandler(db *gorm.DB) *CollabHandler {
	return &CollabHandler{db: db}
}

// CreateRoomRequest represents a room creation request
type CreateRoomRequest struct {
	Topic string `json:"topic"`
}

// CreateRoom creates a room with the creator as its initial member
func (h *CollabHandler) CreateRoom(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Topic == "" {
		return response.BadRequest(c, "Topic is required")
	}

	room := model.CollabRoom{
		Topic:         req.Topic,
		CreatedBy:     user.ID,
		CreatedByName: user.Name,
		Members:       pq.StringArray{user.ID},
	}

	if err := h.db.Create(&room).Error; err != nil {
		return response.InternalServerError(c, "Failed to create room")
	}

	return response.Created(c, room)
}

// ListRooms returns all rooms, newest first
func (h *CollabHandler) ListRooms(c *fiber.Ctx) error {
	var rooms []model.CollabRoom
	err := h.db.Order("created_at DESC").
		Limit(listCap).
		Find(&rooms).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch rooms")
	}

	return response.Success(c, rooms)
}

// JoinRoom adds the requesting user to a room's membership set. The append
// is guarded inside a single UPDATE, so re-joining is a no-op rather than an
// error and concurrent joins cannot duplicate a member.
func (h *CollabHandler) JoinRoom(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var room model.CollabRoom
	result := h.db.Model(&room).
		Clauses(clause.Returning{}).
		Where("id = ?", c.Params("id")).
		UpdateColumn("members", gorm.Expr(
			"CASE WHEN ? = ANY(members) THEN members ELSE array_append(members, ?) END",
			user.ID, user.ID,
		))
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to join room")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Room not found")
	}

	return response.Success(c, room)
}
