package collab

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studysync/studysync-api/model"
	"github.com/studysync/studysync-api/utils/middleware"
	"github.com/studysync/studysync-api/utils/response"
)

// SendMessageRequest represents a room message
type SendMessageRequest struct {
	Text string `json:"text"`
}

// ListMessages returns a room's messages in ascending timestamp order
func (h *CollabHandler) ListMessages(c *fiber.Ctx) error {
	var messages []model.Message
	err := h.db.Where("room_id = ?", c.Params("id")).
		Order("timestamp ASC").
		Limit(listCap).
		Find(&messages).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch messages")
	}

	return response.Success(c, messages)
}

// SendMessage appends a message to a room with the sender's display name
// denormalized onto it.
func (h *CollabHandler) SendMessage(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Text == "" {
		return response.BadRequest(c, "Text is required")
	}

	message := model.Message{
		RoomID:     c.Params("id"),
		Sender:     user.ID,
		SenderName: user.Name,
		Text:       req.Text,
	}

	if err := h.db.Create(&message).Error; err != nil {
		return response.InternalServerError(c, "Failed to send message")
	}

	return response.Created(c, message)
}
