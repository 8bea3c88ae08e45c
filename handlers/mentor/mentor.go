package mentor

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/studysync/studysync-api/services"
	"github.com/studysync/studysync-api/utils/middleware"
	"github.com/studysync/studysync-api/utils/response"
	"gorm.io/gorm"
)

// MentorHandler exposes the AI mentor chat proxy
type MentorHandler struct {
	db            *gorm.DB
	mentorService *services.MentorService
}

// NewMentorHandler creates a new mentor handler
func NewMentorHandler(db *gorm.DB, mentorService *services.MentorService) *MentorHandler {
	return &MentorHandler{
		db:            db,
		mentorService: mentorService,
	}
}

// ChatRequest represents one mentor conversation turn
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// SummarizeRequest represents a one-shot summarization request
type SummarizeRequest struct {
	Text string `json:"text"`
}

// Chat forwards a message to the mentor service and returns the assistant's
// reply. Provider failures surface as ServiceUnavailable; the user's message
// stays persisted.
func (h *MentorHandler) Chat(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.SessionID == "" || req.Message == "" {
		return response.BadRequest(c, "Session id and message are required")
	}

	reply, err := h.mentorService.Converse(c.Context(), user, req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrProviderUnavailable) {
			return response.ServiceUnavailable(c, "AI service temporarily unavailable")
		}
		return response.InternalServerError(c, "Failed to process message")
	}

	return response.Success(c, fiber.Map{"response": reply})
}

// History returns the full transcript of a mentor session in ascending order
func (h *MentorHandler) History(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	entries, err := h.mentorService.History(user.ID, c.Params("sessionId"))
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch history")
	}

	return response.Success(c, entries)
}

// Summarize condenses arbitrary text into a short summary. Nothing is
// persisted.
func (h *MentorHandler) Summarize(c *fiber.Ctx) error {
	if _, ok := middleware.GetUser(c); !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req SummarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Text == "" {
		return response.BadRequest(c, "Text is required")
	}

	summary, err := h.mentorService.Summarize(c.Context(), req.Text)
	if err != nil {
		return response.ServiceUnavailable(c, "AI service temporarily unavailable")
	}

	return response.Success(c, fiber.Map{"summary": summary})
}
