package note

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studysync/studysync-api/model"
	"github.com/studysync/studysync-api/utils/middleware"
	"github.com/studysync/studysync-api/utils/policy"
	"github.com/studysync/studysync-api/utils/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const listCap = 1000

// NoteHandler handles shared study notes. Notes are readable by every
// authenticated user; deletion is restricted to the owner or an admin.
type NoteHandler struct {
	db *gorm.DB
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(db *gorm.DB) *NoteHandler {
	return &NoteHandler{db: db}
}

// CreateNoteRequest represents a note upload. A note carries either inline
// text content or a base64-encoded file payload.
type CreateNoteRequest struct {
	Title    string `json:"title"`
	Subject  string `json:"subject,omitempty"`
	Content  string `json:"content,omitempty"`
	FileData string `json:"fileData,omitempty"`
	FileName string `json:"fileName,omitempty"`
	FileType string `json:"fileType,omitempty"`
}

// CreateNote creates a note with the uploader's display name denormalized
// onto the record.
func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Title == "" {
		return response.BadRequest(c, "Title is required")
	}

	note := model.Note{
		UserID:       user.ID,
		UploaderName: user.Name,
		Title:        req.Title,
		Subject:      req.Subject,
		Content:      req.Content,
		FileData:     req.FileData,
		FileName:     req.FileName,
		FileType:     req.FileType,
	}

	if err := h.db.Create(&note).Error; err != nil {
		return response.InternalServerError(c, "Failed to create note")
	}

	return response.Created(c, note)
}

// ListNotes returns all notes, newest first
func (h *NoteHandler) ListNotes(c *fiber.Ctx) error {
	var notes []model.Note
	err := h.db.Order("date DESC").
		Limit(listCap).
		Find(&notes).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch notes")
	}

	return response.Success(c, notes)
}

// GetNote fetches a note by id. The fetch has a side effect: the download
// counter is incremented atomically in the same statement that returns the
// row, so concurrent fetches never lose updates.
func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	var note model.Note
	result := h.db.Model(&note).
		Clauses(clause.Returning{}).
		Where("id = ?", c.Params("id")).
		UpdateColumn("downloads", gorm.Expr("downloads + 1"))
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to fetch note")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Note not found")
	}

	return response.Success(c, note)
}

// DeleteNote deletes a note. Owners can delete their own notes; admins can
// moderate any note. The moderation decision is compiled into the delete
// filter so a non-owned id is indistinguishable from an absent one.
func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	query := h.db.Where("id = ?", c.Params("id"))
	if !policy.IsAdmin(user) {
		query = query.Where("user_id = ?", user.ID)
	}

	result := query.Delete(&model.Note{})
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete note")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Note not found")
	}

	return response.SuccessWithMessage(c, "Note deleted successfully", nil)
}
