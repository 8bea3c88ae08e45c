package task

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/studysync/studysync-api/model"
	"github.com/studysync/studysync-api/utils/middleware"
	"github.com/studysync/studysync-api/utils/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const listCap = 1000

// TaskHandler handles task CRUD. Tasks are owner-exclusive: every read and
// mutation is scoped to the requesting user, so a non-owned id is
// indistinguishable from an absent one.
type TaskHandler struct {
	db *gorm.DB
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{db: db}
}

// CreateTaskRequest represents a task creation request
type CreateTaskRequest struct {
	Title    string `json:"title"`
	Subject  string `json:"subject,omitempty"`
	DueDate  string `json:"dueDate,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// TaskPatch is a partial update: only fields present in the request body are
// applied. Pointer fields distinguish "absent" from "set to zero value".
type TaskPatch struct {
	Title     *string `json:"title"`
	Subject   *string `json:"subject"`
	DueDate   *string `json:"dueDate"`
	Priority  *string `json:"priority"`
	Completed *bool   `json:"completed"`
}

var errEmptyPatch = errors.New("no update data provided")

// updates translates a patch into column assignments. An empty patch is a
// client error, not a no-op.
func (p *TaskPatch) updates() (map[string]interface{}, error) {
	updates := make(map[string]interface{})
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Subject != nil {
		updates["subject"] = *p.Subject
	}
	if p.DueDate != nil {
		updates["due_date"] = *p.DueDate
	}
	if p.Priority != nil {
		if !model.IsValidPriority(*p.Priority) {
			return nil, errors.New("invalid priority")
		}
		updates["priority"] = *p.Priority
	}
	if p.Completed != nil {
		updates["completed"] = *p.Completed
	}
	if len(updates) == 0 {
		return nil, errEmptyPatch
	}
	return updates, nil
}

// CreateTask creates a task owned by the requesting user
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Title == "" {
		return response.BadRequest(c, "Title is required")
	}

	if req.Priority == "" {
		req.Priority = model.PriorityMedium
	}
	if !model.IsValidPriority(req.Priority) {
		return response.BadRequest(c, "Priority must be low, medium, or high")
	}

	task := model.Task{
		UserID:   user.ID,
		Title:    req.Title,
		Subject:  req.Subject,
		DueDate:  req.DueDate,
		Priority: req.Priority,
	}

	if err := h.db.Create(&task).Error; err != nil {
		return response.InternalServerError(c, "Failed to create task")
	}

	return response.Created(c, task)
}

// ListTasks returns the requesting user's tasks
func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var tasks []model.Task
	err := h.db.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(listCap).
		Find(&tasks).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch tasks")
	}

	return response.Success(c, tasks)
}

// UpdateTask applies a partial update to an owned task. The update is a
// single statement scoped by id and owner; zero rows affected means the task
// is absent or not owned, reported uniformly as NotFound.
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var patch TaskPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updates, err := patch.updates()
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	var task model.Task
	result := h.db.Model(&task).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", c.Params("id"), user.ID).
		Updates(updates)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to update task")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Task not found")
	}

	return response.Success(c, task)
}

// DeleteTask deletes an owned task
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	result := h.db.Where("id = ? AND user_id = ?", c.Params("id"), user.ID).
		Delete(&model.Task{})
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete task")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Task not found")
	}

	return response.SuccessWithMessage(c, "Task deleted successfully", nil)
}
