package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studysync/studysync-api/model"
	"github.com/studysync/studysync-api/utils/response"
)

const auditListCap = 100

// ListLogs returns the most recent admin audit entries, newest first
func (h *AdminHandler) ListLogs(c *fiber.Ctx) error {
	var logs []model.AdminLog
	err := h.db.Order("timestamp DESC").
		Limit(auditListCap).
		Find(&logs).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch audit logs")
	}

	return response.Success(c, logs)
}
