package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/studysync/studysync-api/model"
	"github.com/studysync/studysync-api/utils/response"
)

const sessionDumpCap = 10000

// FocusSessionPoint is the slimmed focus-session shape used for chart data
type FocusSessionPoint struct {
	Duration int       `json:"duration"`
	Date     time.Time `json:"date"`
}

// AnalyticsResponse aggregates platform-wide counters
type AnalyticsResponse struct {
	TotalUsers     int64               `json:"totalUsers"`
	NewUsers       int64               `json:"newUsers"`
	TotalNotes     int64               `json:"totalNotes"`
	TotalTasks     int64               `json:"totalTasks"`
	CompletedTasks int64               `json:"completedTasks"`
	TotalRooms     int64               `json:"totalRooms"`
	TotalSessions  int64               `json:"totalSessions"`
	FocusSessions  []FocusSessionPoint `json:"focusSessions"`
}

// GetAnalytics returns platform-wide usage statistics
func (h *AdminHandler) GetAnalytics(c *fiber.Ctx) error {
	var stats AnalyticsResponse

	if err := h.db.Model(&model.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return response.InternalServerError(c, "Failed to compute analytics")
	}
	h.db.Model(&model.Note{}).Count(&stats.TotalNotes)
	h.db.Model(&model.Task{}).Count(&stats.TotalTasks)
	h.db.Model(&model.Task{}).Where("completed = ?", true).Count(&stats.CompletedTasks)
	h.db.Model(&model.CollabRoom{}).Count(&stats.TotalRooms)
	h.db.Model(&model.FocusSession{}).Count(&stats.TotalSessions)

	// Users who joined in the last 7 days
	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	h.db.Model(&model.User{}).Where("join_date >= ?", sevenDaysAgo).Count(&stats.NewUsers)

	// Session dump for chart data
	err := h.db.Model(&model.FocusSession{}).
		Select("duration", "date").
		Order("date ASC").
		Limit(sessionDumpCap).
		Find(&stats.FocusSessions).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to compute analytics")
	}
	if stats.FocusSessions == nil {
		stats.FocusSessions = []FocusSessionPoint{}
	}

	return response.Success(c, stats)
}
