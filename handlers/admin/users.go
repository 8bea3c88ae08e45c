package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studysync/studysync-api/model"
	"github.com/studysync/studysync-api/utils/middleware"
	"github.com/studysync/studysync-api/utils/response"
	"gorm.io/gorm"
)

const userListCap = 1000

// AdminHandler handles admin user management. Every mutation writes an
// AdminLog entry with the acting admin's denormalized name.
type AdminHandler struct {
	db *gorm.DB
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// UpdateRoleRequest represents a role change request
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// logAction appends an audit entry for an admin mutation
func (h *AdminHandler) logAction(admin *model.User, actionType, target string) {
	entry := model.AdminLog{
		AdminID:    admin.ID,
		AdminName:  admin.Name,
		ActionType: actionType,
		Target:     target,
	}
	// The mutation already committed; a failed audit write must not fail
	// the request.
	_ = h.db.Create(&entry).Error
}

// ListUsers returns all users with the password digest excluded
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	var users []model.User
	err := h.db.Order("join_date DESC").
		Limit(userListCap).
		Find(&users).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch users")
	}

	// PasswordHash is json:"-" but is cleared anyway so it can never leak
	// through serialization changes.
	for i := range users {
		users[i].PasswordHash = ""
	}

	return response.Success(c, users)
}

// UpdateRole changes a user's role
func (h *AdminHandler) UpdateRole(c *fiber.Ctx) error {
	admin, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if !model.IsValidRole(req.Role) {
		return response.BadRequest(c, "Invalid role. Must be 'student' or 'admin'")
	}

	userID := c.Params("id")
	result := h.db.Model(&model.User{}).
		Where("id = ?", userID).
		Update("role", req.Role)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to update role")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "User not found")
	}

	h.logAction(admin, model.AdminActionUpdateRole, userID)

	return response.SuccessWithMessage(c, "User role updated", nil)
}

// BanUser marks a user as banned. A ban blocks new logins; it does not
// revoke tokens that are already outstanding.
func (h *AdminHandler) BanUser(c *fiber.Ctx) error {
	return h.setBanned(c, true, model.AdminActionBanUser, "User banned")
}

// UnbanUser lifts a ban
func (h *AdminHandler) UnbanUser(c *fiber.Ctx) error {
	return h.setBanned(c, false, model.AdminActionUnbanUser, "User unbanned")
}

func (h *AdminHandler) setBanned(c *fiber.Ctx, banned bool, actionType, message string) error {
	admin, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	userID := c.Params("id")
	result := h.db.Model(&model.User{}).
		Where("id = ?", userID).
		Update("banned", banned)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to update user")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "User not found")
	}

	h.logAction(admin, actionType, userID)

	return response.SuccessWithMessage(c, message, nil)
}

// DeleteUser removes a user account
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	admin, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	userID := c.Params("id")
	if admin.ID == userID {
		return response.BadRequest(c, "Cannot delete your own account")
	}

	result := h.db.Where("id = ?", userID).Delete(&model.User{})
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete user")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "User not found")
	}

	h.logAction(admin, model.AdminActionDeleteUser, userID)

	return response.SuccessWithMessage(c, "User deleted", nil)
}
