package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wanjikuh/shop_admin/logger"
	"github.com/wanjikuh/shop_admin/services"
)

type UserHandler struct {
	Users services.UserService
	Log   *logger.Logger
}

func NewUserHandler(users services.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{Users: users, Log: log}
}

func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.Users.GetAllUsers(c.Context())
	if err != nil {
		h.Log.Error("failed to list users", "error", err)
		return errorResponse(c, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) UsersPage(c *fiber.Ctx) error {
	users, err := h.Users.GetAllUsers(c.Context())
	if err != nil {
		h.Log.Error("failed to list users", "error", err)
		return errorResponse(c, err)
	}
	return c.Render("users", fiber.Map{"Title": "Users", "Users": users})
}
