package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wanjikuh/shop_admin/logger"
	"github.com/wanjikuh/shop_admin/services"
)

type AuthHandler struct {
	Auth  services.AuthService
	OAuth services.OAuthService
	Siwe  services.SiweService
	Log   *logger.Logger
}

func NewAuthHandler(auth services.AuthService, oauth services.OAuthService, siwe services.SiweService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, OAuth: oauth, Siwe: siwe, Log: log}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SiweLoginRequest struct {
	Message   string `json:"message" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	return c.Render("register", fiber.Map{"Title": "Register"})
}

func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{"Title": "Login"})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := h.Auth.Register(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.Log.Error("registration failed", "username", req.Username, "error", err)
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := h.Auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(res)
}

// Logout is client-side in a stateless JWT setup; the endpoint exists so
// the frontend has something to call.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func (h *AuthHandler) OAuthLogin(c *fiber.Ctx) error {
	url, state := h.OAuth.AuthorizeURL()
	return c.JSON(fiber.Map{"authorize_url": url, "state": state})
}

func (h *AuthHandler) OAuthCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing authorization code"})
	}

	token, err := h.OAuth.ExchangeCode(c.Context(), code)
	if err != nil {
		h.Log.Error("oauth code exchange failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Token exchange failed"})
	}
	return c.JSON(services.AuthResponse{Token: token})
}

func (h *AuthHandler) SiweNonce(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"nonce": h.Siwe.GenerateNonce()})
}

func (h *AuthHandler) SiweLogin(c *fiber.Ctx) error {
	var req SiweLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	address, err := h.Siwe.Verify(req.Message, req.Signature)
	if err != nil {
		return errorResponse(c, err)
	}

	res, err := h.Auth.TokenForAddress(address)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(res)
}
