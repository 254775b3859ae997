package auth

import (
	"go-estate-crm/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	SessionService SessionService
}

func NewAuthController(sessionService SessionService) *AuthController {
	return &AuthController{
		SessionService: sessionService,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SessionResponse struct {
	Authenticated     bool   `json:"authenticated"`
	User              any    `json:"user"`
	Role              string `json:"role,omitempty"`
	CanAccessSettings bool   `json:"canAccessSettings"`
}

// Login godoc
// @Summary      Login
// @Description  Login with a roster email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginRequest true "Login Input"
// @Success      200  {object} api.Notification
// @Failure      400  {string} string "Invalid request body"
// @Failure      401  {string} string "Invalid credentials"
// @Router       /api/login [post]
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if ok, err := api.ParseAndValidate(c, &req); !ok {
		return err
	}

	ok, err := ctrl.SessionService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return api.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return api.Notify(c, fiber.StatusOK, "Welcome back!", "You have successfully logged in.", ctrl.SessionService.Current())
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object} api.Notification
// @Router       /api/logout [post]
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	if err := ctrl.SessionService.Logout(c.UserContext()); err != nil {
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return api.Notify(c, fiber.StatusOK, "Logged out", "", nil)
}

// Session godoc
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object} SessionResponse
// @Router       /api/session [get]
func (ctrl *AuthController) Session(c *fiber.Ctx) error {
	user := ctrl.SessionService.Current()
	if user == nil {
		return c.JSON(SessionResponse{Authenticated: false})
	}
	return c.JSON(SessionResponse{
		Authenticated:     true,
		User:              user,
		Role:              string(user.Role),
		CanAccessSettings: ctrl.SessionService.CanAccessSettings(),
	})
}
