package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lemonqwest/household-api/internal/api/metrics"
	"github.com/lemonqwest/household-api/internal/core/domain"
	"github.com/lemonqwest/household-api/internal/core/ports"
)

// AuthHandler exposes the authentication and session domain over HTTP.
// Expected auth failures arrive as AuthResult variants and are mapped to
// status codes here; only collaborator faults become 5xx responses.
type AuthHandler struct {
	authService ports.AuthService
	tokens      *TokenIssuer
}

func NewAuthHandler(authService ports.AuthService, tokens *TokenIssuer) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens}
}

type pinLoginRequest struct {
	PIN string `json:"pin" validate:"required,len=4,numeric"`
}

type switchRoleRequest struct {
	TargetRole string `json:"target_role" validate:"required,oneof=child caregiver"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user"`
}

// LoginWithPIN authenticates a caregiver by PIN and establishes the session.
//
// @Summary      Authenticate with a PIN
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      pinLoginRequest  true  "PIN credential"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/pin [post]
func (h *AuthHandler) LoginWithPIN(c echo.Context) error {
	var req pinLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	pin, err := domain.NewPIN(req.PIN)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "pin must be four digits"})
	}

	start := time.Now()
	result, err := h.authService.AuthenticateWithPIN(c.Request().Context(), pin)
	metrics.AuthDuration.WithLabelValues("pin").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("pin", "error").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("pin", string(result.Outcome)).Inc()

	if !result.Authenticated() {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid pin"})
	}
	return h.respondAuthenticated(c, result.User)
}

// LoginAsChild authenticates the household child without any PIN barrier.
//
// @Summary      Authenticate as the child
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      404  {object}  map[string]string
// @Router       /auth/child [post]
func (h *AuthHandler) LoginAsChild(c echo.Context) error {
	start := time.Now()
	result, err := h.authService.AuthenticateAsChild(c.Request().Context())
	metrics.AuthDuration.WithLabelValues("child").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("child", "error").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("child", string(result.Outcome)).Inc()

	if !result.Authenticated() {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	}
	return h.respondAuthenticated(c, result.User)
}

// SwitchRole switches the session to the target role's user. Only a
// caregiver session may switch; denial and absence both answer 404.
//
// @Summary      Switch the session role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      switchRoleRequest  true  "Target role"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/switch-role [post]
func (h *AuthHandler) SwitchRole(c echo.Context) error {
	var req switchRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	target, err := domain.ParseRole(req.TargetRole)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown role"})
	}

	start := time.Now()
	result, err := h.authService.SwitchRole(c.Request().Context(), target)
	metrics.AuthDuration.WithLabelValues("switch_role").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RoleSwitchesTotal.WithLabelValues(req.TargetRole, "error").Inc()
		return err
	}
	metrics.RoleSwitchesTotal.WithLabelValues(req.TargetRole, string(result.Outcome)).Inc()

	if !result.Authenticated() {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	}
	return h.respondAuthenticated(c, result.User)
}

// Logout clears the session. Always succeeds, active session or not.
//
// @Summary      Log out
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context()); err != nil {
		return err
	}
	metrics.LogoutsTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current session's user.
//
// @Summary      Current session user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.authService.CurrentUser(c.Request().Context())
	if err != nil {
		return err
	}
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
	}
	return c.JSON(http.StatusOK, authResponse{User: user})
}

func (h *AuthHandler) respondAuthenticated(c echo.Context, user *domain.User) error {
	token, err := h.tokens.Issue(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}
