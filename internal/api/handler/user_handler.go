package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lemonqwest/household-api/internal/core/domain"
	"github.com/lemonqwest/household-api/internal/core/ports"
)

// UserHandler exposes household member management. All routes are mounted
// behind the caregiver gate.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	Name          string `json:"name" validate:"required"`
	Role          string `json:"role" validate:"required,oneof=child caregiver"`
	PIN           string `json:"pin,omitempty" validate:"omitempty,len=4,numeric"`
	DisplayName   string `json:"display_name,omitempty"`
	AvatarType    string `json:"avatar_type,omitempty" validate:"omitempty,oneof=predefined custom"`
	AvatarData    string `json:"avatar_data,omitempty"`
	FavoriteColor string `json:"favorite_color,omitempty"`
	IsAdmin       bool   `json:"is_admin,omitempty"`
}

type updateProfileRequest struct {
	DisplayName   *string `json:"display_name,omitempty"`
	AvatarType    *string `json:"avatar_type,omitempty" validate:"omitempty,oneof=predefined custom"`
	AvatarData    *string `json:"avatar_data,omitempty"`
	FavoriteColor *string `json:"favorite_color,omitempty"`
}

// Create registers a household member.
//
// @Summary      Create a household member
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Member details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown role"})
	}

	in := ports.CreateUserInput{
		Name:          req.Name,
		Role:          role,
		DisplayName:   req.DisplayName,
		AvatarType:    domain.AvatarType(req.AvatarType),
		AvatarData:    req.AvatarData,
		FavoriteColor: req.FavoriteColor,
		IsAdmin:       req.IsAdmin,
	}
	if req.PIN != "" {
		pin, err := domain.NewPIN(req.PIN)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "pin must be four digits"})
		}
		in.PIN = &pin
	}

	user, err := h.userService.Create(c.Request().Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, map[string]string{"error": "user already exists"})
		case errors.Is(err, domain.ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// List returns every household member.
//
// @Summary      List household members
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a single household member.
//
// @Summary      Get a household member
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile patches the member's profile attributes.
//
// @Summary      Update a member's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "User id"
// @Param        body  body      updateProfileRequest  true  "Profile changes"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/users/{id} [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	in := ports.UpdateProfileInput{
		DisplayName:   req.DisplayName,
		AvatarData:    req.AvatarData,
		FavoriteColor: req.FavoriteColor,
	}
	if req.AvatarType != nil {
		at := domain.AvatarType(*req.AvatarType)
		in.AvatarType = &at
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}
