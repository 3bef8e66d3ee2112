package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lemonqwest/household-api/internal/core/domain"
	"github.com/lemonqwest/household-api/internal/core/ports"
)

type stubUserService struct {
	createFn func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	listFn   func(ctx context.Context) ([]*domain.User, error)
	updateFn func(ctx context.Context, id string, in ports.UpdateProfileInput) (*domain.User, error)
}

func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, id string, in ports.UpdateProfileInput) (*domain.User, error) {
	return s.updateFn(ctx, id, in)
}

func TestUserHandler_Create_CaregiverWithPIN(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		createFn: func(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
			if in.Name != "Parent" || in.Role != domain.RoleCaregiver {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.PIN == nil || in.PIN.Value() != "1234" {
				t.Fatalf("pin not passed through")
			}
			return &domain.User{ID: "caregiver-1", Name: in.Name, Role: in.Role, IsAdmin: in.IsAdmin}, nil
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"name":"Parent","role":"caregiver","pin":"1234","is_admin":true}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUserHandler_Create_BadPIN(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		createFn: func(_ context.Context, _ ports.CreateUserInput) (*domain.User, error) {
			t.Fatalf("service must not be called for invalid payloads")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"name":"Parent","role":"caregiver","pin":"12ab"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Create_DuplicatePIN(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		createFn: func(_ context.Context, _ ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"name":"Parent","role":"caregiver","pin":"1234"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestUserHandler_List_Empty(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		listFn: func(_ context.Context) ([]*domain.User, error) {
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		getFn: func(_ context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		updateFn: func(_ context.Context, id string, in ports.UpdateProfileInput) (*domain.User, error) {
			if id != "child-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if in.DisplayName == nil || *in.DisplayName != "Lem" {
				t.Fatalf("display name not passed: %+v", in)
			}
			if in.AvatarData != nil {
				t.Fatalf("unset field must stay nil")
			}
			return &domain.User{ID: id, Name: "Lemmy", DisplayName: "Lem", Role: domain.RoleChild}, nil
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"display_name":"Lem"}`)
	req := httptest.NewRequest(http.MethodPatch, "/v1/users/child-1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("child-1")

	if err := handler.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.DisplayName != "Lem" {
		t.Fatalf("unexpected user: %+v", user)
	}
}
