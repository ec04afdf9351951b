package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Ajayhariharan/activax/internal/core/domain"
)

type stubSessions struct {
	user  *domain.User
	token string
}

func (s *stubSessions) Login(context.Context, string, string) (string, *domain.User, error) {
	return s.token, s.user, nil
}

func (s *stubSessions) Logout(context.Context) {}

func (s *stubSessions) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if s.user != nil && token == s.token {
		return s.user, nil
	}
	return nil, domain.ErrInvalidCredentials
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{
		user:  &domain.User{ID: 1001, FullName: "Admin One", Role: domain.RoleAdmin},
		token: "valid-token",
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(sessions)(func(c echo.Context) error {
		called = true
		user, ok := c.Get(CurrentUserKey).(domain.User)
		if !ok {
			t.Fatalf("user not set in context")
		}
		if user.ID != 1001 {
			t.Fatalf("wrong user: %+v", user)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeaderRedirectsToLogin(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubSessions{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestAuth_StaleTokenRedirectsToLogin(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{
		user:  &domain.User{ID: 1001, Role: domain.RoleAdmin},
		token: "current-token",
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubSessions{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}

func TestOptionalAuth_PassesThroughWithoutToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/sections", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := OptionalAuth(&stubSessions{})(func(c echo.Context) error {
		called = true
		if c.Get(CurrentUserKey) != nil {
			t.Fatalf("no user should be set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestOptionalAuth_InjectsUserWhenTokenValid(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{
		user:  &domain.User{ID: 7, Role: domain.RoleUser},
		token: "valid-token",
	}

	req := httptest.NewRequest(http.MethodGet, "/sections", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := OptionalAuth(sessions)(func(c echo.Context) error {
		user, ok := c.Get(CurrentUserKey).(domain.User)
		if !ok || user.ID != 7 {
			t.Fatalf("expected user 7 in context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
