package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Ajayhariharan/activax/internal/core/domain"
	"github.com/Ajayhariharan/activax/internal/core/ports"
)

func TestUserHandler_List_ManagersTab(t *testing.T) {
	users := &stubUserService{
		managersFn: func(actor domain.User) ([]ports.ManagerSummary, error) {
			return []ports.ManagerSummary{
				{User: domain.User{ID: 1, FullName: "Mona Manager", Role: domain.RoleManager}, TeamSize: 2},
			}, nil
		},
	}
	handler := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodGet, "/users?tab=managers", "")
	c.Set("current_user", domain.User{ID: 1001, Role: domain.RoleAdmin})
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Tab   string `json:"tab"`
		Items []struct {
			FullName string `json:"fullName"`
			TeamSize *int   `json:"teamSize"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Tab != "managers" || len(resp.Items) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Items[0].TeamSize == nil || *resp.Items[0].TeamSize != 2 {
		t.Fatalf("expected team size 2, got %+v", resp.Items[0])
	}
}

func TestUserHandler_List_AdminsTabForbiddenForManager(t *testing.T) {
	handler := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodGet, "/users?tab=admins", "")
	c.Set("current_user", domain.User{ID: 1, Role: domain.RoleManager})
	if err := handler.List(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserHandler_List_UnknownTab(t *testing.T) {
	handler := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodGet, "/users?tab=ghosts", "")
	c.Set("current_user", domain.User{ID: 1001, Role: domain.RoleAdmin})
	err := handler.List(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_List_BadManagerFilter(t *testing.T) {
	handler := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodGet, "/users?tab=users&manager=-3", "")
	c.Set("current_user", domain.User{ID: 1001, Role: domain.RoleAdmin})
	err := handler.List(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	var deleted int64
	handler := NewUserHandler(&stubUserService{
		deleteFn: func(_ context.Context, actor domain.User, id int64) error {
			deleted = id
			return nil
		},
	})

	c, rec := newTestContext(t, http.MethodDelete, "/users/1042", "")
	c.SetParamNames("id")
	c.SetParamValues("1042")
	c.Set("current_user", domain.User{ID: 1001, Role: domain.RoleAdmin})

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != 1042 {
		t.Fatalf("expected delete of 1042, got %d", deleted)
	}
}

func TestUserHandler_Delete_BadID(t *testing.T) {
	handler := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodDelete, "/users/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	c.Set("current_user", domain.User{ID: 1001, Role: domain.RoleAdmin})

	err := handler.Delete(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_Managers_PublicShape(t *testing.T) {
	handler := NewUserHandler(&stubUserService{
		managerOptionsFn: func() []domain.User {
			return []domain.User{{ID: 1, FullName: "Mona Manager", Email: "mona@example.com", Role: domain.RoleManager}}
		},
	})

	// No session: the registration form sees id and name only.
	c, rec := newTestContext(t, http.MethodGet, "/managers", "")
	if err := handler.Managers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var options []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &options); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(options) != 1 {
		t.Fatalf("expected 1 option, got %d", len(options))
	}
	if _, leaked := options[0]["email"]; leaked {
		t.Fatalf("public listing must not expose emails")
	}
}
