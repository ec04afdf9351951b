package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Ajayhariharan/activax/internal/core/domain"
)

type memoryAdapter struct {
	users      []domain.User
	activities []domain.Activity
	userSaves  int
	actSaves   int
}

func (m *memoryAdapter) LoadUsers(_ context.Context) ([]domain.User, error) {
	return m.users, nil
}

func (m *memoryAdapter) SaveUsers(_ context.Context, users []domain.User) error {
	m.users = append([]domain.User(nil), users...)
	m.userSaves++
	return nil
}

func (m *memoryAdapter) LoadActivities(_ context.Context) ([]domain.Activity, error) {
	return m.activities, nil
}

func (m *memoryAdapter) SaveActivities(_ context.Context, activities []domain.Activity) error {
	m.activities = append([]domain.Activity(nil), activities...)
	m.actSaves++
	return nil
}

func seededStore(t *testing.T, adapter *memoryAdapter) *Store {
	t.Helper()
	s := New(adapter, zerolog.Nop())
	if err := s.Seed(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return s
}

func TestSeed_InstallsBuiltInAdmins(t *testing.T) {
	adapter := &memoryAdapter{}
	s := seededStore(t, adapter)

	users := s.Users()
	if len(users) != 2 {
		t.Fatalf("expected 2 built-in admins, got %d", len(users))
	}
	for _, u := range users {
		if u.Role != domain.RoleAdmin {
			t.Fatalf("expected admin role, got %q", u.Role)
		}
	}
	if adapter.userSaves == 0 {
		t.Fatalf("seed must write the merged collection back")
	}
}

func TestSeed_DoesNotDuplicateAdmins(t *testing.T) {
	renamed := domain.DefaultAdmins()[0]
	renamed.FullName = "Renamed Admin"
	adapter := &memoryAdapter{users: []domain.User{renamed}}
	s := seededStore(t, adapter)

	users := s.Users()
	if len(users) != 2 {
		t.Fatalf("expected 2 users after merge, got %d", len(users))
	}
	got, ok := s.UserByID(renamed.ID)
	if !ok {
		t.Fatalf("merged admin missing")
	}
	if got.FullName != "Renamed Admin" {
		t.Fatalf("merge must keep the stored record, got %q", got.FullName)
	}
}

func TestAddUser_AssignsMonotonicIDs(t *testing.T) {
	s := seededStore(t, &memoryAdapter{})

	first := s.AddUser(context.Background(), domain.User{FullName: "A", Role: domain.RoleUser})
	second := s.AddUser(context.Background(), domain.User{FullName: "B", Role: domain.RoleUser})

	if first.ID <= 1000 {
		t.Fatalf("ids start above the floor, got %d", first.ID)
	}
	if second.ID != first.ID+1 {
		t.Fatalf("expected consecutive ids, got %d then %d", first.ID, second.ID)
	}

	// The counter seeds above every persisted id.
	adapter := &memoryAdapter{users: []domain.User{{ID: 5000, FullName: "High", Role: domain.RoleUser}}}
	s2 := seededStore(t, adapter)
	if u := s2.AddUser(context.Background(), domain.User{FullName: "Next", Role: domain.RoleUser}); u.ID != 5001 {
		t.Fatalf("expected 5001, got %d", u.ID)
	}
}

func TestAddUser_IgnoresCallerSuppliedID(t *testing.T) {
	s := seededStore(t, &memoryAdapter{})
	u := s.AddUser(context.Background(), domain.User{ID: 42, FullName: "A", Role: domain.RoleUser})
	if u.ID == 42 {
		t.Fatalf("caller-supplied id must not be honored")
	}
}

func TestAddUser_PrependsAndPersists(t *testing.T) {
	adapter := &memoryAdapter{}
	s := seededStore(t, adapter)
	saves := adapter.userSaves

	added := s.AddUser(context.Background(), domain.User{FullName: "New", Role: domain.RoleUser})
	users := s.Users()
	if users[0].ID != added.ID {
		t.Fatalf("new user should be first, got %+v", users[0])
	}
	if adapter.userSaves != saves+1 {
		t.Fatalf("mutation must persist in the same turn")
	}
	if adapter.users[0].ID != added.ID {
		t.Fatalf("durable copy out of sync")
	}
}

func TestUpdateUser_RefreshesLiveSession(t *testing.T) {
	s := seededStore(t, &memoryAdapter{})
	u := s.AddUser(context.Background(), domain.User{FullName: "Before", Role: domain.RoleUser})
	s.Login(u, "nonce-1")

	u.FullName = "After"
	if _, err := s.UpdateUser(context.Background(), u); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	sess, ok := s.Session()
	if !ok {
		t.Fatalf("session should survive the update")
	}
	if sess.User.FullName != "After" {
		t.Fatalf("session copy stale: %q", sess.User.FullName)
	}
	if sess.Nonce != "nonce-1" {
		t.Fatalf("nonce must not change on update")
	}
}

func TestUpdateUser_UnknownID(t *testing.T) {
	s := seededStore(t, &memoryAdapter{})
	if _, err := s.UpdateUser(context.Background(), domain.User{ID: 999999}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRemoveUser_LeavesActivitiesInPlace(t *testing.T) {
	s := seededStore(t, &memoryAdapter{})
	u := s.AddUser(context.Background(), domain.User{FullName: "Owner", Role: domain.RoleUser})
	act := s.AddActivity(context.Background(), u.ID, "2026-03-01", "standup")

	if err := s.RemoveUser(context.Background(), u.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, ok := s.UserByID(u.ID); ok {
		t.Fatalf("user should be gone")
	}
	if _, ok := s.ActivityByID(act.ID); !ok {
		t.Fatalf("activities survive their owner")
	}
}

func TestUpdateActivity_EmptyArgumentsKeepPriorValues(t *testing.T) {
	s := seededStore(t, &memoryAdapter{})
	act := s.AddActivity(context.Background(), 1, "2026-03-01", "standup")
	if act.UpdatedAt != nil {
		t.Fatalf("fresh activity must not carry an update stamp")
	}

	got, err := s.UpdateActivity(context.Background(), act.ID, "", "retro")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got.Date != "2026-03-01" {
		t.Fatalf("empty date must keep prior value, got %q", got.Date)
	}
	if got.Text != "retro" {
		t.Fatalf("text not updated: %q", got.Text)
	}
	if got.UpdatedAt == nil {
		t.Fatalf("edit must stamp UpdatedAt")
	}
	if got.UserID != 1 || got.ID != act.ID {
		t.Fatalf("owner and id are immutable, got %+v", got)
	}
}

func TestSession_RestartStartsUnauthenticated(t *testing.T) {
	adapter := &memoryAdapter{}
	s := seededStore(t, adapter)
	u := s.AddUser(context.Background(), domain.User{FullName: "A", Role: domain.RoleUser})
	s.Login(u, "nonce-1")

	// A second store over the same adapter is the process-restart analog.
	restarted := seededStore(t, adapter)
	if _, ok := restarted.Session(); ok {
		t.Fatalf("session must not survive a restart")
	}
	if _, ok := restarted.UserByID(u.ID); !ok {
		t.Fatalf("collections must survive a restart")
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	s := seededStore(t, &memoryAdapter{})
	s.Login(domain.User{ID: 1}, "n")
	s.Logout()
	if _, ok := s.Session(); ok {
		t.Fatalf("expected no session after logout")
	}
}
