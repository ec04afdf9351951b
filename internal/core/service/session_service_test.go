package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/Ajayhariharan/activax/internal/core/domain"
)

func TestSessionService_Login_Success(t *testing.T) {
	st := newTestStore(t)
	svc := NewSessionService(st, "secret", time.Hour, zerolog.Nop())

	token, user, err := svc.Login(context.Background(), "admin1@example.com", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["nonce"] == "" {
		t.Fatalf("expected per-login nonce claim")
	}
}

func TestSessionService_Login_NormalizesEmail(t *testing.T) {
	st := newTestStore(t)
	svc := NewSessionService(st, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "  ADMIN1@Example.Com ", "admin123"); err != nil {
		t.Fatalf("normalized login failed: %v", err)
	}
}

func TestSessionService_Login_InvalidCredentials(t *testing.T) {
	st := newTestStore(t)
	svc := NewSessionService(st, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "admin1@example.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "admin123"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestSessionService_Authenticate_RoundTrip(t *testing.T) {
	st := newTestStore(t)
	svc := NewSessionService(st, "secret", time.Hour, zerolog.Nop())

	token, user, err := svc.Login(context.Background(), "admin1@example.com", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	got, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, got.ID)
	}
}

func TestSessionService_Authenticate_TokenDiesWithSession(t *testing.T) {
	st := newTestStore(t)
	svc := NewSessionService(st, "secret", time.Hour, zerolog.Nop())

	token, _, _ := svc.Login(context.Background(), "admin1@example.com", "admin123")
	svc.Logout(context.Background())

	if _, err := svc.Authenticate(context.Background(), token); err != domain.ErrInvalidCredentials {
		t.Fatalf("token must die with the session, got %v", err)
	}
}

func TestSessionService_Authenticate_NewLoginInvalidatesOldToken(t *testing.T) {
	st := newTestStore(t)
	svc := NewSessionService(st, "secret", time.Hour, zerolog.Nop())

	old, _, _ := svc.Login(context.Background(), "admin1@example.com", "admin123")
	if _, _, err := svc.Login(context.Background(), "admin2@example.com", "admin123"); err != nil {
		t.Fatalf("second login failed: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), old); err != domain.ErrInvalidCredentials {
		t.Fatalf("old nonce must be rejected, got %v", err)
	}
}

func TestSessionService_Authenticate_WrongSecret(t *testing.T) {
	st := newTestStore(t)
	minter := NewSessionService(st, "other-secret", time.Hour, zerolog.Nop())
	token, _, _ := minter.Login(context.Background(), "admin1@example.com", "admin123")

	svc := NewSessionService(st, "secret", time.Hour, zerolog.Nop())
	if _, err := svc.Authenticate(context.Background(), token); err != domain.ErrInvalidCredentials {
		t.Fatalf("foreign signature must be rejected, got %v", err)
	}
}
