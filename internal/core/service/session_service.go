package service

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/Ajayhariharan/activax/internal/core/domain"
	"github.com/Ajayhariharan/activax/internal/core/store"
)

// SessionService implements login/logout for the single active session.
//
// The bearer token is only a handle: it carries the user id and a per-login
// nonce, and is honored solely while the in-memory session holds the same
// nonce. Logout or a process restart therefore invalidates every
// outstanding token; there is no session reattachment across restarts.
type SessionService struct {
	store    *store.Store
	secret   string
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewSessionService(st *store.Store, secret string, tokenTTL time.Duration, logger zerolog.Logger) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{store: st, secret: secret, tokenTTL: tokenTTL, logger: logger}
}

// Login verifies the credentials against the user collection. Email matching
// is normalized (lowercase, trimmed); the password is compared as-is, since
// passwords are stored plaintext by explicit design.
func (s *SessionService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = domain.Normalize(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	var found *domain.User
	for _, u := range s.store.Users() {
		if domain.Normalize(u.Email) == email && u.Password == password {
			found = &u
			break
		}
	}
	if found == nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	nonce := ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader).String()
	s.store.Login(*found, nonce)

	token, err := s.mintToken(found.ID, nonce)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Int64("user_id", found.ID).Str("role", found.Role).Msg("session opened")
	return token, found, nil
}

// Logout clears the session; the user and activity collections are
// untouched.
func (s *SessionService) Logout(ctx context.Context) {
	s.store.Logout()
	s.logger.Info().Msg("session closed")
}

// Authenticate resolves a token to the live session user. The signature must
// verify and the embedded nonce must match the current session.
func (s *SessionService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	sub, _ := claims["sub"].(float64)
	nonce, _ := claims["nonce"].(string)

	sess, ok := s.store.Session()
	if !ok || sess.Nonce != nonce || sess.User.ID != int64(sub) {
		return nil, domain.ErrInvalidCredentials
	}

	user := sess.User
	return &user, nil
}

func (s *SessionService) mintToken(userID int64, nonce string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"nonce": nonce,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}
