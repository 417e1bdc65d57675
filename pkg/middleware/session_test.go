package middleware_test

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"authgate/pkg/middleware"
	"authgate/pkg/principal"
	"authgate/pkg/session"

	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) Create(userID, role string) (*session.Session, error) {
	args := m.Called(userID, role)
	if s := args.Get(0); s != nil {
		return s.(*session.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessions) Find(token string) (*session.Session, error) {
	args := m.Called(token)
	if s := args.Get(0); s != nil {
		return s.(*session.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessions) Delete(token string) error {
	return m.Called(token).Error(0)
}

func (m *mockSessions) DeleteExpired() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func TestCheckSession(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))
	sessions := new(mockSessions)

	now := time.Now()
	sessions.On("Find", "livetoken").Return(&session.Session{
		Token:     "livetoken",
		UserID:    "admin",
		Role:      "admin",
		CreatedAt: now,
		ExpiresAt: now.Add(session.TTL),
	}, nil)
	sessions.On("Find", "deadtoken").Return(&session.Session{
		Token:     "deadtoken",
		UserID:    "admin",
		Role:      "admin",
		CreatedAt: now.Add(-2 * session.TTL),
		ExpiresAt: now.Add(-session.TTL),
	}, nil)
	sessions.On("Find", "unknown").Return(nil, session.ErrNotFound)
	sessions.On("Find", "broken").Return(nil, errors.New("connection reset"))

	var got *principal.Principal
	protected := middleware.CheckSession(sessions, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = r.Context().Value(principal.PrincipalContextKey).(*principal.Principal)
		http.Error(w, "OK", http.StatusOK)
	}))

	t.Run("no cookie", func(t *testing.T) {
		apitest.Handler(protected).
			Get("/profile").
			Expect(t).
			Status(http.StatusUnauthorized).
			Body(`{"message":"no cookie found"}`).
			End()
	})

	t.Run("unknown token", func(t *testing.T) {
		apitest.Handler(protected).
			Get("/profile").
			Cookie(session.CookieName, "unknown").
			Expect(t).
			Status(http.StatusUnauthorized).
			Body(`{"message":"invalid or expired session"}`).
			End()
	})

	t.Run("expired record still in storage", func(t *testing.T) {
		apitest.Handler(protected).
			Get("/profile").
			Cookie(session.CookieName, "deadtoken").
			Expect(t).
			Status(http.StatusUnauthorized).
			Body(`{"message":"invalid or expired session"}`).
			End()
	})

	t.Run("store error", func(t *testing.T) {
		apitest.Handler(protected).
			Get("/profile").
			Cookie(session.CookieName, "broken").
			Expect(t).
			Status(http.StatusInternalServerError).
			End()
	})

	t.Run("valid token admits and attaches principal", func(t *testing.T) {
		apitest.Handler(protected).
			Get("/profile").
			Cookie(session.CookieName, "livetoken").
			Expect(t).
			Status(http.StatusOK).
			End()

		assert.NotNil(t, got)
		assert.Equal(t, "admin", got.UserID)
		assert.Equal(t, "admin", got.Role)
	})
}
