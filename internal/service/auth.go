package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/set-night/chatbotui/internal/domain"
	"github.com/set-night/chatbotui/internal/repository/sqlc"
)

// AuthService manages login sessions of Telegram users.
type AuthService struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
	ttl     time.Duration
}

func NewAuthService(db *pgxpool.Pool, queries *sqlc.Queries, ttl time.Duration) *AuthService {
	return &AuthService{db: db, queries: queries, ttl: ttl}
}

// Login starts a new session for the user.
func (s *AuthService) Login(ctx context.Context, userID int64) (*domain.Session, error) {
	row, err := s.queries.CreateAuthSession(ctx, sqlc.CreateAuthSessionParams{
		UserID:    userID,
		ExpiresAt: timeToPgTimestamptz(time.Now().Add(s.ttl)),
	})
	if err != nil {
		return nil, fmt.Errorf("create auth session: %w", err)
	}
	return rowToSession(row), nil
}

// Logout ends every session of the user.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if err := s.queries.DeleteUserAuthSessions(ctx, userID); err != nil {
		return fmt.Errorf("delete auth sessions: %w", err)
	}
	return nil
}

// Current returns the user's active session, or nil when there is none.
func (s *AuthService) Current(ctx context.Context, userID int64) (*domain.Session, error) {
	row, err := s.queries.GetActiveAuthSession(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get auth session: %w", err)
	}
	return rowToSession(row), nil
}

func (s *AuthService) CleanupExpired(ctx context.Context) error {
	return s.queries.DeleteExpiredAuthSessions(ctx)
}

// For binds the service to one Telegram account, for callers that ask for
// "the current session" without knowing who is asking. An unknown account
// has no session.
func (s *AuthService) For(telegramID int64) *AccountSessions {
	return &AccountSessions{auth: s, telegramID: telegramID}
}

type AccountSessions struct {
	auth       *AuthService
	telegramID int64
}

func (a *AccountSessions) CurrentSession(ctx context.Context) (*domain.Session, error) {
	user, err := a.auth.queries.GetUserByTelegramID(ctx, a.telegramID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return a.auth.Current(ctx, user.ID)
}

func rowToSession(row sqlc.AuthSession) *domain.Session {
	return &domain.Session{
		ID:        row.ID,
		UserID:    row.UserID,
		ExpiresAt: pgTimestamptzToTime(row.ExpiresAt),
		CreatedAt: pgTimestamptzToTime(row.CreatedAt),
	}
}
