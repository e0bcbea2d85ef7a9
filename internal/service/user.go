package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/set-night/chatbotui/internal/domain"
	"github.com/set-night/chatbotui/internal/repository/sqlc"
)

type UserService struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
}

func NewUserService(db *pgxpool.Pool, queries *sqlc.Queries) *UserService {
	return &UserService{db: db, queries: queries}
}

// FindOrCreate returns the user for a Telegram account, creating it on first
// contact. The boolean reports whether the user was created.
func (s *UserService) FindOrCreate(ctx context.Context, telegramID int64, firstName, username string, isAdmin bool) (*domain.User, bool, error) {
	row, err := s.queries.GetUserByTelegramID(ctx, telegramID)
	if err == nil {
		return rowToUser(row), false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("get user: %w", err)
	}

	row, err = s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		TelegramID: telegramID,
		FirstName:  firstName,
		Username:   username,
		IsAdmin:    isAdmin,
	})
	if err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}
	return rowToUser(row), true, nil
}

func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	row, err := s.queries.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return rowToUser(row), nil
}

func (s *UserService) UpdateInfo(ctx context.Context, userID int64, firstName, username string) error {
	return s.queries.UpdateUserInfo(ctx, sqlc.UpdateUserInfoParams{
		ID:        userID,
		FirstName: firstName,
		Username:  username,
	})
}

func (s *UserService) UpdateLastInteraction(ctx context.Context, userID int64) error {
	return s.queries.UpdateUserLastInteraction(ctx, userID)
}

func rowToUser(row sqlc.User) *domain.User {
	return &domain.User{
		ID:              row.ID,
		TelegramID:      row.TelegramID,
		IsAdmin:         row.IsAdmin,
		FirstName:       row.FirstName,
		Username:        row.Username,
		LastInteraction: pgTimestamptzToTime(row.LastInteraction),
		CreatedAt:       pgTimestamptzToTime(row.CreatedAt),
		UpdatedAt:       pgTimestamptzToTime(row.UpdatedAt),
	}
}
