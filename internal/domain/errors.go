package domain

import "errors"

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrUnauthenticated   = errors.New("no active session")
	ErrSessionLookup     = errors.New("session lookup failed")
	ErrSuperseded        = errors.New("hydration superseded by a newer workspace")
	ErrChatNotFound      = errors.New("chat not found")
	ErrInvalidDataURL    = errors.New("invalid data url")
)
