package handler

import (
	"github.com/go-telegram/bot"
	"github.com/set-night/chatbotui/internal/config"
	"github.com/set-night/chatbotui/internal/hydrate"
	"github.com/set-night/chatbotui/internal/service"
	"github.com/set-night/chatbotui/internal/telegram"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot              *bot.Bot
	cfg              *config.Config
	authService      *service.AuthService
	workspaceService *service.WorkspaceService
	hydrators        *hydrate.Registry
	tgLogger         *telegram.TelegramLogger
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot              *bot.Bot
	Cfg              *config.Config
	AuthService      *service.AuthService
	WorkspaceService *service.WorkspaceService
	Hydrators        *hydrate.Registry
	TgLogger         *telegram.TelegramLogger
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:              deps.Bot,
		cfg:              deps.Cfg,
		authService:      deps.AuthService,
		workspaceService: deps.WorkspaceService,
		hydrators:        deps.Hydrators,
		tgLogger:         deps.TgLogger,
	}
}
