package hydrate

import (
	"github.com/set-night/chatbotui/internal/config"
	"github.com/set-night/chatbotui/internal/domain"
	"github.com/set-night/chatbotui/internal/prompt"
)

// Defaults fill every chat setting the workspace leaves unset.
type Defaults struct {
	Model                        string
	Prompt                       string
	Temperature                  float64
	ContextLength                int
	IncludeProfileContext        bool
	IncludeWorkspaceInstructions bool
	EmbeddingsProvider           string
}

func DefaultSettings() Defaults {
	return Defaults{
		Model:                        config.FallbackModel,
		Prompt:                       prompt.Default(),
		Temperature:                  config.FallbackTemperature,
		ContextLength:                config.FallbackContextLength,
		IncludeProfileContext:        true,
		IncludeWorkspaceInstructions: true,
		EmbeddingsProvider:           config.FallbackEmbeddingsProvider,
	}
}

// ResolveChatSettings derives the default chat settings of a workspace. The
// prompt always comes from the defaults; a nil workspace yields the defaults.
func ResolveChatSettings(ws *domain.Workspace, d Defaults) domain.ChatSettings {
	s := domain.ChatSettings{
		Model:                        d.Model,
		Prompt:                       d.Prompt,
		Temperature:                  d.Temperature,
		ContextLength:                d.ContextLength,
		IncludeProfileContext:        d.IncludeProfileContext,
		IncludeWorkspaceInstructions: d.IncludeWorkspaceInstructions,
		EmbeddingsProvider:           d.EmbeddingsProvider,
	}
	if ws == nil {
		return s
	}

	if ws.DefaultModel != nil && *ws.DefaultModel != "" {
		s.Model = *ws.DefaultModel
	}
	if ws.DefaultTemperature != nil {
		s.Temperature = ws.DefaultTemperature.InexactFloat64()
	}
	if ws.DefaultContextLength != nil && *ws.DefaultContextLength > 0 {
		s.ContextLength = *ws.DefaultContextLength
	}
	if ws.IncludeProfileContext != nil {
		s.IncludeProfileContext = *ws.IncludeProfileContext
	}
	if ws.IncludeWorkspaceInstructions != nil {
		s.IncludeWorkspaceInstructions = *ws.IncludeWorkspaceInstructions
	}
	if ws.EmbeddingsProvider != nil {
		switch *ws.EmbeddingsProvider {
		case domain.EmbeddingsProviderOpenAI, domain.EmbeddingsProviderLocal:
			s.EmbeddingsProvider = *ws.EmbeddingsProvider
		}
	}
	return s
}
