package domain

const (
	EmbeddingsProviderOpenAI = "openai"
	EmbeddingsProviderLocal  = "local"
)

// ChatSettings is the default chat configuration seeded from a workspace.
type ChatSettings struct {
	Model                        string
	Prompt                       string
	Temperature                  float64
	ContextLength                int
	IncludeProfileContext        bool
	IncludeWorkspaceInstructions bool
	EmbeddingsProvider           string
}
