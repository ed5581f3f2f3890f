package agents

import (
	"context"
	"fmt"
	"strings"

	lcagents "github.com/tmc/langchaingo/agents"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	lctools "github.com/tmc/langchaingo/tools"
	"go.uber.org/zap"

	"research-agent/internal/agents/tools"
	"research-agent/internal/infrastructure/env"
	"research-agent/internal/infrastructure/prompts"
	"research-agent/internal/infrastructure/search/tavily"
)

const (
	EnvTavilyAPIKey = "TAVILY_API_KEY"
	EnvGoogleAPIKey = "GOOGLE_API_KEY"

	DefaultModel         = "gemini-2.5-flash-lite"
	defaultMaxIterations = 15
)

// toolsPrefix closes the prompt prefix with the block the framework fills
// in with the registered tool descriptions.
const toolsPrefix = "You have access to the following tools:\n\n{{.tool_descriptions}}"

// Config carries the tunable parts of agent construction. Zero values fall
// back to the defaults.
type Config struct {
	Model         string
	SystemPrompt  string
	MaxIterations int
}

func DefaultConfig() Config {
	return Config{
		Model:         DefaultModel,
		SystemPrompt:  prompts.DefaultSystemPrompt,
		MaxIterations: defaultMaxIterations,
	}
}

// Agent is a research agent bound to one model, one search tool, and one
// system prompt. Each Run is an independent single-turn conversation.
type Agent struct {
	mrkl          *lcagents.OneShotZeroAgent
	logger        *zap.Logger
	maxIterations int
}

// Build resolves the provider credentials from the environment, constructs
// the search and model clients, and asks the orchestration framework for an
// agent instance. Credentials must already be present; any interactive
// acquisition happens in the CLI layer before this is called.
func Build(ctx context.Context, cfg Config, envService *env.Service, log *zap.Logger) (*Agent, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	tavilyKey, err := envService.Require(EnvTavilyAPIKey)
	if err != nil {
		return nil, err
	}
	googleKey, err := envService.Require(EnvGoogleAPIKey)
	if err != nil {
		return nil, err
	}

	searchCfg := tavily.DefaultConfig(tavilyKey)
	searchCfg.Logger = log
	searchTool := tools.NewInternetSearch(tavily.NewClient(searchCfg), log)

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(googleKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("create model client: %w", err)
	}

	log.Info("research agent ready", zap.String("model", cfg.Model))

	return New(llm, searchTool, cfg, log), nil
}

// New wires an already-constructed model and search tool into the framework
// agent. The configured system prompt becomes the prompt prefix ahead of the
// framework's tool descriptions and format instructions.
func New(llm llms.Model, searchTool lctools.Tool, cfg Config, log *zap.Logger) *Agent {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = prompts.DefaultSystemPrompt
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = defaultMaxIterations
	}

	prefix := strings.TrimRight(cfg.SystemPrompt, "\n") + "\n\n" + toolsPrefix

	mrkl := lcagents.NewOneShotAgent(llm,
		[]lctools.Tool{searchTool},
		lcagents.WithPromptPrefix(prefix),
	)

	return &Agent{
		mrkl:          mrkl,
		logger:        log,
		maxIterations: cfg.MaxIterations,
	}
}
