package di

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"research-agent/internal/agents"
	"research-agent/internal/infrastructure/env"
	"research-agent/internal/infrastructure/logger"
)

// Config is the process configuration the CLI assembles from flags and
// defaults. It is immutable after construction.
type Config struct {
	Model              string
	SystemPrompt       string
	PromptForGoogleKey bool
	MaxIterations      int
}

func DefaultConfig() Config {
	base := agents.DefaultConfig()
	return Config{
		Model:              base.Model,
		SystemPrompt:       base.SystemPrompt,
		PromptForGoogleKey: true,
		MaxIterations:      base.MaxIterations,
	}
}

type Container struct {
	Env    *env.Service
	Logger *zap.Logger
	Agent  *agents.Agent
}

// NewContainer wires the process dependencies. PromptForGoogleKey is
// consumed by the CLI before construction; by this point both credentials
// must already be in the environment.
func NewContainer(ctx context.Context, envService *env.Service, cfg Config) (*Container, error) {
	logCfg := logger.DefaultConfig()
	if lvl := envService.Get("LOG_LEVEL"); lvl != "" {
		logCfg.Level = lvl
	}
	logCfg.Pretty = envService.GetBool("LOG_PRETTY", false)

	log, err := logger.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	ag, err := agents.Build(ctx, agents.Config{
		Model:         cfg.Model,
		SystemPrompt:  cfg.SystemPrompt,
		MaxIterations: envService.GetInt("AGENT_MAX_ITERATIONS", cfg.MaxIterations),
	}, envService, log)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("build research agent: %w", err)
	}

	return &Container{
		Env:    envService,
		Logger: log,
		Agent:  ag,
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}
