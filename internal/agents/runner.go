package agents

import (
	"context"
	"fmt"
	"time"

	lcagents "github.com/tmc/langchaingo/agents"
	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/memory"
	"go.uber.org/zap"
)

// Run sends one user question through the framework executor and blocks
// until a final answer is produced. Every call starts from an empty
// transcript; nothing carries over between questions.
func (a *Agent) Run(ctx context.Context, question string) (Result, error) {
	history := memory.NewChatMessageHistory()
	buf := memory.NewConversationBuffer(memory.WithChatHistory(history))

	executor := lcagents.NewExecutor(a.mrkl,
		lcagents.WithMemory(buf),
		lcagents.WithMaxIterations(a.maxIterations),
		lcagents.WithParserErrorHandler(lcagents.NewParserErrorHandler(nil)),
	)

	a.logger.Info("research query started", zap.String("question", question))
	start := time.Now()

	outputs, err := chains.Call(ctx, executor, map[string]any{"input": question})
	if err != nil {
		a.logger.Error("research query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return Result{}, err
	}

	messages, err := history.Messages(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("read transcript: %w", err)
	}

	a.logger.Info("research query completed",
		zap.Duration("duration", time.Since(start)),
		zap.Int("messages", len(messages)),
	)

	return Result{Outputs: outputs, Messages: messages}, nil
}
