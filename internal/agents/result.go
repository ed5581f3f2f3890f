package agents

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// Result is the framework's answer to one question: the raw chain outputs
// and the recorded conversation transcript.
type Result struct {
	Outputs  map[string]any
	Messages []llms.ChatMessage
}

// FinalText returns the content of the last transcript message. When the
// transcript is empty it falls back to rendering the raw outputs.
func (r Result) FinalText() string {
	if len(r.Messages) == 0 {
		return fmt.Sprint(r.Outputs)
	}
	return strings.TrimSpace(r.Messages[len(r.Messages)-1].GetContent())
}
