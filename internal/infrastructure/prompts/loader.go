package prompts

import (
	_ "embed"
)

// DefaultSystemPrompt is the researcher instruction used when no override
// is supplied on the command line.
//
//go:embed system.txt
var DefaultSystemPrompt string
