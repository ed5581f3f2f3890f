package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"research-agent/internal/agents"
	"research-agent/internal/infrastructure/env"
)

// secretPrompter asks the operator for one secret value.
type secretPrompter func(prompt string) (string, error)

// ensureGoogleKey makes sure GOOGLE_API_KEY is present before the agent is
// built. When the variable is missing and prompting is allowed, the operator
// is asked once; the entered value is persisted into the environment so
// later lookups see it. An empty entry is a hard failure, not a re-prompt.
func ensureGoogleKey(envService *env.Service, allowPrompt bool, prompt secretPrompter) error {
	_, err := envService.Require(agents.EnvGoogleAPIKey)
	if err == nil {
		return nil
	}
	if !allowPrompt {
		return err
	}

	entered, err := prompt(fmt.Sprintf("Enter value for %s: ", agents.EnvGoogleAPIKey))
	if err != nil {
		return fmt.Errorf("read %s: %w", agents.EnvGoogleAPIKey, err)
	}
	entered = strings.TrimSpace(entered)
	if entered == "" {
		return fmt.Errorf("%s is required", agents.EnvGoogleAPIKey)
	}

	return envService.Set(agents.EnvGoogleAPIKey, entered)
}

// readSecret prompts on stderr and reads a value from stdin without echoing
// it. When stdin is not a terminal the value is read in the clear.
func readSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	entered, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read hidden input: %w", err)
	}
	return string(entered), nil
}
