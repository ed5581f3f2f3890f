package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const (
	questionPrompt = "Enter research question (type 'quit' to exit): "
	emptyReminder  = "Please provide a question or type 'quit' to exit."
	separatorWidth = 40
)

// runLoop drives the interactive question loop. A question supplied on the
// command line is consumed on the first iteration; after that every question
// is read from in. EOF behaves like 'quit'.
func runLoop(ctx context.Context, in io.Reader, out io.Writer, question string, run func(context.Context, string) (string, error)) error {
	scanner := bufio.NewScanner(in)

	for {
		if question == "" {
			fmt.Fprint(out, questionPrompt)
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("read question: %w", err)
				}
				return nil
			}
			question = scanner.Text()
		}

		question = strings.TrimSpace(question)
		switch strings.ToLower(question) {
		case "quit", "exit":
			return nil
		case "":
			fmt.Fprintln(out, emptyReminder)
			continue
		}

		answer, err := run(ctx, question)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, answer)
		fmt.Fprintln(out, strings.Repeat("-", separatorWidth))

		// force the prompt on the next iteration
		question = ""
	}
}
