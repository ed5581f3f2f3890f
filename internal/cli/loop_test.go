package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loopRecorder struct {
	questions []string
	answer    string
	err       error
}

func (r *loopRecorder) run(_ context.Context, question string) (string, error) {
	r.questions = append(r.questions, question)
	return r.answer, r.err
}

func TestRunLoop_EmptyInputThenQuit(t *testing.T) {
	rec := &loopRecorder{}
	var out strings.Builder

	err := runLoop(context.Background(), strings.NewReader("\nquit\n"), &out, "", rec.run)

	require.NoError(t, err)
	assert.Empty(t, rec.questions)
	assert.Equal(t, 1, strings.Count(out.String(), emptyReminder))
	assert.Equal(t, 2, strings.Count(out.String(), questionPrompt))
}

func TestRunLoop_PositionalQuestionThenQuit(t *testing.T) {
	rec := &loopRecorder{answer: "4"}
	var out strings.Builder

	err := runLoop(context.Background(), strings.NewReader("quit\n"), &out, "What is 2+2?", rec.run)

	require.NoError(t, err)
	assert.Equal(t, []string{"What is 2+2?"}, rec.questions)
	assert.Contains(t, out.String(), "4\n"+strings.Repeat("-", separatorWidth)+"\n")
	// the positional question is consumed before the first prompt
	assert.Equal(t, 1, strings.Count(out.String(), questionPrompt))
}

func TestRunLoop_QuitIsCaseInsensitiveAndTrimmed(t *testing.T) {
	rec := &loopRecorder{}

	err := runLoop(context.Background(), strings.NewReader("  QUIT  \n"), io.Discard, "", rec.run)

	require.NoError(t, err)
	assert.Empty(t, rec.questions)
}

func TestRunLoop_PositionalExitSkipsDispatch(t *testing.T) {
	rec := &loopRecorder{}
	var out strings.Builder

	err := runLoop(context.Background(), strings.NewReader(""), &out, "Exit", rec.run)

	require.NoError(t, err)
	assert.Empty(t, rec.questions)
	assert.NotContains(t, out.String(), questionPrompt)
}

func TestRunLoop_EOFBehavesLikeQuit(t *testing.T) {
	rec := &loopRecorder{}

	err := runLoop(context.Background(), strings.NewReader(""), io.Discard, "", rec.run)

	require.NoError(t, err)
	assert.Empty(t, rec.questions)
}

func TestRunLoop_InteractiveQuestionsUntilQuit(t *testing.T) {
	rec := &loopRecorder{answer: "answer"}
	var out strings.Builder

	err := runLoop(context.Background(), strings.NewReader("first question\nsecond question\nexit\n"), &out, "", rec.run)

	require.NoError(t, err)
	assert.Equal(t, []string{"first question", "second question"}, rec.questions)
	assert.Equal(t, 2, strings.Count(out.String(), strings.Repeat("-", separatorWidth)))
}

func TestRunLoop_RunErrorStopsLoop(t *testing.T) {
	wantErr := errors.New("model quota exceeded")
	rec := &loopRecorder{err: wantErr}

	err := runLoop(context.Background(), strings.NewReader("first\nsecond\n"), io.Discard, "", rec.run)

	require.ErrorIs(t, err, wantErr)
	assert.Len(t, rec.questions, 1)
}
