package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ybai789/moviegraph/internal/qa"
)

func newREPLCmd(input string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetContext(context.Background())
	return cmd, out
}

func echoAnswer(ctx context.Context, question string) string {
	return "echo: " + question
}

func TestREPLAnswersAndExits(t *testing.T) {
	cmd, out := newREPLCmd("who directed Inception\nexit\n")

	err := runREPL(cmd, []string{"banner line"}, echoAnswer, nil)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "banner line")
	assert.Contains(t, out.String(), "echo: who directed Inception")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestREPLExitCaseInsensitive(t *testing.T) {
	cmd, out := newREPLCmd("EXIT\n")

	require.NoError(t, runREPL(cmd, nil, echoAnswer, nil))
	assert.NotContains(t, out.String(), "echo:")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestREPLSkipsBlankLines(t *testing.T) {
	cmd, out := newREPLCmd("\n   \nhello\nexit\n")

	require.NoError(t, runREPL(cmd, nil, echoAnswer, nil))
	assert.Equal(t, 1, strings.Count(out.String(), "echo:"))
}

func TestREPLEOFExitsCleanly(t *testing.T) {
	cmd, out := newREPLCmd("hello\n")

	require.NoError(t, runREPL(cmd, nil, echoAnswer, nil))
	assert.Contains(t, out.String(), "echo: hello")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestSessionCommandHistory(t *testing.T) {
	session := qa.NewSession()
	command := sessionCommand(session)

	cmd, out := newREPLCmd("")
	handled, exit := command(cmd, "/history")
	assert.True(t, handled)
	assert.False(t, exit)
	assert.Contains(t, out.String(), "No questions asked yet.")

	session.Append("who wrote Alien", "Dan O'Bannon")
	cmd, out = newREPLCmd("")
	command(cmd, "/history")
	assert.Contains(t, out.String(), "1. Q: who wrote Alien")
	assert.Contains(t, out.String(), "A: Dan O'Bannon")
}

func TestSessionCommandClear(t *testing.T) {
	session := qa.NewSession()
	session.Append("q", "a")
	command := sessionCommand(session)

	cmd, _ := newREPLCmd("")
	handled, exit := command(cmd, "/clear")
	assert.True(t, handled)
	assert.False(t, exit)
	assert.Equal(t, 0, session.Len())
}

func TestSessionCommandQuit(t *testing.T) {
	command := sessionCommand(qa.NewSession())

	cmd, out := newREPLCmd("")
	handled, exit := command(cmd, "/quit")
	assert.True(t, handled)
	assert.True(t, exit)
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestSessionCommandUnknown(t *testing.T) {
	command := sessionCommand(qa.NewSession())

	cmd, out := newREPLCmd("")
	handled, exit := command(cmd, "/bogus")
	assert.True(t, handled)
	assert.False(t, exit)
	assert.Contains(t, out.String(), "Unknown command")
}

func TestREPLRoutesSlashCommands(t *testing.T) {
	session := qa.NewSession()
	cmd, out := newREPLCmd("/history\n/quit\n")

	answer := func(ctx context.Context, question string) string {
		a := echoAnswer(ctx, question)
		session.Append(question, a)
		return a
	}

	require.NoError(t, runREPL(cmd, nil, answer, sessionCommand(session)))
	assert.Contains(t, out.String(), "No questions asked yet.")
	assert.NotContains(t, out.String(), "echo:")
}
