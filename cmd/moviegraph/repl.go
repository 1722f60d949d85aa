package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// answerFunc answers one question. It never returns an error; pipelines
// degrade to fixed fallback messages instead.
type answerFunc func(ctx context.Context, question string) string

// commandFunc handles a slash command. It reports whether the input was
// a command and whether the loop should exit.
type commandFunc func(cmd *cobra.Command, input string) (handled, exit bool)

var promptColor = color.New(color.FgCyan)

// runREPL drives a question loop on stdin. Typing "exit" quits. When
// stdin is not a terminal (piped input) the prompt is suppressed so the
// output stays clean.
func runREPL(cmd *cobra.Command, banner []string, answer answerFunc, command commandFunc) error {
	for _, line := range banner {
		cmd.Println(line)
	}
	cmd.Println()

	interactive := false
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	reader := bufio.NewReader(cmd.InOrStdin())

	for {
		if interactive {
			fmt.Fprint(cmd.OutOrStdout(), promptColor.Sprint("Ask a question: "))
		}

		input, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				cmd.Println("\nGoodbye!")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") {
			cmd.Println("Goodbye!")
			return nil
		}

		if command != nil && strings.HasPrefix(input, "/") {
			handled, exit := command(cmd, input)
			if exit {
				return nil
			}
			if handled {
				continue
			}
		}

		if err := cmd.Context().Err(); err != nil {
			return err
		}

		cmd.Println("\nAnswer:")
		cmd.Println(answer(cmd.Context(), input))
		cmd.Println()
	}
}
