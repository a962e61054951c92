package cli

import (
	"fmt"
	"io"
)

// consoleNotifier renders outcome messages to the command output.
// It is the CLI's stand-in for the snackbar of the original interface.
type consoleNotifier struct {
	out io.Writer
}

func (n *consoleNotifier) Success(message string) {
	fmt.Fprintln(n.out, successStyle.Render("✓ "+message))
}

func (n *consoleNotifier) Error(message string) {
	fmt.Fprintln(n.out, errorStyle.Render("✗ "+message))
}
