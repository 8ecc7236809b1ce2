package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/ticketdesk/internal/panel"
)

// TerminalDialog implements panel.Dialog on a plain terminal: messages are
// printed and confirmations read a y/N answer from in.
type TerminalDialog struct {
	out       io.Writer
	in        *bufio.Reader
	assumeYes bool
	failures  int
}

// NewTerminalDialog creates a dialog writing to out and reading answers
// from in. With assumeYes every confirmation is accepted without asking.
func NewTerminalDialog(out io.Writer, in io.Reader, assumeYes bool) *TerminalDialog {
	return &TerminalDialog{
		out:       out,
		in:        bufio.NewReader(in),
		assumeYes: assumeYes,
	}
}

// Error prints a failure message.
func (d *TerminalDialog) Error(title, message string) {
	d.failures++
	red := color.New(color.FgRed, color.Bold)
	fmt.Fprintf(d.out, "%s %s\n", red.Sprintf("✗ %s:", title), message)
}

// Info prints an informational message.
func (d *TerminalDialog) Info(title, message string) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Fprintln(d.out, cyan.Sprint(title))
	fmt.Fprintln(d.out, message)
}

// Confirm asks a yes/no question. Anything but an explicit yes is a no,
// including end of input.
func (d *TerminalDialog) Confirm(title, message string) bool {
	yellow := color.New(color.FgYellow, color.Bold)
	fmt.Fprintf(d.out, "%s %s\n", yellow.Sprintf("%s:", title), message)

	if d.assumeYes {
		return true
	}

	fmt.Fprint(d.out, "Confirmar? [s/N]: ")
	answer, _ := d.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "sim", "y", "yes":
		return true
	}
	fmt.Fprintln(d.out, "Operação cancelada.")
	return false
}

// Failures returns how many errors have been reported.
func (d *TerminalDialog) Failures() int {
	return d.failures
}

var _ panel.Dialog = (*TerminalDialog)(nil)
