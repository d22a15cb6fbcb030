package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Console writes user-facing lines. Colors are applied only when the writer is a
// terminal that supports them.
type Console struct {
	out     io.Writer
	heading lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
}

// NewConsole creates a console writing to w.
func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		out:     w,
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		warning: r.NewStyle().Foreground(lipgloss.Color("214")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Println writes an unstyled line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes unstyled formatted text.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Heading writes a bold title line.
func (c *Console) Heading(msg string) {
	fmt.Fprintln(c.out, c.heading.Render(msg))
}

// Success writes a confirmation line.
func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, c.success.Render("✅ "+msg))
}

// Error writes a failure line.
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.out, c.failure.Render("❌ "+msg))
}

// Warn writes a warning line.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, c.warning.Render("⚠️  "+msg))
}

// Hint writes a dimmed line.
func (c *Console) Hint(msg string) {
	fmt.Fprintln(c.out, c.muted.Render(msg))
}
