package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

// notify prints a short status line to stderr so stdout stays clean for the
// text itself.
func notify(cmd *cobra.Command, msg string) {
	fmt.Fprintln(cmd.ErrOrStderr(), noticeStyle.Render("✓")+" "+msg)
}
