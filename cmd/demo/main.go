// Command demo plays the landing page widgets in a terminal: the AI Lab
// simulation, a chat session and a contact form submission.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	stepStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	doneStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	agentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	panelStyle  = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

var rootCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play the landing page widgets in a terminal",
	Long: `Play the landing page widgets without a browser.

  lab      run the AI Lab simulation for an industry
  chat     talk to the chat demo agent using the configured reply strategy
  contact  submit the contact form to a running server`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.AddCommand(labCmd, chatCmd, contactCmd)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		stop()
		os.Exit(1)
	}
}
