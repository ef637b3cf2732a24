package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"agentic_backend/internal/chat/resolver"
	"agentic_backend/internal/chat/session"
	"agentic_backend/internal/content"
	"agentic_backend/platform/config"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the chat demo agent",
	Long: `Talk to the chat demo agent.

The reply strategy comes from CHAT_REPLY_STRATEGY and friends, exactly as the
API server reads them. Type a number to send a quick prompt, an empty line or
EOF to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		catalog, err := content.Load()
		if err != nil {
			return err
		}
		r, err := resolver.New(cfg, catalog.Chat)
		if err != nil {
			return err
		}

		conv := session.New(r, catalog.Chat.Greeting, catalog.Chat.Apology,
			session.WithObserver(printMessage),
			session.WithErrorHandler(func(err error) {
				fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
			}),
		)
		for _, m := range conv.Messages() {
			printMessage(m)
		}

		prompts := catalog.Chat.QuickPrompts()
		for i, p := range prompts {
			fmt.Println(detailStyle.Render(fmt.Sprintf("  [%d] %s", i+1, p)))
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				return nil
			}
			var n int
			if _, err := fmt.Sscanf(line, "%d", &n); err == nil && n >= 1 && n <= len(prompts) {
				line = prompts[n-1]
			}
			if _, err := conv.Send(cmd.Context(), line); err != nil {
				return err
			}
		}
	},
}

func printMessage(m session.Message) {
	if m.Sender == session.SenderUser {
		fmt.Println(userStyle.Render("Вы: " + m.Content))
		return
	}
	fmt.Println(agentStyle.Render("AI: " + m.Content))
}
