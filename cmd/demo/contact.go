package main

import (
	"errors"
	"fmt"

	"agentic_backend/internal/contact/form"

	"github.com/spf13/cobra"
)

var (
	contactBaseURL string
	contactFields  form.Fields
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Submit the contact form to a running server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := form.New(form.NewHTTPSubmitter(contactBaseURL, nil), form.NotifierFunc(printNotice), func() {
			fmt.Println(detailStyle.Render("(форма закрыта)"))
		})
		f.SetFields(contactFields)

		_, err := f.Submit(cmd.Context())
		var netErr *form.NetworkError
		if errors.As(err, &netErr) {
			for _, fe := range netErr.Fields {
				fmt.Println(errorStyle.Render("  " + fe.Field + ": " + fe.Message))
			}
		}
		return err
	},
}

func printNotice(n form.Notice) {
	style := doneStyle
	if n.Kind == form.NoticeError {
		style = errorStyle
	}
	fmt.Println(panelStyle.Render(style.Render(n.Title) + "\n" + n.Message))
}

func init() {
	flags := contactCmd.Flags()
	flags.StringVar(&contactBaseURL, "url", "http://localhost:8080", "site base URL")
	flags.StringVar(&contactFields.Name, "name", "", "your name")
	flags.StringVar(&contactFields.Email, "email", "", "your email")
	flags.StringVar(&contactFields.Description, "description", "", "short description of the task")
}
