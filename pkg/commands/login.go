package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/jmap/pkg/runner/login"
)

func addLogin(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "sign in with an allowed company email",
		Example: `
jmap login dev@innovate-design.co.uk
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("an email address is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := loadIdentity()
			if err != nil {
				return err
			}
			s := login.Login{Email: args[0], Identity: id}
			return output.HandleError(s.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)

	logout := &cobra.Command{
		Use:   "logout",
		Short: "sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := loadIdentity()
			if err != nil {
				return err
			}
			s := login.Logout{Identity: id}
			return output.HandleError(s.Do(context.Background()))
		},
	}
	topLevel.AddCommand(logout)

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "print the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := loadIdentity()
			if err != nil {
				return err
			}
			s := login.Whoami{Identity: id}
			return output.HandleError(s.Do(context.Background()))
		},
	}
	topLevel.AddCommand(whoami)
}
