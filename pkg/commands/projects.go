package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/jmap/pkg/runner/projects"
)

func addProjects(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "list your journey map projects",
		Example: `
jmap projects
jmap projects create
jmap projects delete <id>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := projects.List{Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "create a new project with an empty map",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := projects.Create{Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}
	cmd.AddCommand(create)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "delete a project and its map",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("a project id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := projects.Delete{Project: args[0], Service: svc}
			return output.HandleError(s.Do(context.Background()))
		},
	}
	cmd.AddCommand(del)

	topLevel.AddCommand(cmd)
}
