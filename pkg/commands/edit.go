package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/jmap/pkg/commands/options"
	"tableflip.dev/jmap/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	co := &options.ColumnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <content...>",
		Short: "replace an item's content",
		Example: `
jmap edit "Customer emails support" -p <project> --id <item>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("new content is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" {
				return errors.New("an item id is required, use --id")
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			column, err := co.Resolve()
			if err != nil {
				return err
			}
			s := edit.Edit{
				Project: po.Project,
				Column:  column,
				ID:      io.ID,
				Content: strings.Join(args, " "),
				Service: svc,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddProjectArgs(cmd, po)
	options.AddColumnArgs(cmd, co)
	options.AddIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
