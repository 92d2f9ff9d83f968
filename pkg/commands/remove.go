package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/jmap/pkg/commands/options"
	"tableflip.dev/jmap/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	co := &options.ColumnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove", "delete"},
		Short:   "delete an item from a column",
		Example: `
jmap rm -p <project> --id <item>
jmap rm -p <project> --id <item> -c future
`,
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
			s := remove.Remove{
				Project: po.Project,
				Column:  column,
				ID:      io.ID,
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
