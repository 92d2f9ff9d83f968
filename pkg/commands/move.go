package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/jmap/pkg/commands/options"
	"tableflip.dev/jmap/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	co := &options.ColumnOptions{}
	io := &options.IDOptions{}

	var before string

	cmd := &cobra.Command{
		Use:   "move",
		Short: "reorder an item within its column",
		Long:  "Move an item above another item in the same column, or to the end of the column when --before is omitted or set to \"end\".",
		Example: `
jmap move -p <project> --id <item> --before <other-item>
jmap move -p <project> --id <item> --before end
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
			s := move.Move{
				Project: po.Project,
				Column:  column,
				ID:      io.ID,
				Before:  before,
				Service: svc,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddProjectArgs(cmd, po)
	options.AddColumnArgs(cmd, co)
	options.AddIDArgs(cmd, io)
	cmd.Flags().StringVar(&before, "before", "", "Item id to insert above, or \"end\".")

	topLevel.AddCommand(cmd)
}
