package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/jmap/pkg/commands/options"
	"tableflip.dev/jmap/pkg/journey"
	"tableflip.dev/jmap/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	io := &options.IDOptions{}

	var column string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "print a journey map",
		Example: `
jmap get -p <project>
jmap get -p <project> --column future
jmap get -p <project> --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			co := options.ColumnOptions{Column: column}
			var id journey.ColumnID
			if column != "" {
				if id, err = co.Resolve(); err != nil {
					return err
				}
			}
			s := get.Get{
				ShowID:  io.ShowID,
				Project: po.Project,
				Column:  id,
				Service: svc,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddProjectArgs(cmd, po)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().StringVar(&column, "column", "", "Print only one column: current or future.")

	topLevel.AddCommand(cmd)
}
