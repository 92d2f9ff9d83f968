package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/jmap/pkg/commands/options"
	"tableflip.dev/jmap/pkg/runner/dup"
)

func addDup(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "dup",
		Short: "copy a current-state item to the future column",
		Example: `
jmap dup -p <project> --id <item>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" {
				return errors.New("an item id is required, use --id")
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := dup.Dup{
				Project: po.Project,
				ID:      io.ID,
				Service: svc,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddProjectArgs(cmd, po)
	options.AddIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
