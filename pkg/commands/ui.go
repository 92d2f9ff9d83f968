package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/jmap/pkg/commands/options"
	"tableflip.dev/jmap/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based journey map editor",
		Example: `
jmap ui -p <project>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			i := ui.UI{Project: po.Project, Service: svc}
			return i.Do(context.Background())
		},
	}

	options.AddProjectArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
