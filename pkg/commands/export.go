package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/jmap/pkg/commands/options"
	"tableflip.dev/jmap/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}

	var format string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "export a map as json or pdf",
		Long:  "Export the project's map document. The filename is derived from the map title unless --output names a file; --output - streams json to stdout.",
		Example: `
jmap export -p <project>
jmap export -p <project> --format pdf
jmap export -p <project> --output - > map.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := export.Export{
				Project: po.Project,
				Format:  format,
				Output:  out,
				Service: svc,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddProjectArgs(cmd, po)
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Export format: json or pdf.")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Target file or directory, or - for stdout.")

	topLevel.AddCommand(cmd)
}
