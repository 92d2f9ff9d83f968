package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/jmap/pkg/commands/options"
	"tableflip.dev/jmap/pkg/runner/imp"
)

func addImport(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "replace a map from an exported json file",
		Long:  "Validate an exported json blob and install it as the project's map. An invalid file is rejected and the stored map stays as it was.",
		Example: `
jmap import My_Journey_Map.json -p <project>
cat map.json | jmap import - -p <project>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("a file path is required (- for stdin)")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := imp.Import{
				Project: po.Project,
				Path:    args[0],
				Service: svc,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddProjectArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
