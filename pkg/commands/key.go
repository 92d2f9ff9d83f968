package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/jmap/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "show the item kind legend",
		Example: `
jmap key
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{}
			return output.HandleError(k.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
