package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/jmap/pkg/journey"
)

// ColumnOptions captures the column selection flag.
type ColumnOptions struct {
	Column string
}

// AddColumnArgs wires the column flag on the provided command.
func AddColumnArgs(cmd *cobra.Command, o *ColumnOptions) {
	cmd.Flags().StringVarP(&o.Column, "column", "c", string(journey.Current),
		"Specify the column: current or future.")
	_ = cmd.RegisterFlagCompletionFunc("column", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(journey.Current), string(journey.Future)}, cobra.ShellCompDirectiveNoFileComp
	})
}

// Resolve validates the flag value and returns the column id.
func (o *ColumnOptions) Resolve() (journey.ColumnID, error) {
	id := journey.ColumnID(strings.ToLower(strings.TrimSpace(o.Column)))
	if !id.Valid() {
		return "", fmt.Errorf("unknown column %q, want %s or %s", o.Column, journey.Current, journey.Future)
	}
	return id, nil
}
