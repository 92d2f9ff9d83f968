// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ProjectOptions captures the project selection flag for commands that
// operate on one map document.
type ProjectOptions struct {
	Project string
}

// AddProjectArgs wires the project flag on the provided command.
func AddProjectArgs(cmd *cobra.Command, o *ProjectOptions) {
	cmd.Flags().StringVarP(&o.Project, "project", "p", "",
		"Specify the project id.")
	_ = cmd.MarkFlagRequired("project")
}
