package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/jmap/pkg/commands/options"
	"tableflip.dev/jmap/pkg/glyph"
	"tableflip.dev/jmap/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	co := &options.ColumnOptions{}

	long := strings.Builder{}
	long.WriteString("Add an item to a journey map column.\n\n")
	long.WriteString("Kind and aliases:\n")

	validArgs := make([]string, 0)
	for _, g := range glyph.DefaultGlyphs() {
		long.WriteString(fmt.Sprintf("%s: %s\n", g.Symbol, strings.Join(g.Aliases, ", ")))
		validArgs = append(validArgs, g.Noun)
	}

	var kind glyph.Kind
	var content string

	cmd := &cobra.Command{
		Use:   "add [kind] [content...]",
		Short: "add a step, system step, or section",
		Long:  long.String(),
		Example: `
jmap add step "Customer calls support" -p <project>
jmap add system "Ticket routed" -p <project> -c future
jmap add section "Onboarding" -p <project>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				kind = glyph.Step
				return nil
			}
			var err error
			kind, err = glyph.KindForAlias(args[0])
			if err != nil {
				return err
			}
			content = strings.Join(args[1:], " ")
			return nil
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			column, err := co.Resolve()
			if err != nil {
				return err
			}
			s := add.Add{
				Project: po.Project,
				Column:  column,
				Kind:    kind,
				Content: content,
				Service: svc,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddProjectArgs(cmd, po)
	options.AddColumnArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
