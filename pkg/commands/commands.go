package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/jmap/pkg/app"
	"tableflip.dev/jmap/pkg/auth"
	"tableflip.dev/jmap/pkg/commands/options"
	"tableflip.dev/jmap/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "jmap",
		Short: base.Wrap80("Two-column customer journey maps on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLogin(topLevel)
	addProjects(topLevel)
	addGet(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addMove(topLevel)
	addDup(topLevel)
	addRemove(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addUI(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
}

// loadService builds the service from on-disk config: the diskv store plus
// the file-backed identity below the same base path.
func loadService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	id, err := auth.NewManager(cfg.BasePath(), cfg.Domains())
	if err != nil {
		return nil, err
	}
	return &app.Service{Persistence: p, Identity: id}, nil
}

// loadIdentity builds just the identity collaborator for login commands.
func loadIdentity() (*auth.Manager, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	return auth.NewManager(cfg.BasePath(), cfg.Domains())
}
