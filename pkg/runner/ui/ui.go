// Package ui contains the runner for `jmap ui`.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/jmap/pkg/app"
	tuiapp "tableflip.dev/jmap/pkg/tui/app"
)

// UI launches the Bubble Tea editor for one project.
type UI struct {
	Project string
	Service *app.Service
}

func (n *UI) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not open the editor, no service")
	}
	return tuiapp.Run(n.Service, n.Project)
}
