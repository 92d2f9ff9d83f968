// Package projects contains runners for project management commands.
package projects

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/jmap/pkg/app"
	"tableflip.dev/jmap/pkg/printers"
)

// List prints the current user's projects, most recently updated first.
type List struct {
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list projects, no service")
	}
	list, err := n.Service.Projects(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Projects(list, time.Now())
	return nil
}

// Create registers a new project with its empty map document.
type Create struct {
	Service *app.Service
}

func (n *Create) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not create project, no service")
	}
	meta, err := n.Service.CreateProject(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("created %q (%s)\n", meta.Title, meta.ID)
	return nil
}

// Delete removes a project and its map document.
type Delete struct {
	Project string
	Service *app.Service
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete project, no service")
	}
	if err := n.Service.DeleteProject(ctx, n.Project); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", n.Project)
	return nil
}
