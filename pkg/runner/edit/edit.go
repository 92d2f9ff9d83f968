// Package edit contains the runner for `jmap edit`.
package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/jmap/pkg/app"
	"tableflip.dev/jmap/pkg/journey"
	"tableflip.dev/jmap/pkg/printers"
)

type Edit struct {
	Project string
	Column  journey.ColumnID
	ID      string
	Content string

	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	if !n.Column.Valid() {
		return fmt.Errorf("unknown column %q", n.Column)
	}

	doc, err := n.Service.Map(ctx, n.Project)
	if err != nil {
		return err
	}
	col := doc.Column(n.Column)
	if col.IndexOf(n.ID) < 0 {
		return fmt.Errorf("no item %q in the %s column", n.ID, n.Column)
	}

	if err := n.Service.UpdateItem(ctx, n.Project, n.Column, n.ID, n.Content); err != nil {
		return err
	}

	doc, err = n.Service.Map(ctx, n.Project)
	if err != nil {
		return err
	}
	col = doc.Column(n.Column)

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Column(col)
	return nil
}
