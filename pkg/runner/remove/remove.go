// Package remove contains the runner for `jmap rm`.
package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/jmap/pkg/app"
	"tableflip.dev/jmap/pkg/journey"
	"tableflip.dev/jmap/pkg/printers"
)

type Remove struct {
	Project string
	Column  journey.ColumnID
	ID      string

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if !n.Column.Valid() {
		return fmt.Errorf("unknown column %q", n.Column)
	}

	if err := n.Service.DeleteItem(ctx, n.Project, n.Column, n.ID); err != nil {
		return err
	}

	doc, err := n.Service.Map(ctx, n.Project)
	if err != nil {
		return err
	}
	col := doc.Column(n.Column)

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Column(col)
	return nil
}
