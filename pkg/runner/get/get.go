// Package get contains the runner for `jmap get`.
package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/jmap/pkg/app"
	"tableflip.dev/jmap/pkg/journey"
	"tableflip.dev/jmap/pkg/printers"
)

type Get struct {
	ShowID  bool
	Project string
	Column  journey.ColumnID // empty prints both columns
	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	doc, err := n.Service.Map(ctx, n.Project)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Column != "" {
		if !n.Column.Valid() {
			return fmt.Errorf("unknown column %q", n.Column)
		}
		col := doc.Column(n.Column)
		pp.Title(doc.Title)
		pp.NewLine()
		pp.Column(col)
		return nil
	}

	pp.Map(doc)
	return nil
}
