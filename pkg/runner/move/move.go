// Package move contains the runner for `jmap move`.
package move

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/jmap/pkg/app"
	"tableflip.dev/jmap/pkg/journey"
	"tableflip.dev/jmap/pkg/printers"
)

type Move struct {
	Project string
	Column  journey.ColumnID
	ID      string
	// Before is the id of the item to insert above, or "end" to append.
	Before string

	Service *app.Service
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no service")
	}
	if !n.Column.Valid() {
		return fmt.Errorf("unknown column %q", n.Column)
	}

	target := strings.TrimSpace(n.Before)
	if target == "" {
		target = journey.End
	}

	doc, err := n.Service.MoveItem(ctx, n.Project, n.Column, n.ID, target)
	if err != nil {
		return err
	}
	col := doc.Column(n.Column)

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Column(col)
	return nil
}
