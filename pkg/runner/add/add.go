// Package add contains the runner for `jmap add`.
package add

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/jmap/pkg/app"
	"tableflip.dev/jmap/pkg/glyph"
	"tableflip.dev/jmap/pkg/journey"
	"tableflip.dev/jmap/pkg/printers"
)

type Add struct {
	Project string
	Column  journey.ColumnID
	Kind    glyph.Kind
	Content string

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if !n.Column.Valid() {
		return fmt.Errorf("unknown column %q", n.Column)
	}
	if !n.Kind.Valid() {
		return fmt.Errorf("unknown kind %q", n.Kind)
	}

	item, err := n.Service.AddItem(ctx, n.Project, n.Column, n.Kind)
	if err != nil {
		return err
	}
	// Content given up front settles the draft immediately.
	if strings.TrimSpace(n.Content) != "" {
		if err := n.Service.UpdateItem(ctx, n.Project, n.Column, item.ID, n.Content); err != nil {
			return err
		}
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
