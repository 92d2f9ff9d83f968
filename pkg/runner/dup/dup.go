// Package dup contains the runner for `jmap dup`.
package dup

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/jmap/pkg/app"
	"tableflip.dev/jmap/pkg/printers"
)

// Dup copies a current-state item into the future column.
type Dup struct {
	Project string
	ID      string

	Service *app.Service
}

func (n *Dup) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not duplicate, no service")
	}

	before, err := n.Service.Map(ctx, n.Project)
	if err != nil {
		return err
	}
	if before.Current.IndexOf(n.ID) < 0 {
		return fmt.Errorf("no item %q in the current column", n.ID)
	}

	doc, err := n.Service.Duplicate(ctx, n.Project, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Column(doc.Future)
	return nil
}
