// Package imp contains the runner for `jmap import`.
package imp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/jmap/pkg/app"
	"tableflip.dev/jmap/pkg/printers"
)

type Import struct {
	Project string
	// Path is the exported json file; "-" reads stdin.
	Path string

	Service *app.Service
}

func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no service")
	}

	var data []byte
	var err error
	if n.Path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(n.Path)
	}
	if err != nil {
		return err
	}

	if err := n.Service.ImportJSON(ctx, n.Project, data); err != nil {
		return err
	}

	doc, err := n.Service.Map(ctx, n.Project)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Map(doc)
	return nil
}
