// Package export contains the runner for `jmap export`.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tableflip.dev/jmap/pkg/app"
	"tableflip.dev/jmap/pkg/export"
)

type Export struct {
	Project string
	// Format is "json" or "pdf".
	Format string
	// Output is a target file or directory. Empty writes to the working
	// directory under the map's derived filename; "-" streams json to
	// stdout.
	Output string

	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}

	doc, err := n.Service.Map(ctx, n.Project)
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(n.Format)) {
	case "", "json":
		data, err := export.JSON(doc)
		if err != nil {
			return err
		}
		if n.Output == "-" {
			_, err = os.Stdout.Write(append(data, '\n'))
			return err
		}
		path := n.resolve(export.JSONFilename(doc.Title))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil

	case "pdf":
		if n.Output == "-" {
			return errors.New("pdf export needs a file, not stdout")
		}
		path := n.resolve(export.PDFFilename(doc.Title))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := export.PDF(f, doc); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil

	default:
		return fmt.Errorf("unknown export format %q, want json or pdf", n.Format)
	}
}

func (n *Export) resolve(filename string) string {
	out := strings.TrimSpace(n.Output)
	if out == "" {
		return filename
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, filename)
	}
	return out
}
