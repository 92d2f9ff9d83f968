// Package key provides the CLI helper to display the glyph legend.
package key

import (
	"context"
	"fmt"

	"tableflip.dev/jmap/pkg/printers"
)

// Key prints the legend describing item kinds and their glyphs.
type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Legend()
	fmt.Println("")
	return nil
}
