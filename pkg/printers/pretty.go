// Package printers renders map documents and project listings for the CLI.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/jmap/pkg/glyph"
	"tableflip.dev/jmap/pkg/journey"
	"tableflip.dev/jmap/pkg/project"
	"tableflip.dev/jmap/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	// Item ids are uuids; pad the id column to their width.
	spacing = strings.Repeat(" ", len("00000000-0000-0000-0000-000000000000")+2)
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" step")
	default:
		_, _ = c.Println(" steps")
	}
}

// Map renders the full document: title, then both columns in order.
func (pp *PrettyPrint) Map(doc journey.Document) {
	pp.Title(doc.Title)
	pp.NewLine()
	pp.Column(doc.Current)
	pp.Column(doc.Future)
}

// Column renders one column heading and its items in journey order.
func (pp *PrettyPrint) Column(col journey.Column) {
	pp.TitleWithCount(col.Title, len(col.Items))

	if len(col.Items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	section := color.New(color.Bold)
	system := color.New(color.FgHiBlue)
	draft := color.New(color.Faint, color.Italic)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, item := range col.Items {
		if pp.ShowID {
			_, _ = y.Print(item.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(item.ID)))
		}
		line := t
		switch {
		case item.DraftNew:
			line = draft
		case item.Kind == glyph.Section:
			line = section
		case item.Kind == glyph.System:
			line = system
		}
		_, _ = line.Printf("%s %s\n", item.Kind.String(), item.Label())
	}
	_, _ = t.Println("")
}

// Projects renders the project listing, most recently updated first.
func (pp *PrettyPrint) Projects(list []project.Meta, now time.Time) {
	if len(list) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" no projects yet, run `jmap projects create`")
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Title"), bold.Sprint("Updated"))
	for _, meta := range list {
		tbl.AddRow(meta.ID, meta.Title, timeutil.Relative(now, time.UnixMilli(meta.UpdatedAt)))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Legend renders the item kind key.
func (pp *PrettyPrint) Legend() {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Glyph"), bold.Sprint("Kind"), bold.Sprint("Meaning"))
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Symbol, g.Noun, g.Meaning)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(color.Output, tbl)
}
