// Package journey defines the two-column journey map document and the pure
// mutation operations that transform it.
package journey

const (
	// DefaultTitle is the title a freshly created map starts with.
	DefaultTitle = "New Customer Journey"

	defaultCurrentTitle = "Current State"
	defaultFutureTitle  = "Future State"
)

// Document is the full journey map: a title plus exactly two role-fixed
// columns. It is the unit of persistence and is treated as a single
// versioned blob by the store.
type Document struct {
	Title   string `json:"title"`
	Current Column `json:"current"`
	Future  Column `json:"future"`
}

// NewDocument returns an empty map with the default titles.
func NewDocument() Document {
	return Document{
		Title:   DefaultTitle,
		Current: Column{ID: Current, Title: defaultCurrentTitle},
		Future:  Column{ID: Future, Title: defaultFutureTitle},
	}
}

// Column returns the named column. The zero Column is returned for an
// unknown id; callers are expected to validate first.
func (d Document) Column(id ColumnID) Column {
	switch id {
	case Current:
		return d.Current
	case Future:
		return d.Future
	}
	return Column{}
}

// Clone returns a deep copy of the document. Mutation operations clone
// before touching anything so the input document is never aliased.
func (d Document) Clone() Document {
	out := d
	out.Current = d.Current.clone()
	out.Future = d.Future.clone()
	return out
}

func (d *Document) setColumn(col Column) {
	switch col.ID {
	case Current:
		d.Current = col
	case Future:
		d.Future = col
	}
}
