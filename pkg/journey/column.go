package journey

// ColumnID names one of the two fixed columns of a map document. The values
// are the wire format and are not user-editable; column titles are.
type ColumnID string

const (
	// Current is the current-state column.
	Current ColumnID = "current"
	// Future is the future-state column.
	Future ColumnID = "future"
)

// Valid reports whether id names one of the two fixed columns.
func (id ColumnID) Valid() bool {
	return id == Current || id == Future
}

// Other returns the opposite column id.
func (id ColumnID) Other() ColumnID {
	if id == Current {
		return Future
	}
	return Current
}

// Column is an ordered sequence of items under a user-editable title. The
// item order is the journey sequence; there is no rank field.
type Column struct {
	ID    ColumnID `json:"id"`
	Title string   `json:"title"`
	Items []Item   `json:"items"`
}

// IndexOf returns the position of the item with the given id, or -1.
func (c Column) IndexOf(id string) int {
	for i, item := range c.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (c Column) clone() Column {
	out := c
	if c.Items != nil {
		out.Items = append([]Item(nil), c.Items...)
	}
	return out
}
