// Package project defines per-project metadata records.
package project

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTitle is the title a freshly created project starts with.
const DefaultTitle = "Untitled Journey"

// Meta describes a project in the per-user dashboard. Timestamps are epoch
// milliseconds; UpdatedAt is refreshed on every successful map write.
type Meta struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// New creates metadata for a fresh project.
func New(now time.Time) Meta {
	ms := now.UnixMilli()
	return Meta{
		ID:        uuid.NewString(),
		Title:     DefaultTitle,
		CreatedAt: ms,
		UpdatedAt: ms,
	}
}

// Updated returns the meta's last-modified time.
func (m Meta) Updated() time.Time {
	return time.UnixMilli(m.UpdatedAt)
}

// MarshalList serialises a metadata slice.
func MarshalList(metas []Meta) ([]byte, error) {
	return json.MarshalIndent(metas, "", "  ")
}

// UnmarshalList deserialises a metadata slice, skipping records without an id.
func UnmarshalList(data []byte) ([]Meta, error) {
	if len(data) == 0 {
		return []Meta{}, nil
	}
	var metas []Meta
	if err := json.Unmarshal(data, &metas); err != nil {
		return nil, err
	}
	out := make([]Meta, 0, len(metas))
	for _, meta := range metas {
		if strings.TrimSpace(meta.ID) == "" {
			continue
		}
		if strings.TrimSpace(meta.Title) == "" {
			meta.Title = DefaultTitle
		}
		out = append(out, meta)
	}
	return out, nil
}
