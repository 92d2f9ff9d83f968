// Package app provides high-level operations over projects and map
// documents. It wraps the store and identity collaborators so the CLI and
// TUI can share logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"tableflip.dev/jmap/pkg/auth"
	"tableflip.dev/jmap/pkg/export"
	"tableflip.dev/jmap/pkg/glyph"
	"tableflip.dev/jmap/pkg/journey"
	"tableflip.dev/jmap/pkg/project"
	"tableflip.dev/jmap/pkg/store"
)

// ErrSignedOut is returned when an operation needs an authenticated user.
var ErrSignedOut = errors.New("app: not signed in, run `jmap login <email>` first")

// Service bundles the collaborators. Both are injected; nothing here
// reaches for ambient globals, so tests can substitute fakes.
type Service struct {
	Persistence store.Persistence
	Identity    auth.Identity
}

func (s *Service) user() (string, error) {
	if s.Persistence == nil {
		return "", errors.New("app: no persistence configured")
	}
	if s.Identity == nil {
		return "", errors.New("app: no identity configured")
	}
	user, ok := s.Identity.CurrentUser()
	if !ok {
		return "", ErrSignedOut
	}
	return user, nil
}

// Key returns the store slot for one of the current user's projects.
func (s *Service) Key(projectID string) (store.Key, error) {
	user, err := s.user()
	if err != nil {
		return store.Key{}, err
	}
	return store.Key{User: user, Project: projectID}, nil
}

// Projects lists the current user's projects, most recently updated first.
func (s *Service) Projects(ctx context.Context) ([]project.Meta, error) {
	user, err := s.user()
	if err != nil {
		return nil, err
	}
	return s.Persistence.Projects(ctx, user)
}

// CreateProject registers fresh metadata and seeds the project's empty map
// document.
func (s *Service) CreateProject(ctx context.Context) (project.Meta, error) {
	user, err := s.user()
	if err != nil {
		return project.Meta{}, err
	}
	meta := project.New(time.Now())
	if err := s.Persistence.PutProject(user, meta); err != nil {
		return project.Meta{}, fmt.Errorf("app: create project: %w", err)
	}
	key := store.Key{User: user, Project: meta.ID}
	if err := s.Persistence.WriteMap(key, journey.NewDocument()); err != nil {
		return project.Meta{}, fmt.Errorf("app: seed map: %w", err)
	}
	return meta, nil
}

// DeleteProject removes the metadata record and the map document.
func (s *Service) DeleteProject(ctx context.Context, projectID string) error {
	user, err := s.user()
	if err != nil {
		return err
	}
	if err := s.Persistence.DeleteProject(user, projectID); err != nil {
		return err
	}
	return s.Persistence.DeleteMap(store.Key{User: user, Project: projectID})
}

// Map loads the project's document; an unwritten slot yields a fresh empty
// map rather than an error.
func (s *Service) Map(ctx context.Context, projectID string) (journey.Document, error) {
	key, err := s.Key(projectID)
	if err != nil {
		return journey.Document{}, err
	}
	doc, ok, err := s.Persistence.ReadMap(ctx, key)
	if err != nil {
		return journey.Document{}, err
	}
	if !ok {
		return journey.NewDocument(), nil
	}
	return doc, nil
}

// save writes the document and touches the project metadata. The meta
// touch is best-effort: its failure never rolls back the map write.
func (s *Service) save(key store.Key, doc journey.Document) error {
	if err := s.Persistence.WriteMap(key, doc); err != nil {
		return err
	}
	if err := s.Persistence.TouchProject(key.User, key.Project, doc.Title, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "app: touch project: %v\n", err)
	}
	return nil
}

func (s *Service) mutate(ctx context.Context, projectID string, fn func(journey.Document) journey.Document) (journey.Document, error) {
	key, err := s.Key(projectID)
	if err != nil {
		return journey.Document{}, err
	}
	doc, err := s.Map(ctx, projectID)
	if err != nil {
		return journey.Document{}, err
	}
	next := fn(doc)
	if err := s.save(key, next); err != nil {
		return journey.Document{}, err
	}
	return next, nil
}

// AddItem appends a new draft item and persists the result.
func (s *Service) AddItem(ctx context.Context, projectID string, columnID journey.ColumnID, kind glyph.Kind) (journey.Item, error) {
	var item journey.Item
	_, err := s.mutate(ctx, projectID, func(doc journey.Document) journey.Document {
		var next journey.Document
		next, item = journey.AddItem(doc, columnID, kind)
		return next
	})
	return item, err
}

// DeleteItem removes an item and persists the result.
func (s *Service) DeleteItem(ctx context.Context, projectID string, columnID journey.ColumnID, itemID string) error {
	_, err := s.mutate(ctx, projectID, func(doc journey.Document) journey.Document {
		return journey.DeleteItem(doc, columnID, itemID)
	})
	return err
}

// UpdateItem replaces an item's content and persists the result.
func (s *Service) UpdateItem(ctx context.Context, projectID string, columnID journey.ColumnID, itemID, content string) error {
	_, err := s.mutate(ctx, projectID, func(doc journey.Document) journey.Document {
		return journey.UpdateContent(doc, columnID, itemID, content)
	})
	return err
}

// MoveItem reorders within a column (targetID may be journey.End) and
// persists the result.
func (s *Service) MoveItem(ctx context.Context, projectID string, columnID journey.ColumnID, sourceID, targetID string) (journey.Document, error) {
	return s.mutate(ctx, projectID, func(doc journey.Document) journey.Document {
		return journey.MoveItem(doc, columnID, sourceID, targetID)
	})
}

// Duplicate copies a current-state item into the future column and
// persists the result.
func (s *Service) Duplicate(ctx context.Context, projectID, itemID string) (journey.Document, error) {
	return s.mutate(ctx, projectID, func(doc journey.Document) journey.Document {
		return journey.DuplicateToFuture(doc, itemID)
	})
}

// SetTitle renames the map (mirrored into project metadata by save).
func (s *Service) SetTitle(ctx context.Context, projectID, title string) error {
	_, err := s.mutate(ctx, projectID, func(doc journey.Document) journey.Document {
		return journey.UpdateTitle(doc, title)
	})
	return err
}

// ExportJSON serialises the project's map.
func (s *Service) ExportJSON(ctx context.Context, projectID string) ([]byte, string, error) {
	doc, err := s.Map(ctx, projectID)
	if err != nil {
		return nil, "", err
	}
	data, err := export.JSON(doc)
	if err != nil {
		return nil, "", err
	}
	return data, export.JSONFilename(doc.Title), nil
}

// ImportJSON validates and installs an exported blob as the project's map.
// A rejected blob leaves the stored document untouched.
func (s *Service) ImportJSON(ctx context.Context, projectID string, data []byte) error {
	doc, err := export.ImportJSON(data)
	if err != nil {
		return err
	}
	key, err := s.Key(projectID)
	if err != nil {
		return err
	}
	return s.save(key, doc)
}
