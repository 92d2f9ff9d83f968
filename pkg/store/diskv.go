package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/jmap/pkg/journey"
	"tableflip.dev/jmap/pkg/project"
)

// Key addresses one map document slot: the per-user, per-project unit of
// persistence.
type Key struct {
	User    string
	Project string
}

func (k Key) valid() bool {
	return strings.TrimSpace(k.User) != "" && strings.TrimSpace(k.Project) != ""
}

// Persistence is the document store contract consumed by the sync
// controller, the service facade, and the CLI runners.
type Persistence interface {
	// ReadMap loads the map document for the key. ok is false when the
	// slot has never been written ("no data yet", not an error).
	ReadMap(ctx context.Context, key Key) (doc journey.Document, ok bool, err error)
	// WriteMap replaces the slot with the full document.
	WriteMap(key Key, doc journey.Document) error
	// DeleteMap removes the slot. Missing slots are not an error.
	DeleteMap(key Key) error

	// Projects lists the user's project metadata, most recently updated
	// first.
	Projects(ctx context.Context, user string) ([]project.Meta, error)
	// PutProject upserts a full metadata record.
	PutProject(user string, meta project.Meta) error
	// TouchProject updates title and updatedAt for the project, leaving
	// the other fields alone. Missing projects are a no-op.
	TouchProject(user, projectID, title string, at time.Time) error
	// DeleteProject removes the metadata record.
	DeleteProject(user, projectID string) error

	// Watch streams change events for the key's slot until ctx is
	// cancelled.
	Watch(ctx context.Context, key Key) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

const (
	mapFileName       = "map"
	projectsIndexFile = ".projects.json"
)

func (p *persistence) ReadMap(ctx context.Context, key Key) (journey.Document, bool, error) {
	if !key.valid() {
		return journey.Document{}, false, errors.New("store: user and project required")
	}
	val, err := p.d.Read(toKey(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return journey.Document{}, false, nil
		}
		return journey.Document{}, false, fmt.Errorf("store: read map: %w", err)
	}
	var doc journey.Document
	if err := json.Unmarshal(val, &doc); err != nil {
		return journey.Document{}, false, fmt.Errorf("store: decode map: %w", err)
	}
	// Column roles are fixed regardless of what the blob says.
	doc.Current.ID = journey.Current
	doc.Future.ID = journey.Future
	return doc, true, nil
}

func (p *persistence) WriteMap(key Key, doc journey.Document) error {
	if !key.valid() {
		return errors.New("store: user and project required")
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(key), data)
}

func (p *persistence) DeleteMap(key Key) error {
	if !key.valid() {
		return errors.New("store: user and project required")
	}
	if err := p.d.Erase(toKey(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (p *persistence) Projects(ctx context.Context, user string) ([]project.Meta, error) {
	index, err := p.loadProjectsIndex(user)
	if err != nil {
		return nil, err
	}
	list := make([]project.Meta, 0, len(index))
	for _, meta := range index {
		list = append(list, meta)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].UpdatedAt == list[j].UpdatedAt {
			return list[i].ID < list[j].ID
		}
		return list[i].UpdatedAt > list[j].UpdatedAt
	})
	return list, nil
}

func (p *persistence) PutProject(user string, meta project.Meta) error {
	if strings.TrimSpace(meta.ID) == "" {
		return errors.New("store: project id required")
	}
	index, err := p.loadProjectsIndex(user)
	if err != nil {
		return err
	}
	index[meta.ID] = meta
	return p.saveProjectsIndex(user, index)
}

func (p *persistence) TouchProject(user, projectID, title string, at time.Time) error {
	index, err := p.loadProjectsIndex(user)
	if err != nil {
		return err
	}
	meta, ok := index[projectID]
	if !ok {
		return nil
	}
	if strings.TrimSpace(title) != "" {
		meta.Title = title
	}
	meta.UpdatedAt = at.UnixMilli()
	index[projectID] = meta
	return p.saveProjectsIndex(user, index)
}

func (p *persistence) DeleteProject(user, projectID string) error {
	index, err := p.loadProjectsIndex(user)
	if err != nil {
		return err
	}
	if _, ok := index[projectID]; !ok {
		return nil
	}
	delete(index, projectID)
	return p.saveProjectsIndex(user, index)
}

func (p *persistence) userDir(user string) string {
	return filepath.Join(p.basePath, encodeSegment(user))
}

func (p *persistence) slotDir(key Key) string {
	return filepath.Join(p.userDir(key.User), encodeSegment(key.Project))
}

func (p *persistence) projectsIndexPath(user string) string {
	return filepath.Join(p.userDir(user), projectsIndexFile)
}

func (p *persistence) loadProjectsIndex(user string) (map[string]project.Meta, error) {
	if strings.TrimSpace(user) == "" {
		return nil, errors.New("store: user required")
	}
	if p.basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(p.userDir(user), 0o755); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p.projectsIndexPath(user))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]project.Meta), nil
		}
		return nil, err
	}
	list, err := project.UnmarshalList(data)
	if err != nil {
		return nil, err
	}
	index := make(map[string]project.Meta, len(list))
	for _, meta := range list {
		index[meta.ID] = meta
	}
	return index, nil
}

func (p *persistence) saveProjectsIndex(user string, index map[string]project.Meta) error {
	list := make([]project.Meta, 0, len(index))
	for _, meta := range index {
		list = append(list, meta)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	data, err := project.MarshalList(list)
	if err != nil {
		return err
	}
	path := p.projectsIndexPath(user)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Key layout is `<user>-<project>-map`: diskv stores the blob under
// <base>/<user>/<project>/map. User and project segments are base64
// encoded so emails and uuids cannot collide with the separator.

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

func toKey(k Key) string {
	return fmt.Sprintf("%s-%s-%s", encodeSegment(k.User), encodeSegment(k.Project), mapFileName)
}

func encodeSegment(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}
