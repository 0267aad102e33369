// Package models defines the item types persisted by the local store.
package models

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
)

// RootID is the id of the virtual top-level folder. It is never persisted.
const RootID = "root"

// RootName is the display name of the virtual root.
const RootName = "Root"

// Kind tags an item as a file or a folder.
type Kind string

const (
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
)

var (
	ErrEmptyID         = errors.New("item id is empty")
	ErrReservedID      = errors.New("item id is reserved")
	ErrUnknownKind     = errors.New("unknown item kind")
	ErrEmptyParent     = errors.New("item parent id is empty")
	ErrSelfParent      = errors.New("item cannot be its own parent")
	ErrContentMismatch = errors.New("content must be set for files and unset for folders")
)

// Item is a node in the filesystem tree.
type Item struct {
	// ID is the immutable primary key.
	ID string
	// Name is the display name; files usually carry an extension.
	Name string
	Kind Kind
	// ParentID is the containing folder id or RootID. Empty only on the root.
	ParentID string
	// Content is defined iff Kind is KindFile.
	Content *string
	// Metadata is display-only derived info, e.g. a formatted date.
	Metadata string
	// PendingSync marks local changes not yet acknowledged by the remote.
	PendingSync bool
	// Revision is bumped by the store on every upsert.
	Revision int64
	// UpdatedAt is the time of the last local mutation in UTC.
	UpdatedAt time.Time
}

// SyncAck confirms that the remote holds the given revision of an item.
type SyncAck struct {
	ID       string
	Revision int64
}

// Root synthesizes the virtual root folder.
func Root() *Item {
	return &Item{ID: RootID, Name: RootName, Kind: KindFolder}
}

func (i *Item) IsFolder() bool { return i.Kind == KindFolder }

func (i *Item) IsRoot() bool { return i.ID == RootID }

// Text returns the file content, or an empty string for folders.
func (i *Item) Text() string {
	if i.Content == nil {
		return ""
	}
	return *i.Content
}

// Validate checks the shape invariants of a persistable item.
func (i *Item) Validate() error {
	if i.ID == "" {
		return ErrEmptyID
	}
	if i.ID == RootID {
		return ErrReservedID
	}
	switch i.Kind {
	case KindFile:
		if i.Content == nil {
			return ErrContentMismatch
		}
	case KindFolder:
		if i.Content != nil {
			return ErrContentMismatch
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, i.Kind)
	}
	if i.ParentID == "" {
		return ErrEmptyParent
	}
	if i.ParentID == i.ID {
		return ErrSelfParent
	}
	return nil
}

// StringPtr is a helper for building file content.
func StringPtr(s string) *string { return &s }

// Category is the display class of an item, used for icon selection.
type Category string

const (
	CategoryFolder   Category = "folder"
	CategoryMarkup   Category = "markup"
	CategoryDocument Category = "document"
	CategoryScript   Category = "script"
	CategoryGeneric  Category = "generic"
)

// CategoryOf infers the display category of an item from its kind and the
// extension of its name.
func CategoryOf(i *Item) Category {
	if i.IsFolder() {
		return CategoryFolder
	}
	return FileCategory(i.Name)
}

// FileCategory maps a file name extension to its display category.
func FileCategory(name string) Category {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(name), ".")) {
	case "html", "css", "json":
		return CategoryMarkup
	case "txt", "md", "pdf":
		return CategoryDocument
	case "js":
		return CategoryScript
	default:
		return CategoryGeneric
	}
}

const metadataDateLayout = "Jan 2, 2006"

// FormatDate renders the display metadata for a mutation time.
func FormatDate(t time.Time) string {
	return t.Format(metadataDateLayout)
}
