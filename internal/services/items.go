package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/filedesk/internal/common"
	"github.com/dmitrijs2005/filedesk/internal/logging"
	"github.com/dmitrijs2005/filedesk/internal/models"
	"github.com/dmitrijs2005/filedesk/internal/tree"
	"github.com/google/uuid"
)

var (
	ErrEmptyName  = errors.New("name is empty")
	ErrItemAbsent = errors.New("item not found")
	ErrNotAFile   = errors.New("item is not a file")
	ErrNotAFolder = errors.New("item is not a folder")
)

// ItemStore is the subset of the store used by the service.
type ItemStore interface {
	Open(ctx context.Context) error
	Upsert(ctx context.Context, item *models.Item) (string, error)
	GetByID(ctx context.Context, id string) (*models.Item, error)
	ListByParent(ctx context.Context, parentID string) ([]models.Item, error)
	DeleteRecursive(ctx context.Context, id string) error
}

// Notifier is told about every local mutation. It must not block.
type Notifier interface {
	Notify()
}

type ItemService interface {
	Open(ctx context.Context) error
	CreateFolder(ctx context.Context, parentID, name string) (*models.Item, error)
	CreateFile(ctx context.Context, parentID, name, content string) (*models.Item, error)
	SaveContent(ctx context.Context, id, content string) (*models.Item, error)
	Rename(ctx context.Context, id, name string) (*models.Item, error)
	Move(ctx context.Context, id, newParentID string) (*models.Item, error)
	List(ctx context.Context, folderID string) ([]models.Item, error)
	Search(ctx context.Context, folderID, query string) ([]models.Item, error)
	Get(ctx context.Context, id string) (*models.Item, error)
	Breadcrumb(ctx context.Context, folderID string) (tree.Path, error)
	Delete(ctx context.Context, id string) error
}

type nopNotifier struct{}

func (nopNotifier) Notify() {}

type itemService struct {
	store    ItemStore
	notifier Notifier
	log      logging.Logger
	now      func() time.Time
}

func NewItemService(store ItemStore, notifier Notifier, log logging.Logger) ItemService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &itemService{
		store:    store,
		notifier: notifier,
		log:      log.With("component", "items"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *itemService) Open(ctx context.Context) error {
	return s.store.Open(ctx)
}

func (s *itemService) CreateFolder(ctx context.Context, parentID, name string) (*models.Item, error) {
	return s.create(ctx, parentID, name, models.KindFolder, nil)
}

func (s *itemService) CreateFile(ctx context.Context, parentID, name, content string) (*models.Item, error) {
	return s.create(ctx, parentID, name, models.KindFile, models.StringPtr(content))
}

func (s *itemService) create(ctx context.Context, parentID, name string, kind models.Kind, content *string) (*models.Item, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	item := &models.Item{
		ID:       uuid.NewString(),
		Name:     name,
		Kind:     kind,
		ParentID: parentID,
		Content:  content,
	}
	if err := s.save(ctx, item); err != nil {
		return nil, fmt.Errorf("error creating %s: %w", kind, err)
	}
	s.log.Debug(ctx, "item created", "id", item.ID, "kind", kind, "parent", parentID)
	return item, nil
}

// SaveContent replaces the content of a file. It backs the editor's save.
func (s *itemService) SaveContent(ctx context.Context, id, content string) (*models.Item, error) {
	item, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.IsFolder() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, id)
	}

	item.Content = models.StringPtr(content)
	if err := s.save(ctx, item); err != nil {
		return nil, fmt.Errorf("error saving content: %w", err)
	}
	return item, nil
}

func (s *itemService) Rename(ctx context.Context, id, name string) (*models.Item, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	if id == models.RootID {
		return nil, common.NewStoreError(common.ErrInvalidOperation, "rename", id, nil)
	}
	item, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = name
	if err := s.save(ctx, item); err != nil {
		return nil, fmt.Errorf("error renaming item: %w", err)
	}
	return item, nil
}

func (s *itemService) Move(ctx context.Context, id, newParentID string) (*models.Item, error) {
	if id == models.RootID {
		return nil, common.NewStoreError(common.ErrInvalidOperation, "move", id, nil)
	}
	item, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.ParentID == newParentID {
		return item, nil
	}

	item.ParentID = newParentID
	if err := s.save(ctx, item); err != nil {
		return nil, fmt.Errorf("error moving item: %w", err)
	}
	return item, nil
}

// List returns the children of folderID in display order.
func (s *itemService) List(ctx context.Context, folderID string) ([]models.Item, error) {
	folder, err := s.mustGet(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if !folder.IsFolder() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFolder, folderID)
	}

	children, err := s.store.ListByParent(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("error listing folder: %w", err)
	}
	tree.SortForDisplay(children)
	return children, nil
}

// Search filters the children of folderID by name.
func (s *itemService) Search(ctx context.Context, folderID, query string) ([]models.Item, error) {
	children, err := s.List(ctx, folderID)
	if err != nil {
		return nil, err
	}
	return tree.FilterByName(children, query), nil
}

func (s *itemService) Get(ctx context.Context, id string) (*models.Item, error) {
	return s.mustGet(ctx, id)
}

func (s *itemService) Breadcrumb(ctx context.Context, folderID string) (tree.Path, error) {
	return tree.Breadcrumb(ctx, s.store, s.log, folderID)
}

func (s *itemService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteRecursive(ctx, id); err != nil {
		return fmt.Errorf("error deleting item: %w", err)
	}
	s.notifier.Notify()
	return nil
}

func (s *itemService) mustGet(ctx context.Context, id string) (*models.Item, error) {
	item, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemAbsent, id)
	}
	return item, nil
}

// save stamps the item as a pending local change, stores it and notifies.
func (s *itemService) save(ctx context.Context, item *models.Item) error {
	now := s.now()
	item.UpdatedAt = now
	item.Metadata = models.FormatDate(now)
	item.PendingSync = true

	if _, err := s.store.Upsert(ctx, item); err != nil {
		return err
	}
	s.notifier.Notify()
	return nil
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}
