package tree_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/filedesk/internal/logging"
	"github.com/dmitrijs2005/filedesk/internal/models"
	"github.com/dmitrijs2005/filedesk/internal/store"
	"github.com/dmitrijs2005/filedesk/internal/tree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapGetter struct {
	items map[string]*models.Item
	err   error
}

func (m *mapGetter) GetByID(_ context.Context, id string) (*models.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	if id == models.RootID {
		return models.Root(), nil
	}
	return m.items[id], nil
}

func dir(id, parent, name string) *models.Item {
	return &models.Item{ID: id, Name: name, Kind: models.KindFolder, ParentID: parent}
}

func TestBreadcrumb_RoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	s := store.New(filepath.Join(t.TempDir(), "items.db"), logging.Nop())
	require.NoError(t, s.Open(ctx))
	t.Cleanup(func() { _ = s.Close() })

	_, err := s.Upsert(ctx, dir("F", models.RootID, "Projects"))
	require.NoError(t, err)
	_, err = s.Upsert(ctx, dir("S", "F", "site"))
	require.NoError(t, err)

	p, err := tree.Breadcrumb(ctx, s, logging.Nop(), "S")
	require.NoError(t, err)
	assert.False(t, p.Truncated)
	assert.Equal(t, []string{models.RootName, "Projects", "site"}, p.Names())

	want := []tree.Crumb{{ID: models.RootID, Name: models.RootName}, {ID: "F", Name: "Projects"}, {ID: "S", Name: "site"}}
	if diff := cmp.Diff(want, p.Crumbs); diff != "" {
		t.Fatalf("crumbs mismatch (-want +got):\n%s", diff)
	}
}

func TestBreadcrumb_Root(t *testing.T) {
	p, err := tree.Breadcrumb(context.Background(), &mapGetter{}, nil, models.RootID)
	require.NoError(t, err)
	assert.Equal(t, []string{models.RootName}, p.Names())
	assert.False(t, p.Truncated)
}

func TestBreadcrumb_DanglingParentTruncates(t *testing.T) {
	var buf bytes.Buffer
	g := &mapGetter{items: map[string]*models.Item{
		"G": dir("G", "gone", "orphans"),
		"H": dir("H", "G", "deep"),
	}}

	p, err := tree.Breadcrumb(context.Background(), g, logging.New("warn", &buf), "H")
	require.NoError(t, err)
	assert.True(t, p.Truncated)
	assert.Equal(t, []string{"orphans", "deep"}, p.Names())
	assert.Contains(t, buf.String(), "dangling parent")
	assert.Contains(t, buf.String(), "missing=gone")
}

func TestBreadcrumb_CycleTerminates(t *testing.T) {
	var buf bytes.Buffer
	g := &mapGetter{items: map[string]*models.Item{
		"A": dir("A", "B", "a"),
		"B": dir("B", "A", "b"),
	}}

	p, err := tree.Breadcrumb(context.Background(), g, logging.New("warn", &buf), "A")
	require.NoError(t, err)
	assert.True(t, p.Truncated)
	assert.Equal(t, []string{"b", "a"}, p.Names())
	assert.Contains(t, buf.String(), "cycle")
}

func TestBreadcrumb_MissingTarget(t *testing.T) {
	p, err := tree.Breadcrumb(context.Background(), &mapGetter{}, nil, "nope")
	require.NoError(t, err)
	assert.Empty(t, p.Crumbs)
	assert.False(t, p.Truncated)
}

func TestBreadcrumb_FileTarget(t *testing.T) {
	g := &mapGetter{items: map[string]*models.Item{
		"i1": {ID: "i1", Name: "x.txt", Kind: models.KindFile, ParentID: models.RootID, Content: models.StringPtr("")},
	}}

	_, err := tree.Breadcrumb(context.Background(), g, nil, "i1")
	require.ErrorIs(t, err, tree.ErrNotFolder)
}

func TestBreadcrumb_LookupErrorIsReturned(t *testing.T) {
	boom := errors.New("read failed")

	_, err := tree.Breadcrumb(context.Background(), &mapGetter{err: boom}, nil, "F")
	require.ErrorIs(t, err, boom)
}
