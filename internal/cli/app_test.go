package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/filedesk/internal/logging"
	"github.com/dmitrijs2005/filedesk/internal/models"
	"github.com/dmitrijs2005/filedesk/internal/services"
	"github.com/dmitrijs2005/filedesk/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFlusher struct {
	n   int
	err error
}

func (f *fakeFlusher) Flush(context.Context) (int, error) { return f.n, f.err }

func newItems(t *testing.T) services.ItemService {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "items.db"), logging.Nop())
	t.Cleanup(func() { _ = st.Close() })
	return services.NewItemService(st, nil, logging.Nop())
}

func runScript(t *testing.T, items services.ItemService, flusher Flusher, lines ...string) string {
	t.Helper()
	captureOutput(t)
	var out bytes.Buffer
	app := NewApp(items, flusher, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, false)
	require.NoError(t, app.Run(context.Background()))
	return out.String()
}

func TestApp_SessionScenario(t *testing.T) {
	items := newItems(t)

	out := runScript(t, items, nil,
		"mkdir site",
		"cd site",
		"touch index.html",
		"edit index.html",
		"<h1>hi</h1>",
		"",
		"cat index.html",
		"pwd",
		"ls",
	)

	assert.Contains(t, out, "<h1>hi</h1>\n")
	assert.Contains(t, out, "Root/site\n")
	assert.Contains(t, out, "[markup]")
	assert.Contains(t, out, "index.html")
}

func TestApp_RenameMoveRemove(t *testing.T) {
	items := newItems(t)
	ctx := context.Background()

	runScript(t, items, nil,
		"mkdir docs",
		"mkdir drafts",
		"touch notes.txt",
		"mv notes.txt readme.md",
		"move readme.md docs",
		"cd docs",
		"move readme.md ..",
		"cd /",
		"rm drafts",
	)

	root, err := items.List(ctx, models.RootID)
	require.NoError(t, err)
	names := make([]string, 0, len(root))
	for _, it := range root {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"docs", "readme.md"}, names)
}

func TestApp_Find(t *testing.T) {
	items := newItems(t)

	out := runScript(t, items, nil,
		"touch app.js",
		"touch about.html",
		"find JS",
	)

	assert.Contains(t, out, "app.js")
	assert.Contains(t, out, "[script]")
	assert.NotContains(t, out, "about.html")
}

func TestApp_Errors(t *testing.T) {
	items := newItems(t)
	require.NoError(t, items.Open(context.Background()))
	var out bytes.Buffer
	app := NewApp(items, nil, strings.NewReader(""), &out, false)
	ctx := context.Background()

	require.ErrorIs(t, app.Cat(ctx, []string{"ghost"}), ErrNoSuchItem)
	require.ErrorIs(t, app.MakeDir(ctx, nil), ErrUsage)
	require.ErrorIs(t, app.Rename(ctx, []string{"only"}), ErrUsage)
	require.Error(t, app.Sync(ctx))

	require.NoError(t, app.ChangeDir(ctx, []string{".."}))
	assert.Equal(t, models.RootID, app.cwd)
}

func TestApp_Sync(t *testing.T) {
	items := newItems(t)
	out := runScript(t, items, &fakeFlusher{n: 3}, "sync")
	assert.Contains(t, out, "3 item(s) synced")

	var buf bytes.Buffer
	app := NewApp(items, &fakeFlusher{err: errors.New("offline")}, strings.NewReader(""), &buf, false)
	require.Error(t, app.Sync(context.Background()))
}

func TestInteractive(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })

	isTerminal = func(int) bool { return true }
	assert.True(t, Interactive(os.Stdin))

	isTerminal = func(int) bool { return false }
	assert.False(t, Interactive(os.Stdin))
}

func TestApp_ListShowsFolderItemCount(t *testing.T) {
	items := newItems(t)

	out := runScript(t, items, nil,
		"mkdir docs",
		"mkdir empty",
		"mkdir one",
		"cd docs",
		"touch a.txt",
		"touch b.md",
		"cd ..",
		"cd one",
		"touch c.js",
		"cd /",
		"ls",
	)

	lines := strings.Split(out, "\n")
	assertLine := func(name, meta string) {
		t.Helper()
		for _, l := range lines {
			if strings.Contains(l, " "+name+" ") {
				assert.Contains(t, l, meta, l)
				return
			}
		}
		t.Fatalf("no listing line for %s in:\n%s", name, out)
	}
	assertLine("docs", "2 items")
	assertLine("empty", "0 items")
	assertLine("one", "1 item")
}

func TestItemCount(t *testing.T) {
	assert.Equal(t, "0 items", itemCount(0))
	assert.Equal(t, "1 item", itemCount(1))
	assert.Equal(t, "12 items", itemCount(12))
}
