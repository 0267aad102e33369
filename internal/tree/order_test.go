package tree_test

import (
	"testing"

	"github.com/dmitrijs2005/filedesk/internal/models"
	"github.com/dmitrijs2005/filedesk/internal/tree"
	"github.com/stretchr/testify/assert"
)

func names(items []models.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func sample() []models.Item {
	return []models.Item{
		{Name: "zeta.txt", Kind: models.KindFile},
		{Name: "Beta", Kind: models.KindFolder},
		{Name: "alpha.md", Kind: models.KindFile},
		{Name: "Alpha.md", Kind: models.KindFile},
		{Name: "archive", Kind: models.KindFolder},
	}
}

func TestSortForDisplay(t *testing.T) {
	items := sample()
	tree.SortForDisplay(items)
	assert.Equal(t, []string{"archive", "Beta", "Alpha.md", "alpha.md", "zeta.txt"}, names(items))
}

func TestSortForDisplay_Empty(t *testing.T) {
	assert.NotPanics(t, func() { tree.SortForDisplay(nil) })
}

func TestFilterByName(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"zeta.txt", "Beta", "alpha.md", "Alpha.md", "archive"}},
		{"ALPHA", []string{"alpha.md", "Alpha.md"}},
		{" .md ", []string{"alpha.md", "Alpha.md"}},
		{"ar", []string{"archive"}},
		{"nothing", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, names(tree.FilterByName(sample(), tt.query)))
		})
	}
}
