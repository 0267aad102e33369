package tree

import (
	"sort"
	"strings"

	"github.com/dmitrijs2005/filedesk/internal/models"
)

// SortForDisplay orders items in place: folders before files, then by name
// ignoring case, with byte order as the tie-break.
func SortForDisplay(items []models.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.IsFolder() != b.IsFolder() {
			return a.IsFolder()
		}
		la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if la != lb {
			return la < lb
		}
		return a.Name < b.Name
	})
}

// FilterByName returns the items whose name contains query, ignoring case.
// An empty query matches everything.
func FilterByName(items []models.Item, query string) []models.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Item, 0, len(items))
	for _, it := range items {
		if q == "" || strings.Contains(strings.ToLower(it.Name), q) {
			out = append(out, it)
		}
	}
	return out
}
