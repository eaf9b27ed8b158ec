package catalog

import "github.com/PumbaSquek/chiedimi-tutto-subito/models"

// DefaultTitle is the placeholder a fresh draft starts with.
const DefaultTitle = "Il Nostro Menu"

// Draft is the user's in-progress menu selection: a title and the ordered
// list of chosen dishes. Entries are full records copied from the catalog,
// matched by id when the catalog changes underneath them.
type Draft struct {
	Title string
	Items []models.MenuItem
}

// NewDraft returns an empty draft with the placeholder title.
func NewDraft() Draft {
	return Draft{Title: DefaultTitle}
}

// Contains reports whether the draft already holds the dish id.
func (d *Draft) Contains(dishID string) bool {
	for _, item := range d.Items {
		if item.ID == dishID {
			return true
		}
	}
	return false
}

// Add appends the dish unless an entry with the same id is already present.
// A second Add of the same dish is a no-op.
func (d *Draft) Add(item models.MenuItem) bool {
	if d.Contains(item.ID) {
		return false
	}
	items := make([]models.MenuItem, 0, len(d.Items)+1)
	items = append(items, d.Items...)
	items = append(items, item)
	d.Items = items
	return true
}

// Remove drops every entry matching the dish id (at most one in practice)
// and returns how many were removed. Other entries keep their order.
func (d *Draft) Remove(dishID string) int {
	items := make([]models.MenuItem, 0, len(d.Items))
	removed := 0
	for _, item := range d.Items {
		if item.ID == dishID {
			removed++
			continue
		}
		items = append(items, item)
	}
	d.Items = items
	return removed
}

// Replace updates the draft's copy of the dish by id, keeping its position.
func (d *Draft) Replace(updated models.MenuItem) bool {
	for i, item := range d.Items {
		if item.ID != updated.ID {
			continue
		}
		items := make([]models.MenuItem, len(d.Items))
		copy(items, d.Items)
		items[i] = updated
		d.Items = items
		return true
	}
	return false
}

// GroupByCategory maps category id to the draft entries of that category,
// preserving insertion order within each group. Rendering-only view; the
// flattened groups always reproduce the draft exactly.
func (d *Draft) GroupByCategory() map[string][]models.MenuItem {
	grouped := make(map[string][]models.MenuItem)
	for _, item := range d.Items {
		grouped[item.Category_id] = append(grouped[item.Category_id], item)
	}
	return grouped
}

// CategoryOrder lists category ids in order of first appearance in the
// draft, so renderers can walk GroupByCategory deterministically.
func (d *Draft) CategoryOrder() []string {
	seen := make(map[string]bool)
	order := make([]string, 0, len(d.Items))
	for _, item := range d.Items {
		if seen[item.Category_id] {
			continue
		}
		seen[item.Category_id] = true
		order = append(order, item.Category_id)
	}
	return order
}
