package catalog

import (
	"fmt"
	"time"

	"github.com/PumbaSquek/chiedimi-tutto-subito/models"
)

// Catalog is one session's editable view of the dish catalog. Updates are
// copy-on-write: category item slices are rebuilt, never mutated in place,
// so records handed out earlier stay stable.
type Catalog struct {
	Categories []models.Category
}

// FindCategory returns the category with the given id.
func (c *Catalog) FindCategory(categoryID string) (models.Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == categoryID {
			return cat, true
		}
	}
	return models.Category{}, false
}

// FindDish returns the dish with the given id, searching every category.
func (c *Catalog) FindDish(itemID string) (models.MenuItem, bool) {
	for _, cat := range c.Categories {
		for _, item := range cat.Items {
			if item.ID == itemID {
				return item, true
			}
		}
	}
	return models.MenuItem{}, false
}

// AddDish appends a new dish to the category, assigning a time-derived id.
// Unknown category ids are a silent no-op, reported through ok=false.
func (c *Catalog) AddDish(categoryID string, fields models.MenuItem) (models.MenuItem, bool) {
	idx := c.categoryIndex(categoryID)
	if idx < 0 {
		return models.MenuItem{}, false
	}

	dish := fields
	dish.Category_id = categoryID
	dish.ID = c.nextDishID(categoryID)

	cat := c.Categories[idx]
	items := make([]models.MenuItem, 0, len(cat.Items)+1)
	items = append(items, cat.Items...)
	items = append(items, dish)
	cat.Items = items
	c.Categories[idx] = cat

	return dish, true
}

// EditDish replaces the dish with the given id in place. The dish keeps its
// id and category; name, description and price come from fields.
func (c *Catalog) EditDish(itemID string, fields models.MenuItem) (models.MenuItem, bool) {
	for ci, cat := range c.Categories {
		for ii, item := range cat.Items {
			if item.ID != itemID {
				continue
			}
			updated := item
			updated.Name = fields.Name
			updated.Description = fields.Description
			updated.Price = fields.Price

			items := make([]models.MenuItem, len(cat.Items))
			copy(items, cat.Items)
			items[ii] = updated
			cat.Items = items
			c.Categories[ci] = cat
			return updated, true
		}
	}
	return models.MenuItem{}, false
}

// DeleteDish removes the dish from the category. Unknown ids are a no-op.
func (c *Catalog) DeleteDish(categoryID, itemID string) bool {
	idx := c.categoryIndex(categoryID)
	if idx < 0 {
		return false
	}

	cat := c.Categories[idx]
	items := make([]models.MenuItem, 0, len(cat.Items))
	removed := false
	for _, item := range cat.Items {
		if item.ID == itemID {
			removed = true
			continue
		}
		items = append(items, item)
	}
	if !removed {
		return false
	}
	cat.Items = items
	c.Categories[idx] = cat
	return true
}

func (c *Catalog) categoryIndex(categoryID string) int {
	for i, cat := range c.Categories {
		if cat.ID == categoryID {
			return i
		}
	}
	return -1
}

// nextDishID derives an id from the wall clock, with a suffix in the
// unlikely case two dishes land on the same millisecond.
func (c *Catalog) nextDishID(categoryID string) string {
	id := fmt.Sprintf("%s_%d", categoryID, time.Now().UnixMilli())
	for n := 1; ; n++ {
		if _, taken := c.FindDish(id); !taken {
			return id
		}
		id = fmt.Sprintf("%s_%d_%d", categoryID, time.Now().UnixMilli(), n)
	}
}
