package catalog

import "github.com/PumbaSquek/chiedimi-tutto-subito/models"

// Workspace ties one user's catalog and draft together so catalog edits
// stay consistent with the draft's copies of the same dishes.
type Workspace struct {
	Catalog Catalog
	Draft   Draft
}

// NewWorkspace seeds a workspace with the built-in catalog and an empty draft.
func NewWorkspace() *Workspace {
	return &Workspace{
		Catalog: SeedCatalog(),
		Draft:   NewDraft(),
	}
}

// AddDish creates a dish in the category. Unknown categories are a no-op.
func (w *Workspace) AddDish(categoryID string, fields models.MenuItem) (models.MenuItem, bool) {
	return w.Catalog.AddDish(categoryID, fields)
}

// EditDish updates the catalog entry and, when the dish is also on the
// draft, the draft's copy in the same step. Matching is by id, never by
// reference, so the two views cannot drift.
func (w *Workspace) EditDish(itemID string, fields models.MenuItem) (models.MenuItem, bool) {
	updated, ok := w.Catalog.EditDish(itemID, fields)
	if !ok {
		return models.MenuItem{}, false
	}
	w.Draft.Replace(updated)
	return updated, true
}

// DeleteDish removes the dish from the category and from the draft.
func (w *Workspace) DeleteDish(categoryID, itemID string) bool {
	ok := w.Catalog.DeleteDish(categoryID, itemID)
	w.Draft.Remove(itemID)
	return ok
}

// AddToMenu copies the catalog dish onto the draft. Adding a dish that is
// already selected is a no-op.
func (w *Workspace) AddToMenu(dishID string) (models.MenuItem, bool) {
	dish, ok := w.Catalog.FindDish(dishID)
	if !ok {
		return models.MenuItem{}, false
	}
	w.Draft.Add(dish)
	return dish, true
}

// RemoveFromMenu drops the dish from the draft, leaving the catalog alone.
func (w *Workspace) RemoveFromMenu(dishID string) int {
	return w.Draft.Remove(dishID)
}

// RestoreDraft replaces the draft with a persisted snapshot.
func (w *Workspace) RestoreDraft(stored *models.StoredMenu) {
	items := make([]models.MenuItem, len(stored.Items))
	copy(items, stored.Items)
	w.Draft = Draft{Title: stored.Title, Items: items}
}

// Snapshot projects the draft into the persisted record shape.
func (w *Workspace) Snapshot(ownerUserID string) *models.StoredMenu {
	items := make([]models.MenuItem, len(w.Draft.Items))
	copy(items, w.Draft.Items)
	return &models.StoredMenu{
		Owner_user_id: ownerUserID,
		Title:         w.Draft.Title,
		Items:         items,
	}
}
