package catalog

import (
	"strings"
	"testing"

	"github.com/PumbaSquek/chiedimi-tutto-subito/models"
)

func TestSeedCatalogShape(t *testing.T) {
	c := SeedCatalog()
	if len(c.Categories) != 5 {
		t.Fatalf("seed has %d categories, want 5", len(c.Categories))
	}

	dishes := 0
	for _, cat := range c.Categories {
		for _, item := range cat.Items {
			dishes++
			if item.Category_id != cat.ID {
				t.Errorf("dish %s carries category %q, want %q", item.ID, item.Category_id, cat.ID)
			}
		}
	}
	if dishes != 14 {
		t.Errorf("seed has %d dishes, want 14", dishes)
	}

	b, ok := c.FindDish("bruschetta")
	if !ok {
		t.Fatal("bruschetta missing from seed")
	}
	if b.Name != "Bruschetta Classica" || b.Price != "8.00" {
		t.Errorf("bruschetta = %q / %q", b.Name, b.Price)
	}
}

func TestAddDishUnknownCategoryIsNoOp(t *testing.T) {
	w := NewWorkspace()
	before := len(w.Catalog.Categories)

	_, ok := w.AddDish("brunch", models.MenuItem{Name: "Uova", Price: "7.00"})
	if ok {
		t.Error("AddDish on unknown category reported success")
	}
	if len(w.Catalog.Categories) != before {
		t.Error("unknown category changed the catalog")
	}
	for _, cat := range w.Catalog.Categories {
		for _, item := range cat.Items {
			if item.Name == "Uova" {
				t.Error("dish was added despite unknown category")
			}
		}
	}
}

func TestAddDishAssignsTimeDerivedID(t *testing.T) {
	w := NewWorkspace()

	first, ok := w.AddDish("antipasti", models.MenuItem{Name: "Olive Ascolane", Price: "6.00"})
	if !ok {
		t.Fatal("AddDish failed")
	}
	if !strings.HasPrefix(first.ID, "antipasti_") {
		t.Errorf("id = %q, want antipasti_ prefix", first.ID)
	}
	if first.Category_id != "antipasti" {
		t.Errorf("category = %q", first.Category_id)
	}

	second, _ := w.AddDish("antipasti", models.MenuItem{Name: "Crostini", Price: "5.00"})
	if second.ID == first.ID {
		t.Errorf("two dishes share id %q", first.ID)
	}

	cat, _ := w.Catalog.FindCategory("antipasti")
	if got := cat.Items[len(cat.Items)-1].Name; got != "Crostini" {
		t.Errorf("last item = %q, new dishes must append", got)
	}
}

func TestEditDishSyncsDraftCopy(t *testing.T) {
	w := NewWorkspace()
	if _, ok := w.AddToMenu("bruschetta"); !ok {
		t.Fatal("AddToMenu(bruschetta) failed")
	}

	updated, ok := w.EditDish("bruschetta", models.MenuItem{Name: "Bruschetta Classica", Description: "Pane tostato", Price: "9.00"})
	if !ok {
		t.Fatal("EditDish failed")
	}
	if updated.Price != "9.00" {
		t.Errorf("catalog price = %q, want 9.00", updated.Price)
	}

	if got := w.Draft.Items[0].Price; got != "9.00" {
		t.Errorf("draft price = %q, want 9.00 (edit must sync the draft copy)", got)
	}
	if got := w.Draft.Items[0].ID; got != "bruschetta" {
		t.Errorf("draft entry id changed to %q", got)
	}
}

func TestEditDishWithoutDraftEntry(t *testing.T) {
	w := NewWorkspace()

	if _, ok := w.EditDish("carbonara", models.MenuItem{Name: "Carbonara", Price: "13.00"}); !ok {
		t.Fatal("EditDish failed")
	}
	if len(w.Draft.Items) != 0 {
		t.Error("editing a catalog dish must not add it to the draft")
	}

	if _, ok := w.EditDish("ghost", models.MenuItem{Name: "x", Price: "1.00"}); ok {
		t.Error("EditDish of unknown id reported success")
	}
}

func TestDeleteDishCascadesToDraft(t *testing.T) {
	w := NewWorkspace()
	w.AddToMenu("bruschetta")
	w.AddToMenu("carbonara")

	if !w.DeleteDish("antipasti", "bruschetta") {
		t.Fatal("DeleteDish failed")
	}

	if _, ok := w.Catalog.FindDish("bruschetta"); ok {
		t.Error("bruschetta still in catalog")
	}
	if w.Draft.Contains("bruschetta") {
		t.Error("bruschetta still on draft")
	}
	if !w.Draft.Contains("carbonara") {
		t.Error("unrelated draft entry was removed")
	}
}

func TestAddToMenuUnknownDish(t *testing.T) {
	w := NewWorkspace()
	if _, ok := w.AddToMenu("ghost"); ok {
		t.Error("AddToMenu of unknown dish reported success")
	}
	if len(w.Draft.Items) != 0 {
		t.Error("unknown dish landed on the draft")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	w := NewWorkspace()
	w.Draft.Title = "Menu di Prova"
	w.AddToMenu("bruschetta")
	w.AddToMenu("tiramisu")

	snapshot := w.Snapshot("user_1")
	if snapshot.Owner_user_id != "user_1" {
		t.Errorf("owner = %q", snapshot.Owner_user_id)
	}
	if snapshot.Title != "Menu di Prova" || len(snapshot.Items) != 2 {
		t.Fatalf("snapshot = %q with %d items", snapshot.Title, len(snapshot.Items))
	}

	fresh := NewWorkspace()
	fresh.RestoreDraft(snapshot)
	if fresh.Draft.Title != "Menu di Prova" {
		t.Errorf("restored title = %q", fresh.Draft.Title)
	}
	if len(fresh.Draft.Items) != 2 || fresh.Draft.Items[0].ID != "bruschetta" {
		t.Errorf("restored items = %v", fresh.Draft.Items)
	}

	// The snapshot is a copy: mutating the draft afterwards must not
	// change it.
	w.RemoveFromMenu("bruschetta")
	if len(snapshot.Items) != 2 {
		t.Error("snapshot aliased the live draft slice")
	}
}
