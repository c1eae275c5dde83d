package service

import (
	"errors"
	"testing"

	"github.com/gaolamthuy/admin-sub000/models"
)

func supplier(id int64) *models.Supplier {
	return &models.Supplier{KiotvietID: id, Name: "supplier", Code: "S", BranchID: 1}
}

func TestDraft_AutoSelectAll_Defaults(t *testing.T) {
	bag50 := models.ChildUnit{Unit: "bag50", ConversionValue: 50}
	templates := []models.TemplateProduct{
		tmplWithUnit(1, "P1", 3),
		tmplWithUnit(2, "P2", 2, bag50),
	}

	d := NewDraft()
	d.SetSupplier(supplier(10))
	if !d.AutoSelectAll(10, templates) {
		t.Fatal("auto-select should seed a fresh draft")
	}

	items := d.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Quantity != 3 || items[1].Quantity != 2 {
		t.Errorf("quantities = %v, %v; want 3, 2", items[0].Quantity, items[1].Quantity)
	}
	if items[0].Price != 1000 {
		t.Errorf("price = %v, want avg_price 1000", items[0].Price)
	}
}

func TestDraft_DefaultQuantityFloor(t *testing.T) {
	// avg below 0.5 rounds to 0; the default must still be 1
	tmpl := tmplWithUnit(1, "P1", 0.2)
	d := NewDraft()
	d.SetSupplier(supplier(10))
	d.AutoSelectAll(10, []models.TemplateProduct{tmpl})
	if got := d.Items()[0].Quantity; got != 1 {
		t.Errorf("default quantity = %v, want 1", got)
	}
}

func TestDraft_AutoSelect_FiresAtMostOnce(t *testing.T) {
	templates := []models.TemplateProduct{tmplWithUnit(1, "P1", 3)}

	d := NewDraft()
	d.SetSupplier(supplier(10))
	d.AutoSelectAll(10, templates)

	if err := d.UpdateQuantity(1, 7); err != nil {
		t.Fatalf("manual edit failed: %v", err)
	}

	// same templates arrive again (e.g. the effect re-runs)
	if d.AutoSelectAll(10, templates) {
		t.Fatal("auto-select must not re-fire after a manual edit")
	}
	if got := d.Items()[0].Quantity; got != 7 {
		t.Errorf("manual edit overwritten: quantity = %v, want 7", got)
	}
}

func TestDraft_AutoSelect_BlockedByManualEditBeforeLoad(t *testing.T) {
	d := NewDraft()
	d.SetSupplier(supplier(10))
	d.AddProduct(tmplWithUnit(5, "P5", 4))

	if d.AutoSelectAll(10, []models.TemplateProduct{tmplWithUnit(1, "P1", 3)}) {
		t.Fatal("auto-select must not replace a manually started selection")
	}
	if d.Len() != 1 {
		t.Errorf("selection size = %d, want 1", d.Len())
	}
}

func TestDraft_AutoSelect_StaleSupplierDiscarded(t *testing.T) {
	d := NewDraft()
	d.SetSupplier(supplier(10))
	d.SetSupplier(supplier(20))

	// result for the old supplier arrives late
	if d.AutoSelectAll(10, []models.TemplateProduct{tmplWithUnit(1, "P1", 3)}) {
		t.Fatal("stale template result must not seed the draft")
	}
	if d.Len() != 0 {
		t.Errorf("selection size = %d, want 0", d.Len())
	}

	// the current supplier's result still seeds
	if !d.AutoSelectAll(20, []models.TemplateProduct{tmplWithUnit(2, "P2", 2)}) {
		t.Fatal("current supplier's templates should seed the draft")
	}
}

func TestDraft_SupplierSwitchClearsSelection(t *testing.T) {
	d := NewDraft()
	d.SetSupplier(supplier(10))
	d.AutoSelectAll(10, []models.TemplateProduct{tmplWithUnit(1, "P1", 3), tmplWithUnit(2, "P2", 2)})
	if d.Len() != 2 {
		t.Fatalf("setup: expected 2 items, got %d", d.Len())
	}

	d.SetSupplier(supplier(20))
	if d.Len() != 0 {
		t.Errorf("selection not cleared on supplier switch: %d items", d.Len())
	}
	// the guard resets too, so the new supplier auto-selects again
	if !d.AutoSelectAll(20, []models.TemplateProduct{tmplWithUnit(3, "P3", 1)}) {
		t.Error("auto-select should fire for the newly chosen supplier")
	}
}

func TestDraft_UpdateQuantity_RejectsNonPositive(t *testing.T) {
	d := NewDraft()
	d.SetSupplier(supplier(10))
	d.AddProduct(tmplWithUnit(1, "P1", 3))

	for _, v := range []float64{0, -1, -0.5} {
		if err := d.UpdateQuantity(1, v); !errors.Is(err, ErrQuantityNotPositive) {
			t.Errorf("UpdateQuantity(1, %v) err = %v, want ErrQuantityNotPositive", v, err)
		}
	}
	if got := d.Items()[0].Quantity; got != 3 {
		t.Errorf("quantity changed by rejected update: %v, want 3", got)
	}

	if err := d.UpdateQuantity(99, 5); !errors.Is(err, ErrNotSelected) {
		t.Errorf("unknown product err = %v, want ErrNotSelected", err)
	}
}

func TestDraft_AddRemove(t *testing.T) {
	d := NewDraft()
	d.SetSupplier(supplier(10))

	d.AddProduct(tmplWithUnit(1, "P1", 3))
	d.AddProduct(tmplWithUnit(1, "P1", 3)) // duplicate add is a no-op
	d.AddProduct(tmplWithUnit(2, "P2", 2))
	if d.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", d.Len())
	}

	d.RemoveProduct(1)
	d.RemoveProduct(42) // absent id is not an error
	if d.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", d.Len())
	}
	if d.Items()[0].ProductID != 2 {
		t.Errorf("wrong item removed")
	}

	d.RemoveAll()
	if d.Len() != 0 {
		t.Errorf("RemoveAll left %d items", d.Len())
	}
}

func TestDraft_ItemsKeepInsertionOrder(t *testing.T) {
	d := NewDraft()
	d.SetSupplier(supplier(10))
	for _, id := range []int64{5, 3, 9, 1} {
		d.AddProduct(tmplWithUnit(id, "P", 1))
	}
	items := d.Items()
	want := []int64{5, 3, 9, 1}
	for i, id := range want {
		if items[i].ProductID != id {
			t.Fatalf("order[%d] = %d, want %d", i, items[i].ProductID, id)
		}
	}
}

func TestDraftStore_PerUserIsolation(t *testing.T) {
	store := NewDraftStore()

	_ = store.With(1, func(d *Draft) error {
		d.SetSupplier(supplier(10))
		d.AddProduct(tmplWithUnit(1, "P1", 3))
		return nil
	})

	_ = store.With(2, func(d *Draft) error {
		if d.Len() != 0 {
			t.Errorf("user 2 sees user 1's draft")
		}
		return nil
	})

	store.Reset(1)
	_ = store.With(1, func(d *Draft) error {
		if d.Len() != 0 || d.Supplier != nil {
			t.Errorf("reset did not drop the draft")
		}
		return nil
	})
}
