package service

import (
	"math"
	"sync"

	"github.com/gaolamthuy/admin-sub000/models"
)

// Draft is one user's in-progress purchase order: the chosen supplier plus
// the editable set of line items, keyed by product id. A draft belongs to
// exactly one supplier; choosing another supplier clears it.
//
// Drafts are not safe for concurrent use on their own; DraftStore serializes
// access per process (single-writer semantics, last write wins).
type Draft struct {
	Supplier *models.Supplier

	items map[int64]*models.SelectedProduct
	order []int64
	// seeded blocks auto-select from firing again once the draft has been
	// populated, whether by auto-select itself or by any manual edit.
	seeded bool
}

func NewDraft() *Draft {
	return &Draft{items: make(map[int64]*models.SelectedProduct)}
}

// defaultQuantity is the pre-filled quantity for a template line: the
// historical average, rounded, never below 1.
func defaultQuantity(t models.TemplateProduct) float64 {
	return math.Max(1, math.Round(t.AvgQuantity))
}

func newSelected(t models.TemplateProduct) *models.SelectedProduct {
	return &models.SelectedProduct{
		TemplateProduct: t,
		Quantity:        defaultQuantity(t),
		Price:           t.AvgPrice,
	}
}

// SetSupplier switches the draft to a supplier and clears all line items and
// the auto-select guard. The clear happens here, synchronously, so a stale
// template fetch for the previous supplier can never repopulate the draft.
func (d *Draft) SetSupplier(s *models.Supplier) {
	d.Supplier = s
	d.items = make(map[int64]*models.SelectedProduct)
	d.order = nil
	d.seeded = false
}

// AutoSelectAll replaces the selection with one line per template, using the
// default quantity/price rules. supplierID is the id captured when the fetch
// was issued; if it no longer matches the draft's supplier the result is
// stale and is discarded. Fires at most once per supplier selection and
// never after a manual edit. Returns whether the draft was seeded.
func (d *Draft) AutoSelectAll(supplierID int64, templates []models.TemplateProduct) bool {
	if d.seeded {
		return false
	}
	if d.Supplier == nil || d.Supplier.KiotvietID != supplierID {
		return false
	}
	d.items = make(map[int64]*models.SelectedProduct, len(templates))
	d.order = d.order[:0]
	for _, t := range templates {
		if _, ok := d.items[t.ProductID]; ok {
			continue
		}
		d.items[t.ProductID] = newSelected(t)
		d.order = append(d.order, t.ProductID)
	}
	d.seeded = true
	return true
}

// AddProduct inserts a line for a template not currently selected. No-op if
// the product is already in the selection.
func (d *Draft) AddProduct(t models.TemplateProduct) {
	d.seeded = true
	if _, ok := d.items[t.ProductID]; ok {
		return
	}
	d.items[t.ProductID] = newSelected(t)
	d.order = append(d.order, t.ProductID)
}

// RemoveProduct deletes the line for a product id; absent ids are ignored.
func (d *Draft) RemoveProduct(productID int64) {
	d.seeded = true
	if _, ok := d.items[productID]; !ok {
		return
	}
	delete(d.items, productID)
	for i, id := range d.order {
		if id == productID {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// RemoveAll clears every line but keeps the supplier.
func (d *Draft) RemoveAll() {
	d.seeded = true
	d.items = make(map[int64]*models.SelectedProduct)
	d.order = nil
}

// UpdateQuantity sets a line's quantity. Non-positive values are rejected and
// the stored quantity is left untouched.
func (d *Draft) UpdateQuantity(productID int64, quantity float64) error {
	d.seeded = true
	item, ok := d.items[productID]
	if !ok {
		return ErrNotSelected
	}
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}
	item.Quantity = quantity
	return nil
}

// UpdatePrice sets a line's unit price.
func (d *Draft) UpdatePrice(productID int64, price float64) error {
	d.seeded = true
	item, ok := d.items[productID]
	if !ok {
		return ErrNotSelected
	}
	item.Price = price
	return nil
}

// Items returns the selection in insertion order.
func (d *Draft) Items() []models.SelectedProduct {
	out := make([]models.SelectedProduct, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, *d.items[id])
	}
	return out
}

func (d *Draft) Len() int { return len(d.items) }

// DraftStore holds one draft per user. All mutations go through the store's
// mutex; the UI is the only writer so contention is negligible.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[uint]*Draft
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[uint]*Draft)}
}

func (s *DraftStore) draft(userID uint) *Draft {
	d, ok := s.drafts[userID]
	if !ok {
		d = NewDraft()
		s.drafts[userID] = d
	}
	return d
}

// With runs fn against the user's draft while holding the store lock.
func (s *DraftStore) With(userID uint, fn func(*Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.draft(userID))
}

// Reset drops the user's draft entirely (used after a successful submit).
func (s *DraftStore) Reset(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
}
