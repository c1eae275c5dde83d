package models

import "time"

// Supplier is one row of the purchase-history view: a supplier that has at
// least one prior purchase order, with aggregate stats used to rank the
// supplier picker. The view is maintained by the sync pipeline; the backend
// only reads it.
type Supplier struct {
	KiotvietID       int64      `json:"kiotviet_id" gorm:"column:kiotviet_id;primaryKey"`
	Name             string     `json:"name"`
	Code             string     `json:"code"`
	ContactNumber    string     `json:"contact_number"`
	Address          string     `json:"address"`
	BranchID         int        `json:"branch_id"`
	TotalInvoice     int        `json:"total_invoice"`
	LastPurchaseDate *time.Time `json:"last_purchase_date"`
}

func (Supplier) TableName() string {
	return "glt_supplier_purchase_history"
}
