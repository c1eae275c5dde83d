package models

// SelectedProduct is a template the user has put on the in-progress purchase
// order. Quantity is authoritative in the first child unit when the product
// declares one, otherwise in the master unit.
type SelectedProduct struct {
	TemplateProduct
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// MasterQuantity returns the quantity normalized to the master unit, which is
// what the workflow endpoint expects.
func (s SelectedProduct) MasterQuantity() float64 {
	if cu := s.FirstChildUnit(); cu != nil {
		return s.Quantity * cu.ConversionValue
	}
	return s.Quantity
}

// SupplierRef is the supplier identity block of the submission payload.
type SupplierRef struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
}

type PurchaseOrderDetail struct {
	ProductID   int64   `json:"productId"`
	ProductCode string  `json:"productCode"`
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
}

// SubmissionPayload is the body POSTed to the workflow webhook. Built once at
// submit time, never stored.
type SubmissionPayload struct {
	BranchID             int                   `json:"branchId"`
	Supplier             SupplierRef           `json:"supplier"`
	PurchaseOrderDetails []PurchaseOrderDetail `json:"purchaseOrderDetails"`
	Description          string                `json:"description"`
	IsDraft              bool                  `json:"isDraft"`
}
