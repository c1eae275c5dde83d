package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ChildUnit is an alternate packaging unit for a product, e.g. "bag 50kg".
// ConversionValue is how many master-unit quantities one child unit holds.
type ChildUnit struct {
	Unit                   string  `json:"unit"`
	Code                   string  `json:"code"`
	Name                   string  `json:"name"`
	BasePrice              float64 `json:"base_price"`
	KiotvietID             int64   `json:"kiotviet_id"`
	ConversionValue        float64 `json:"conversion_value"`
	BasePricePerMasterUnit float64 `json:"base_price_per_masterunit"`
}

// ChildUnitList maps the jsonb child_units column of the template view.
type ChildUnitList []ChildUnit

func (l *ChildUnitList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("child_units: unsupported column type")
	}
	return json.Unmarshal(raw, l)
}

func (l ChildUnitList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// TemplateProduct is a historical ordering pattern for one product from one
// supplier: how often it was ordered, the average quantity (in master unit)
// and price, and the packaging units it was bought in. Regenerated by the
// view on every fetch.
type TemplateProduct struct {
	SupplierID       int64         `json:"supplier_id"`
	ProductID        int64         `json:"product_id"`
	ProductCode      string        `json:"product_code"`
	ProductName      string        `json:"product_name"`
	OrderCount       int           `json:"order_count"`
	AvgQuantity      float64       `json:"avg_quantity"`
	AvgPrice         float64       `json:"avg_price"`
	LastPurchaseDate *time.Time    `json:"last_purchase_date"`
	ChildUnits       ChildUnitList `json:"child_units" gorm:"type:jsonb"`
}

func (TemplateProduct) TableName() string {
	return "glt_purchase_order_templates"
}

// FirstChildUnit returns the canonical display/conversion unit. When a
// product declares several child units the first one wins; the rest are
// ignored for conversion math.
func (t TemplateProduct) FirstChildUnit() *ChildUnit {
	if len(t.ChildUnits) == 0 {
		return nil
	}
	return &t.ChildUnits[0]
}
