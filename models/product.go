package models

import "time"

// Product is the replicated POS product catalog row (read-only; the sync
// pipeline owns writes).
type Product struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	KiotvietID   int64      `json:"kiotviet_id" gorm:"index"`
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	FullName     string     `json:"full_name"`
	CategoryName string     `json:"category_name"`
	Unit         string     `json:"unit"`
	BasePrice    float64    `json:"base_price"`
	IsActive     bool       `json:"is_active"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "glt_products"
}
