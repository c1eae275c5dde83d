package models

import "time"

// Customer is the replicated POS customer row (read-only).
type Customer struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	KiotvietID    int64      `json:"kiotviet_id" gorm:"index"`
	Code          string     `json:"code"`
	Name          string     `json:"name"`
	ContactNumber string     `json:"contact_number"`
	Address       string     `json:"address"`
	Groups        string     `json:"groups"`
	Debt          float64    `json:"debt"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func (Customer) TableName() string {
	return "glt_customers"
}
