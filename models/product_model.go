package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex;size:100"`
}

// Product lifecycle: created inactive (registered, not yet received), a
// receipt makes it active (on stock), an issue marks it issued and frees its
// spot.
type Product struct {
	gorm.Model
	UUID         string      `json:"uuid" gorm:"uniqueIndex;size:36"`
	RFID         string      `json:"rfid"`
	Name         string      `json:"name"`
	CategoryID   uint        `json:"-"`
	Category     Category    `json:"category"`
	SpotID       *uint       `json:"-"`
	Spot         *Spot       `json:"spot"`
	ContractorID *uint       `json:"-"`
	Contractor   *Contractor `json:"-"`
	IsActive     bool        `json:"is_active" gorm:"default:false"`
	Issued       bool        `json:"issued" gorm:"default:false"`

	// detail fields, loaded per row by the list enrichment
	Description string  `json:"description,omitempty"`
	Weight      float64 `json:"weight,omitempty"`
	Height      float64 `json:"height,omitempty"`
	Width       float64 `json:"width,omitempty"`

	CreatedBy int `json:"-"`
	UpdatedBy int `json:"-"`
}

// ContractorName flattens the association for list payloads.
func (p *Product) ContractorName() string {
	if p.Contractor == nil {
		return ""
	}
	return p.Contractor.Name
}

type ProductHistory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProductUUID string    `json:"product_uuid" gorm:"index;size:36"`
	Action      string    `json:"action"`
	Details     string    `json:"details"`
	PerformedBy string    `json:"performed_by"`
	CreatedAt   time.Time `json:"created_at"`
}
