package models

import (
	"time"
)

// Report is a help / forgot-password ticket submitted from the console.
type Report struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	Type      string    `json:"type" gorm:"size:20;default:NORMAL"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// InventoryEntry is one reconciliation row saved for a hall inventory run.
type InventoryEntry struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	HallUUID    string    `json:"hall_uuid" gorm:"index;size:36"`
	ShelfName   string    `json:"shelf_name"`
	ProductUUID string    `json:"product_uuid" gorm:"size:36"`
	IsCorrect   bool      `json:"isCorrect"`
	Note        string    `json:"note"`
	GeneralNote string    `json:"general_note"`
	CreatedBy   int       `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
