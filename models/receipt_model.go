package models

import (
	"gorm.io/gorm"
)

// Receipt records an intake of products against a contractor.
type Receipt struct {
	gorm.Model
	UUID         string        `json:"uuid" gorm:"uniqueIndex;size:36"`
	Number       string        `json:"number" gorm:"uniqueIndex;size:40"`
	ContractorID uint          `json:"-"`
	Contractor   Contractor    `json:"contractor"`
	Items        []ReceiptItem `json:"items" gorm:"foreignKey:ReceiptID"`
	CreatedBy    int           `json:"-"`
}

type ReceiptItem struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	ReceiptID   uint   `json:"-"`
	ProductUUID string `json:"product_uuid" gorm:"size:36"`
	ProductName string `json:"product_name"`
}

// Issue records a release of products to a contractor.
type Issue struct {
	gorm.Model
	UUID         string      `json:"uuid" gorm:"uniqueIndex;size:36"`
	Number       string      `json:"number" gorm:"uniqueIndex;size:40"`
	ContractorID uint        `json:"-"`
	Contractor   Contractor  `json:"contractor"`
	Items        []IssueItem `json:"items" gorm:"foreignKey:IssueID"`
	CreatedBy    int         `json:"-"`
}

type IssueItem struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	IssueID     uint   `json:"-"`
	ProductUUID string `json:"product_uuid" gorm:"size:36"`
	ProductName string `json:"product_name"`
}
