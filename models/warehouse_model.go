package models

import (
	"gorm.io/gorm"
)

type Warehouse struct {
	gorm.Model
	UUID  string `json:"uuid" gorm:"uniqueIndex;size:36"`
	Name  string `json:"name"`
	Halls []Hall `json:"halls" gorm:"foreignKey:WarehouseID"`
}

type Hall struct {
	gorm.Model
	UUID        string  `json:"uuid" gorm:"uniqueIndex;size:36"`
	Name        string  `json:"name"`
	WarehouseID uint    `json:"-"`
	Shelves     []Shelf `json:"shelves" gorm:"foreignKey:HallID"`
}

type Shelf struct {
	gorm.Model
	UUID   string `json:"uuid" gorm:"uniqueIndex;size:36"`
	Name   string `json:"name"`
	HallID uint   `json:"-"`
	Spots  []Spot `json:"spots" gorm:"foreignKey:ShelfID"`
}

// Spot is a single storage slot. Free is a pointer so a row missing the flag
// can be told apart from an explicitly occupied one.
type Spot struct {
	gorm.Model
	UUID    string `json:"uuid" gorm:"uniqueIndex;size:36"`
	Name    string `json:"name"`
	ShelfID uint   `json:"-"`
	Free    *bool  `json:"_free" gorm:"default:true"`
}

func (s *Spot) IsFree() bool {
	return s.Free != nil && *s.Free
}
