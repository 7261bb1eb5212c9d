package models

import (
	"gorm.io/gorm"
)

type Contractor struct {
	gorm.Model
	UUID  string `json:"uuid" gorm:"uniqueIndex;size:36"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	// username of the staff member who manages the relationship
	AccountManagerUsername string `json:"accountMaganerUsername"`

	CreatedBy int `json:"-"`
	UpdatedBy int `json:"-"`
}
