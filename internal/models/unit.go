package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Unit is a unit of measure used by materials and batch output.
type Unit struct {
	ID           string `gorm:"type:char(36);primarykey" json:"id"`
	Name         string `gorm:"type:varchar(240);uniqueIndex;not null" json:"name"`
	Abbreviation string `gorm:"type:varchar(20);uniqueIndex;not null" json:"abbreviation"`
}

// TableName overrides the table name.
func (Unit) TableName() string {
	return "units"
}

// BeforeCreate assigns the UUID primary key.
func (u *Unit) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
