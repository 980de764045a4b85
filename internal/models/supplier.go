package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier is a raw-material vendor.
type Supplier struct {
	ID   string `gorm:"type:char(36);primarykey" json:"id"`
	Name string `gorm:"type:varchar(240);uniqueIndex;not null" json:"name"`
}

// TableName overrides the table name.
func (Supplier) TableName() string {
	return "suppliers"
}

// BeforeCreate assigns the UUID primary key.
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
