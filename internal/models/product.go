package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a finished product. Its materials form the bill-of-materials
// template; a batch captures its own line items independently of this set.
type Product struct {
	ID               string     `gorm:"type:char(36);primarykey" json:"id"`
	Name             string     `gorm:"type:varchar(240);uniqueIndex;not null" json:"name"`
	ShortDescription string     `gorm:"type:varchar(240)" json:"short_description"`
	LongDescription  string     `gorm:"type:text" json:"long_description"`
	Materials        []Material `gorm:"many2many:product_materials" json:"materials"`
}

// TableName overrides the table name.
func (Product) TableName() string {
	return "products"
}

// BeforeCreate assigns the UUID primary key.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
