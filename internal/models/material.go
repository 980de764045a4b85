package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Material is a raw material bought from a supplier. The name is unique per
// supplier, not globally.
type Material struct {
	ID        string `gorm:"type:char(36);primarykey" json:"id"`
	Name      string `gorm:"type:varchar(240);not null;uniqueIndex:idx_materials_supplier_name" json:"name"`
	UnitValue Money  `gorm:"type:decimal(20,2);not null;default:0" json:"unit_value"`

	SupplierID string   `gorm:"type:char(36);not null;index;uniqueIndex:idx_materials_supplier_name" json:"-"`
	Supplier   Supplier `gorm:"foreignKey:SupplierID" json:"supplier"`

	UnitID string `gorm:"type:char(36);not null;index" json:"-"`
	Unit   Unit   `gorm:"foreignKey:UnitID" json:"unit"`
}

// TableName overrides the table name.
func (Material) TableName() string {
	return "materials"
}

// BeforeCreate assigns the UUID primary key.
func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
