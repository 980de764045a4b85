package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is a named production lifecycle stage. SortOrder defines the lifecycle
// sequence: 0 is the initial "created" stage, 90 is "cancelled".
type Status struct {
	ID        string `gorm:"type:char(36);primarykey" json:"id"`
	Name      string `gorm:"type:varchar(240);uniqueIndex;not null" json:"name"`
	SortOrder int    `gorm:"column:sort_order;uniqueIndex;not null" json:"order"`
}

// TableName overrides the table name.
func (Status) TableName() string {
	return "statuses"
}

// BeforeCreate assigns the UUID primary key.
func (s *Status) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Before reports whether s comes earlier in the lifecycle than other.
func (s Status) Before(other Status) bool {
	return s.SortOrder < other.SortOrder
}

// After reports whether s comes later in the lifecycle than other.
func (s Status) After(other Status) bool {
	return s.SortOrder > other.SortOrder
}
