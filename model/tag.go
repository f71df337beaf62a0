package model

import "gorm.io/gorm"

// Tag is a label many projects can share.
type Tag struct {
	gorm.Model
	Name  string `gorm:"type:varchar(64);not null"`
	Color string `gorm:"type:varchar(32);not null"`

	Projects []Project `gorm:"many2many:project_tags;"`
}
