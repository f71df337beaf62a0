package model

import "gorm.io/gorm"

// Uploader is the account that owns projects.
type Uploader struct {
	gorm.Model
	Name  string `gorm:"type:varchar(64);not null"`
	Email string `gorm:"type:varchar(128);not null"`

	Projects []Project
}
