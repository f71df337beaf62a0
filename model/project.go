package model

import "gorm.io/gorm"

// Project is a named collection of images and tags owned by one uploader.
type Project struct {
	gorm.Model
	Name        string `gorm:"type:varchar(128);not null"`
	Description string `gorm:"type:text"`
	// ImageTotal caches the number of image rows under the project.
	ImageTotal int `gorm:"not null;default:0"`

	UploaderID uint
	Uploader   Uploader

	Images []Image
	Tags   []Tag `gorm:"many2many:project_tags;"`
}

// ProjectTag is the join row behind the Project-Tag many-to-many relation.
// Declared explicitly so linking can be an upsert/delete keyed on the pair.
type ProjectTag struct {
	ProjectID uint `gorm:"primaryKey;autoIncrement:false"`
	TagID     uint `gorm:"primaryKey;autoIncrement:false"`
}
