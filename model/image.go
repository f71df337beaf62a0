package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ImageAttribute carries optional upload metadata taken from the
// multipart header when a file is attached.
type ImageAttribute struct {
	OriginalName string `json:"originalName,omitempty"`
	Size         int64  `json:"size,omitempty"`
	ContentType  string `json:"contentType,omitempty"`
}

// Image is a metadata row; the binary payload lives in the asset store
// under projects/{ProjectID}/{ID}{PicExtension}.
type Image struct {
	gorm.Model
	FileName string `gorm:"type:varchar(256);not null"`
	HasPic   bool   `gorm:"not null;default:false"`
	// PicExtension is set once a file has been uploaded (".jpg", ".png", ...).
	PicExtension *string `gorm:"type:varchar(16)"`

	ProjectID uint
	Project   Project

	Attributes datatypes.JSONType[ImageAttribute]
}
