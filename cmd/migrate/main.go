// Versioned schema migrations for the image host database.
package main

import (
	"fmt"
	"os"

	"imagehost/config"
	"imagehost/logutils"
	"imagehost/orm"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func main() {
	cfg := config.GetConfig()
	db, err := orm.Open(cfg)
	if err != nil {
		fmt.Println("err init:", err)
		os.Exit(1)
	}

	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			// create uploaders, projects, images, tags and the join table
			ID: "20250114120000",
			Migrate: func(tx *gorm.DB) error {
				// it's a good practice to copy the struct inside the function,
				// so side effects are prevented if the original struct changes during the time
				type Uploader struct {
					gorm.Model
					Name  string `gorm:"type:varchar(64);not null"`
					Email string `gorm:"type:varchar(128);not null"`
				}
				type Project struct {
					gorm.Model
					Name        string `gorm:"type:varchar(128);not null"`
					Description string `gorm:"type:text"`
					ImageTotal  int    `gorm:"not null;default:0"`
					UploaderID  uint
				}
				type Image struct {
					gorm.Model
					FileName     string `gorm:"type:varchar(256);not null"`
					HasPic       bool   `gorm:"not null;default:false"`
					PicExtension *string `gorm:"type:varchar(16)"`
					ProjectID    uint
				}
				type Tag struct {
					gorm.Model
					Name  string `gorm:"type:varchar(64);not null"`
					Color string `gorm:"type:varchar(32);not null"`
				}
				type ProjectTag struct {
					ProjectID uint `gorm:"primaryKey;autoIncrement:false"`
					TagID     uint `gorm:"primaryKey;autoIncrement:false"`
				}
				return tx.AutoMigrate(&Uploader{}, &Project{}, &Image{}, &Tag{}, &ProjectTag{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("project_tags", "images", "tags", "projects", "uploaders")
			},
		},
		{
			// add the attributes JSON column on images
			ID: "20250114120001",
			Migrate: func(tx *gorm.DB) error {
				type Image struct {
					Attributes []byte `gorm:"type:json"`
				}
				return tx.Migrator().AddColumn(&Image{}, "Attributes")
			},
			Rollback: func(tx *gorm.DB) error {
				type Image struct {
					Attributes []byte `gorm:"type:json"`
				}
				return tx.Migrator().DropColumn(&Image{}, "Attributes")
			},
		},
	})

	if err := m.Migrate(); err != nil {
		logutils.Log.Fatalf("migration failed: %v", err)
	}
	logutils.Log.Info("migration did run successfully")
}
