package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"imagehost/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.SetupJoinTable(&model.Project{}, "Tags", &model.ProjectTag{}); err != nil {
		t.Fatalf("setup join table: %v", err)
	}
	if err := db.SetupJoinTable(&model.Tag{}, "Projects", &model.ProjectTag{}); err != nil {
		t.Fatalf("setup join table: %v", err)
	}
	err = db.AutoMigrate(&model.Uploader{}, &model.Project{}, &model.Image{}, &model.Tag{})
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestStore(t *testing.T) *AssetStore {
	t.Helper()
	return NewAssetStore(t.TempDir())
}

// seedUploader inserts an uploader row and returns its id.
func seedUploader(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	uploader := model.Uploader{Name: "ada", Email: "ada@example.com"}
	if err := db.Create(&uploader).Error; err != nil {
		t.Fatalf("seed uploader: %v", err)
	}
	return uploader.ID
}

// seedProject inserts a project row under the uploader and returns its id.
func seedProject(t *testing.T, db *gorm.DB, uploaderID uint) uint {
	t.Helper()
	project := model.Project{Name: "holiday", Description: "snaps", UploaderID: uploaderID}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return project.ID
}

// seedImage inserts an image metadata row and returns its id.
func seedImage(t *testing.T, db *gorm.DB, projectID uint) uint {
	t.Helper()
	image := model.Image{FileName: "beach", ProjectID: projectID}
	if err := db.Create(&image).Error; err != nil {
		t.Fatalf("seed image: %v", err)
	}
	return image.ID
}

// seedTag inserts a tag row and returns its id.
func seedTag(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	tag := model.Tag{Name: name, Color: "#ff0000"}
	if err := db.Create(&tag).Error; err != nil {
		t.Fatalf("seed tag: %v", err)
	}
	return tag.ID
}

// uploadHeader builds a real multipart.FileHeader carrying content.
func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("ImageFile", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["ImageFile"][0]
}

func testCtx() context.Context { return context.Background() }
