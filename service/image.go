package service

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"imagehost/logutils"
	"imagehost/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ImageService wraps CRUD over image metadata rows and drives the asset
// store for the files behind them.
type ImageService struct {
	db     *gorm.DB
	assets *AssetStore
}

func NewImageService(db *gorm.DB, assets *AssetStore) *ImageService {
	return &ImageService{db: db, assets: assets}
}

func (s *ImageService) List(ctx context.Context) ([]model.ImageDto, error) {
	var images []model.Image
	err := s.db.WithContext(ctx).Preload("Project").Find(&images).Error
	if err != nil {
		return nil, err
	}
	dtos := make([]model.ImageDto, 0, len(images))
	for i := range images {
		dtos = append(dtos, model.NewImageDto(&images[i]))
	}
	return dtos, nil
}

func (s *ImageService) Find(ctx context.Context, id uint) (model.ImageDto, error) {
	var image model.Image
	err := s.db.WithContext(ctx).Preload("Project").First(&image, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ImageDto{}, notFoundf("image %d not found", id)
	}
	if err != nil {
		return model.ImageDto{}, err
	}
	return model.NewImageDto(&image), nil
}

// Add inserts a new metadata row after checking that the referenced project
// exists, bumps the project's image counter, and returns the assigned id.
func (s *ImageService) Add(ctx context.Context, dto model.ImageDto) (uint, error) {
	var project model.Project
	err := s.db.WithContext(ctx).First(&project, dto.ProjectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, notFoundf("project %d not found", dto.ProjectID)
	}
	if err != nil {
		return 0, err
	}

	image := model.Image{
		FileName:  dto.FileName,
		ProjectID: dto.ProjectID,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&image).Error; err != nil {
			return err
		}
		return tx.Model(&model.Project{}).Where("id = ?", dto.ProjectID).
			Update("image_total", gorm.Expr("image_total + 1")).Error
	})
	if err != nil {
		return 0, err
	}
	return image.ID, nil
}

// Update overwrites the image's file name only. The picture flag, extension
// and project reference never change through this path.
func (s *ImageService) Update(ctx context.Context, dto model.ImageDto) error {
	var image model.Image
	err := s.db.WithContext(ctx).First(&image, dto.ImageID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("image %d not found", dto.ImageID)
	}
	if err != nil {
		return err
	}

	image.FileName = dto.FileName
	return s.db.WithContext(ctx).Save(&image).Error
}

// Delete removes the metadata row and its backing file. A failed file
// deletion aborts the whole operation and keeps the row.
func (s *ImageService) Delete(ctx context.Context, id uint) error {
	var image model.Image
	err := s.db.WithContext(ctx).First(&image, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("image %d not found", id)
	}
	if err != nil {
		return err
	}

	if image.HasPic && image.PicExtension != nil {
		if err := s.assets.Remove(ctx, image.ProjectID, image.ID, *image.PicExtension); err != nil {
			return &StorageError{Op: "can't delete the file", Err: err}
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&image).Error; err != nil {
			return err
		}
		return tx.Model(&model.Project{}).Where("id = ? AND image_total > 0", image.ProjectID).
			Update("image_total", gorm.Expr("image_total - 1")).Error
	})
}

func (s *ImageService) ListImagesForProject(ctx context.Context, projectID uint) ([]model.ImageDto, error) {
	var images []model.Image
	err := s.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&images).Error
	if err != nil {
		return nil, err
	}
	dtos := make([]model.ImageDto, 0, len(images))
	for i := range images {
		dtos = append(dtos, model.NewImageDto(&images[i]))
	}
	return dtos, nil
}

// UploadImageFile validates and stores the uploaded file for an image row,
// replacing any previous file, then marks the row as having a picture.
func (s *ImageService) UploadImageFile(ctx context.Context, id uint, upload *multipart.FileHeader) error {
	var image model.Image
	err := s.db.WithContext(ctx).First(&image, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("image %d not found", id)
	}
	if err != nil {
		return err
	}

	if upload == nil || upload.Size == 0 {
		return validationf("no file content")
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !ValidExtension(ext) {
		return validationf("%s is not a valid file extension", ext)
	}

	// The extension may change between uploads; drop the old file first.
	if image.HasPic && image.PicExtension != nil {
		if err := s.assets.Remove(ctx, image.ProjectID, image.ID, *image.PicExtension); err != nil {
			logutils.Log.Warn("replace upload: ", err)
		}
	}

	src, err := upload.Open()
	if err != nil {
		return &StorageError{Op: "can't read the uploaded file", Err: err}
	}
	defer src.Close()

	if err := s.assets.Save(ctx, image.ProjectID, image.ID, ext, src); err != nil {
		return &StorageError{Op: "can't save the uploaded file", Err: err}
	}

	image.HasPic = true
	image.PicExtension = &ext
	image.Attributes = datatypes.NewJSONType(model.ImageAttribute{
		OriginalName: upload.Filename,
		Size:         upload.Size,
		ContentType:  upload.Header.Get("Content-Type"),
	})
	return s.db.WithContext(ctx).Save(&image).Error
}
