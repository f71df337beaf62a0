package service

import (
	"context"
	"errors"

	"imagehost/model"

	"gorm.io/gorm"
)

// UploaderService wraps CRUD over uploader accounts.
type UploaderService struct {
	db *gorm.DB
}

func NewUploaderService(db *gorm.DB) *UploaderService {
	return &UploaderService{db: db}
}

func (s *UploaderService) List(ctx context.Context) ([]model.UploaderDto, error) {
	var uploaders []model.Uploader
	if err := s.db.WithContext(ctx).Find(&uploaders).Error; err != nil {
		return nil, err
	}
	dtos := make([]model.UploaderDto, 0, len(uploaders))
	for i := range uploaders {
		dtos = append(dtos, model.NewUploaderDto(&uploaders[i]))
	}
	return dtos, nil
}

func (s *UploaderService) Find(ctx context.Context, id uint) (model.UploaderDto, error) {
	var uploader model.Uploader
	err := s.db.WithContext(ctx).First(&uploader, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.UploaderDto{}, notFoundf("uploader %d not found", id)
	}
	if err != nil {
		return model.UploaderDto{}, err
	}
	return model.NewUploaderDto(&uploader), nil
}

// Add inserts a new uploader and returns the assigned id.
func (s *UploaderService) Add(ctx context.Context, dto model.UploaderDto) (uint, error) {
	uploader := model.Uploader{
		Name:  dto.Name,
		Email: dto.Email,
	}
	if err := s.db.WithContext(ctx).Create(&uploader).Error; err != nil {
		return 0, err
	}
	return uploader.ID, nil
}

// Update overwrites the uploader's name and email. Relationship fields
// are never touched.
func (s *UploaderService) Update(ctx context.Context, dto model.UploaderDto) error {
	var uploader model.Uploader
	err := s.db.WithContext(ctx).First(&uploader, dto.UploaderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("uploader %d not found", dto.UploaderID)
	}
	if err != nil {
		return err
	}

	uploader.Name = dto.Name
	uploader.Email = dto.Email
	return s.db.WithContext(ctx).Save(&uploader).Error
}

// Delete removes the uploader row. Projects owned by the uploader are
// not cascaded.
func (s *UploaderService) Delete(ctx context.Context, id uint) error {
	var uploader model.Uploader
	err := s.db.WithContext(ctx).First(&uploader, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("uploader %d not found", id)
	}
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&uploader).Error
}
