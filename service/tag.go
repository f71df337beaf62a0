package service

import (
	"context"
	"errors"

	"imagehost/model"

	"gorm.io/gorm"
)

// TagService wraps CRUD over tags.
type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

func (s *TagService) List(ctx context.Context) ([]model.TagDto, error) {
	var tags []model.Tag
	if err := s.db.WithContext(ctx).Find(&tags).Error; err != nil {
		return nil, err
	}
	dtos := make([]model.TagDto, 0, len(tags))
	for i := range tags {
		dtos = append(dtos, model.NewTagDto(&tags[i]))
	}
	return dtos, nil
}

func (s *TagService) Find(ctx context.Context, id uint) (model.TagDto, error) {
	var tag model.Tag
	err := s.db.WithContext(ctx).First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.TagDto{}, notFoundf("tag %d not found", id)
	}
	if err != nil {
		return model.TagDto{}, err
	}
	return model.NewTagDto(&tag), nil
}

// Add inserts a new tag and returns the assigned id.
func (s *TagService) Add(ctx context.Context, dto model.TagDto) (uint, error) {
	tag := model.Tag{
		Name:  dto.Name,
		Color: dto.Color,
	}
	if err := s.db.WithContext(ctx).Create(&tag).Error; err != nil {
		return 0, err
	}
	return tag.ID, nil
}

// Update overwrites the tag's name and color.
func (s *TagService) Update(ctx context.Context, dto model.TagDto) error {
	var tag model.Tag
	err := s.db.WithContext(ctx).First(&tag, dto.TagID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("tag %d not found", dto.TagID)
	}
	if err != nil {
		return err
	}

	tag.Name = dto.Name
	tag.Color = dto.Color
	return s.db.WithContext(ctx).Save(&tag).Error
}

// Delete removes the tag row and its project links. Image files are not
// touched.
func (s *TagService) Delete(ctx context.Context, id uint) error {
	var tag model.Tag
	err := s.db.WithContext(ctx).First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("tag %d not found", id)
	}
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&model.ProjectTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}

// ListProjectsForTag returns the projects linked to the tag, joined with
// their uploader names.
func (s *TagService) ListProjectsForTag(ctx context.Context, id uint) ([]model.ProjectDto, error) {
	var tag model.Tag
	err := s.db.WithContext(ctx).Preload("Projects").Preload("Projects.Uploader").First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundf("tag %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	dtos := make([]model.ProjectDto, 0, len(tag.Projects))
	for i := range tag.Projects {
		dtos = append(dtos, model.NewProjectDto(&tag.Projects[i]))
	}
	return dtos, nil
}
