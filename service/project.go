package service

import (
	"context"
	"errors"

	"imagehost/logutils"
	"imagehost/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectService wraps CRUD and tag linking over projects. Deleting a
// project also clears its asset directory.
type ProjectService struct {
	db     *gorm.DB
	assets *AssetStore
}

func NewProjectService(db *gorm.DB, assets *AssetStore) *ProjectService {
	return &ProjectService{db: db, assets: assets}
}

func (s *ProjectService) List(ctx context.Context) ([]model.ProjectDto, error) {
	var projects []model.Project
	err := s.db.WithContext(ctx).Preload("Uploader").Preload("Tags").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	dtos := make([]model.ProjectDto, 0, len(projects))
	for i := range projects {
		dtos = append(dtos, model.NewProjectDto(&projects[i]))
	}
	return dtos, nil
}

func (s *ProjectService) Find(ctx context.Context, id uint) (model.ProjectDto, error) {
	var project model.Project
	err := s.db.WithContext(ctx).Preload("Uploader").Preload("Tags").First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProjectDto{}, notFoundf("project %d not found", id)
	}
	if err != nil {
		return model.ProjectDto{}, err
	}
	return model.NewProjectDto(&project), nil
}

// Add inserts a new project after checking that the referenced uploader
// exists, and returns the assigned id. The image counter starts at zero.
func (s *ProjectService) Add(ctx context.Context, dto model.ProjectDto) (uint, error) {
	var uploader model.Uploader
	err := s.db.WithContext(ctx).First(&uploader, dto.UploaderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, notFoundf("uploader %d not found", dto.UploaderID)
	}
	if err != nil {
		return 0, err
	}

	project := model.Project{
		Name:        dto.Name,
		Description: dto.Description,
		UploaderID:  dto.UploaderID,
		ImageTotal:  0,
	}
	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return 0, err
	}
	return project.ID, nil
}

// Update overwrites the project's name and description only.
func (s *ProjectService) Update(ctx context.Context, dto model.ProjectDto) error {
	var project model.Project
	err := s.db.WithContext(ctx).First(&project, dto.ProjectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("project %d not found", dto.ProjectID)
	}
	if err != nil {
		return err
	}

	project.Name = dto.Name
	project.Description = dto.Description
	return s.db.WithContext(ctx).Save(&project).Error
}

// Delete removes the project, its image rows, its tag links and its asset
// directory. Backing files are deleted first; the row deletions run in one
// transaction committed only after every file deletion succeeded, so a file
// failure leaves all rows in place.
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	var project model.Project
	err := s.db.WithContext(ctx).Preload("Images").First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("project %d not found", id)
	}
	if err != nil {
		return err
	}

	for i := range project.Images {
		img := &project.Images[i]
		if !img.HasPic || img.PicExtension == nil {
			continue
		}
		if err := s.assets.Remove(ctx, id, img.ID, *img.PicExtension); err != nil {
			return &StorageError{Op: "can't delete the project's image files", Err: err}
		}
	}
	if err := s.assets.RemoveProjectDir(ctx, id); err != nil {
		return &StorageError{Op: "can't delete the project directory", Err: err}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
}

func (s *ProjectService) ListProjectsForUploader(ctx context.Context, uploaderID uint) ([]model.ProjectDto, error) {
	var projects []model.Project
	err := s.db.WithContext(ctx).Where("uploader_id = ?", uploaderID).Find(&projects).Error
	if err != nil {
		return nil, err
	}
	dtos := make([]model.ProjectDto, 0, len(projects))
	for i := range projects {
		dtos = append(dtos, model.NewProjectDto(&projects[i]))
	}
	return dtos, nil
}

func (s *ProjectService) ListTagsForProject(ctx context.Context, projectID uint) ([]model.TagDto, error) {
	var project model.Project
	err := s.db.WithContext(ctx).Preload("Tags").First(&project, projectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundf("project %d not found", projectID)
	}
	if err != nil {
		return nil, err
	}
	dtos := make([]model.TagDto, 0, len(project.Tags))
	for i := range project.Tags {
		dtos = append(dtos, model.NewTagDto(&project.Tags[i]))
	}
	return dtos, nil
}

// LinkTagToProject upserts the join row for (tagID, projectID). Linking an
// already linked pair is a no-op.
func (s *ProjectService) LinkTagToProject(ctx context.Context, tagID, projectID uint) error {
	if err := s.checkLinkSides(ctx, tagID, projectID); err != nil {
		return err
	}
	link := model.ProjectTag{ProjectID: projectID, TagID: tagID}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
	if err != nil {
		logutils.Log.WithFields(logutils.Fields{
			"project": projectID,
			"tag":     tagID,
		}).Error("link tag: ", err)
	}
	return err
}

// UnlinkTagFromProject deletes the join row. Unlinking a pair that was
// never linked succeeds.
func (s *ProjectService) UnlinkTagFromProject(ctx context.Context, tagID, projectID uint) error {
	if err := s.checkLinkSides(ctx, tagID, projectID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Where("project_id = ? AND tag_id = ?", projectID, tagID).
		Delete(&model.ProjectTag{}).Error
}

func (s *ProjectService) checkLinkSides(ctx context.Context, tagID, projectID uint) error {
	var project model.Project
	err := s.db.WithContext(ctx).First(&project, projectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("project %d not found", projectID)
	}
	if err != nil {
		return err
	}
	var tag model.Tag
	err = s.db.WithContext(ctx).First(&tag, tagID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("tag %d not found", tagID)
	}
	return err
}
