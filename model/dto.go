package model

import "time"

// Flat transfer shapes used at the HTTP boundary. Mapping never follows
// navigation properties back up, so no cycles can reach the encoder.

type UploaderDto struct {
	UploaderID uint   `json:"uploaderId"`
	Name       string `json:"uploaderName"`
	Email      string `json:"uploaderEmail"`
}

type ProjectDto struct {
	ProjectID    uint      `json:"projectId"`
	Name         string    `json:"projectName"`
	Description  string    `json:"projectDescription"`
	CreatedAt    time.Time `json:"createdAt"`
	ImageTotal   int       `json:"imageTotal"`
	UploaderID   uint      `json:"uploaderId"`
	UploaderName string    `json:"uploaderName,omitempty"`
	Tags         []TagDto  `json:"tags,omitempty"`
}

type ImageDto struct {
	ImageID      uint      `json:"imageId"`
	UploadedAt   time.Time `json:"uploadedAt"`
	FileName     string    `json:"fileName"`
	ProjectID    uint      `json:"projectId"`
	ProjectName  string    `json:"projectName,omitempty"`
	HasPic       bool      `json:"hasPic"`
	PicExtension string    `json:"picExtension,omitempty"`
}

type TagDto struct {
	TagID uint   `json:"tagId"`
	Name  string `json:"tagName"`
	Color string `json:"tagColor"`
}

func NewUploaderDto(u *Uploader) UploaderDto {
	return UploaderDto{
		UploaderID: u.ID,
		Name:       u.Name,
		Email:      u.Email,
	}
}

// NewProjectDto maps a project row. The uploader name is filled in only
// when the Uploader association has been loaded.
func NewProjectDto(p *Project) ProjectDto {
	dto := ProjectDto{
		ProjectID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		ImageTotal:  p.ImageTotal,
		UploaderID:  p.UploaderID,
	}
	if p.Uploader.ID != 0 {
		dto.UploaderName = p.Uploader.Name
	}
	for i := range p.Tags {
		dto.Tags = append(dto.Tags, NewTagDto(&p.Tags[i]))
	}
	return dto
}

// NewImageDto maps an image row. UploadedAt is the row creation time;
// the project name is filled in only when the association has been loaded.
func NewImageDto(img *Image) ImageDto {
	dto := ImageDto{
		ImageID:    img.ID,
		UploadedAt: img.CreatedAt,
		FileName:   img.FileName,
		ProjectID:  img.ProjectID,
		HasPic:     img.HasPic,
	}
	if img.PicExtension != nil {
		dto.PicExtension = *img.PicExtension
	}
	if img.Project.ID != 0 {
		dto.ProjectName = img.Project.Name
	}
	return dto
}

func NewTagDto(t *Tag) TagDto {
	return TagDto{
		TagID: t.ID,
		Name:  t.Name,
		Color: t.Color,
	}
}
