package service

import (
	"errors"
	"testing"

	"imagehost/model"
)

func TestTag_AddThenFind(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)

	id, err := svc.Add(testCtx(), model.TagDto{Name: "macro", Color: "#00ff00"})
	if err != nil {
		t.Fatalf("add tag: %v", err)
	}

	dto, err := svc.Find(testCtx(), id)
	if err != nil {
		t.Fatalf("find tag: %v", err)
	}
	if dto.Name != "macro" || dto.Color != "#00ff00" {
		t.Errorf("unexpected tag %+v", dto)
	}
}

func TestTag_FindMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)

	_, err := svc.Find(testCtx(), 42)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestTag_Update(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)
	id := seedTag(t, db, "macro")

	err := svc.Update(testCtx(), model.TagDto{TagID: id, Name: "micro", Color: "#0000ff"})
	if err != nil {
		t.Fatalf("update tag: %v", err)
	}

	dto, err := svc.Find(testCtx(), id)
	if err != nil {
		t.Fatalf("find tag: %v", err)
	}
	if dto.Name != "micro" || dto.Color != "#0000ff" {
		t.Errorf("update not persisted: %+v", dto)
	}

	err = svc.Update(testCtx(), model.TagDto{TagID: 42, Name: "x"})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for missing tag, got %v", err)
	}
}

func TestTag_DeleteClearsLinks(t *testing.T) {
	db := newTestDB(t)
	tags := NewTagService(db)
	projects := NewProjectService(db, newTestStore(t))

	uploaderID := seedUploader(t, db)
	projectID := seedProject(t, db, uploaderID)
	tagID := seedTag(t, db, "macro")
	if err := projects.LinkTagToProject(testCtx(), tagID, projectID); err != nil {
		t.Fatalf("link tag: %v", err)
	}

	if err := tags.Delete(testCtx(), tagID); err != nil {
		t.Fatalf("delete tag: %v", err)
	}

	var links int64
	if err := db.Model(&model.ProjectTag{}).Where("tag_id = ?", tagID).Count(&links).Error; err != nil {
		t.Fatalf("count links: %v", err)
	}
	if links != 0 {
		t.Errorf("expected no links left, got %d", links)
	}

	// The project itself survives the tag deletion.
	if _, err := projects.Find(testCtx(), projectID); err != nil {
		t.Errorf("project gone after tag delete: %v", err)
	}

	err := tags.Delete(testCtx(), tagID)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError on second delete, got %v", err)
	}
}

func TestTag_ListProjectsForTag(t *testing.T) {
	db := newTestDB(t)
	tags := NewTagService(db)
	projects := NewProjectService(db, newTestStore(t))

	uploaderID := seedUploader(t, db)
	linked := seedProject(t, db, uploaderID)
	other := model.Project{Name: "other", UploaderID: uploaderID}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	tagID := seedTag(t, db, "macro")
	if err := projects.LinkTagToProject(testCtx(), tagID, linked); err != nil {
		t.Fatalf("link tag: %v", err)
	}

	dtos, err := tags.ListProjectsForTag(testCtx(), tagID)
	if err != nil {
		t.Fatalf("list projects for tag: %v", err)
	}
	if len(dtos) != 1 || dtos[0].ProjectID != linked {
		t.Fatalf("expected only the linked project, got %+v", dtos)
	}
	if dtos[0].UploaderName != "ada" {
		t.Errorf("uploader name not joined: %+v", dtos[0])
	}

	_, err = tags.ListProjectsForTag(testCtx(), 42)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for missing tag, got %v", err)
	}
}

func TestTag_List(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)
	seedTag(t, db, "macro")
	seedTag(t, db, "street")

	dtos, err := svc.List(testCtx())
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}
	if len(dtos) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(dtos))
	}
}
