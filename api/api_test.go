package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"imagehost/model"
	"imagehost/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	assets := service.NewAssetStore(t.TempDir())
	r := gin.New()
	Register(r.Group("/api"), Services{
		Uploaders: service.NewUploaderService(db),
		Projects:  service.NewProjectService(db, assets),
		Images:    service.NewImageService(db, assets),
		Tags:      service.NewTagService(db),
	})
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// envelope mirrors the wire shape of the response package.
type envelope struct {
	Code int             `json:"code"`
	Data json.RawMessage `json:"data"`
	Msg  string          `json:"msg"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, w.Body.String())
	}
	return env
}

func TestProjectAdd_CreatedWithLocation(t *testing.T) {
	r, db := newTestRouter(t)
	uploader := model.Uploader{Name: "ada", Email: "ada@example.com"}
	if err := db.Create(&uploader).Error; err != nil {
		t.Fatalf("seed uploader: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/Project/Add",
		`{"projectName":"A","projectDescription":"d","uploaderId":1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	var dto model.ProjectDto
	if err := json.Unmarshal(env.Data, &dto); err != nil {
		t.Fatalf("decode dto: %v", err)
	}
	wantLoc := "api/Project/Find/1"
	if got := w.Header().Get("Location"); got != wantLoc {
		t.Errorf("Location = %q, want %q", got, wantLoc)
	}

	// The created id must resolve via Find with the submitted fields intact.
	w = doJSON(t, r, http.MethodGet, "/api/Project/Find/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	env = decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &dto); err != nil {
		t.Fatalf("decode dto: %v", err)
	}
	if dto.Name != "A" || dto.Description != "d" || dto.UploaderID != 1 {
		t.Errorf("fields not intact: %+v", dto)
	}
}

func TestProjectAdd_MissingUploader(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/Project/Add",
		`{"projectName":"A","uploaderId":9}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestFind_Missing(t *testing.T) {
	r, _ := newTestRouter(t)
	for _, target := range []string{
		"/api/Uploader/Find/5",
		"/api/Project/Find/5",
		"/api/Image/Find/5",
		"/api/Tag/Find/5",
	} {
		w := doJSON(t, r, http.MethodGet, target, "")
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", target, w.Code)
		}
	}
}

func TestUpdate_IDMismatch(t *testing.T) {
	r, db := newTestRouter(t)
	uploader := model.Uploader{Name: "ada", Email: "ada@example.com"}
	if err := db.Create(&uploader).Error; err != nil {
		t.Fatalf("seed uploader: %v", err)
	}

	w := doJSON(t, r, http.MethodPut, "/api/Uploader/Update/2",
		`{"uploaderId":1,"uploaderName":"mallory","uploaderEmail":"m@example.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var got model.Uploader
	if err := db.First(&got, uploader.ID).Error; err != nil {
		t.Fatalf("reload uploader: %v", err)
	}
	if got.Name != "ada" {
		t.Errorf("row mutated on id mismatch: %+v", got)
	}
}

func TestUpdateAndDelete_NoContent(t *testing.T) {
	r, db := newTestRouter(t)
	tag := model.Tag{Name: "macro", Color: "#00ff00"}
	if err := db.Create(&tag).Error; err != nil {
		t.Fatalf("seed tag: %v", err)
	}

	w := doJSON(t, r, http.MethodPut, "/api/Tag/Update/1",
		`{"tagId":1,"tagName":"micro","tagColor":"#0000ff"}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d (%s)", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/Tag/Delete/1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/Tag/Find/1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestUploadImageFile_BadExtension(t *testing.T) {
	r, db := newTestRouter(t)
	uploader := model.Uploader{Name: "ada", Email: "ada@example.com"}
	if err := db.Create(&uploader).Error; err != nil {
		t.Fatalf("seed uploader: %v", err)
	}
	project := model.Project{Name: "p", UploaderID: uploader.ID}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	image := model.Image{FileName: "f", ProjectID: project.ID}
	if err := db.Create(&image).Error; err != nil {
		t.Fatalf("seed image: %v", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("ImageFile", "pic.bmp")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("bitmap-bytes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPut, "/api/Image/UploadImageFile/1", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d (%s)", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Msg != ".bmp is not a valid file extension" {
		t.Errorf("unexpected message %q", env.Msg)
	}

	var got model.Image
	if err := db.First(&got, image.ID).Error; err != nil {
		t.Fatalf("reload image: %v", err)
	}
	if got.HasPic {
		t.Error("picture flag changed by a rejected upload")
	}
}

func TestUploadImageFile_ValidThenServeMetadata(t *testing.T) {
	r, db := newTestRouter(t)
	uploader := model.Uploader{Name: "ada", Email: "ada@example.com"}
	if err := db.Create(&uploader).Error; err != nil {
		t.Fatalf("seed uploader: %v", err)
	}
	project := model.Project{Name: "p", UploaderID: uploader.ID}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	image := model.Image{FileName: "f", ProjectID: project.ID}
	if err := db.Create(&image).Error; err != nil {
		t.Fatalf("seed image: %v", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("ImageFile", "pic.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("png-bytes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPut, "/api/Image/UploadImageFile/1", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d (%s)", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/Image/Find/1", "")
	env := decodeEnvelope(t, w)
	var dto model.ImageDto
	if err := json.Unmarshal(env.Data, &dto); err != nil {
		t.Fatalf("decode dto: %v", err)
	}
	if !dto.HasPic || dto.PicExtension != ".png" {
		t.Errorf("upload not reflected in metadata: %+v", dto)
	}
}

func TestLinkAndUnlinkTag(t *testing.T) {
	r, db := newTestRouter(t)
	uploader := model.Uploader{Name: "ada", Email: "ada@example.com"}
	if err := db.Create(&uploader).Error; err != nil {
		t.Fatalf("seed uploader: %v", err)
	}
	project := model.Project{Name: "p", UploaderID: uploader.ID}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	tag := model.Tag{Name: "macro", Color: "#00ff00"}
	if err := db.Create(&tag).Error; err != nil {
		t.Fatalf("seed tag: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/Project/LinkTag", `{"tagId":1,"projectId":1}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d (%s)", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/Project/ListTagsForProject/1", "")
	env := decodeEnvelope(t, w)
	var tags []model.TagDto
	if err := json.Unmarshal(env.Data, &tags); err != nil {
		t.Fatalf("decode tags: %v", err)
	}
	if len(tags) != 1 || tags[0].TagID != 1 {
		t.Fatalf("expected exactly the linked tag, got %+v", tags)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/Project/UnlinkTag?tagId=1&projectId=1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/Project/ListTagsForProject/1", "")
	env = decodeEnvelope(t, w)
	tags = nil
	if err := json.Unmarshal(env.Data, &tags); err != nil {
		t.Fatalf("decode tags: %v", err)
	}
	if len(tags) != 0 {
		t.Fatalf("expected no tags after unlink, got %+v", tags)
	}

	w = doJSON(t, r, http.MethodPost, "/api/Project/LinkTag", `{"tagId":9,"projectId":1}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing tag, got %d", w.Code)
	}
}
