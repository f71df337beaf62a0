package service

import (
	"context"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"golang.org/x/net/webdav"
)

const rwxFolderPerm = 0o755

// validExtensions is the upload allow-list.
var validExtensions = []string{".jpeg", ".jpg", ".png", ".gif"}

// ValidExtension reports whether ext (lower-cased, with leading dot) is
// an allowed image file extension.
func ValidExtension(ext string) bool {
	for _, v := range validExtensions {
		if ext == v {
			return true
		}
	}
	return false
}

// AssetStore persists the binary files backing image rows under a
// per-project directory: projects/{projectID}/{imageID}{ext}.
type AssetStore struct {
	root string
	fs   webdav.FileSystem
}

func NewAssetStore(root string) *AssetStore {
	return &AssetStore{
		root: root,
		fs:   webdav.Dir(root),
	}
}

// Root returns the directory the store was rooted at.
func (s *AssetStore) Root() string { return s.root }

// FilePath returns the store-relative path of an image file.
func (s *AssetStore) FilePath(projectID, imageID uint, ext string) string {
	return path.Join(s.projectDir(projectID), strconv.FormatUint(uint64(imageID), 10)+ext)
}

func (s *AssetStore) projectDir(projectID uint) string {
	return path.Join("projects", strconv.FormatUint(uint64(projectID), 10))
}

// Save writes the uploaded payload to the image's backing file, creating
// the project directory if needed. The written path is stat-ed afterwards
// as a weak success check.
func (s *AssetStore) Save(ctx context.Context, projectID, imageID uint, ext string, r io.Reader) error {
	if err := s.mkdirAll(ctx, s.projectDir(projectID)); err != nil {
		return err
	}

	filePath := s.FilePath(projectID, imageID, ext)
	f, err := s.fs.OpenFile(ctx, filePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err = io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	_, err = s.fs.Stat(ctx, filePath)
	return err
}

// Remove deletes the image's backing file. A missing file is not an error.
func (s *AssetStore) Remove(ctx context.Context, projectID, imageID uint, ext string) error {
	filePath := s.FilePath(projectID, imageID, ext)
	if _, err := s.fs.Stat(ctx, filePath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return s.fs.RemoveAll(ctx, filePath)
}

// RemoveProjectDir deletes the per-project directory and anything left in it.
func (s *AssetStore) RemoveProjectDir(ctx context.Context, projectID uint) error {
	dir := s.projectDir(projectID)
	if _, err := s.fs.Stat(ctx, dir); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return s.fs.RemoveAll(ctx, dir)
}

// mkdirAll creates dir and its parents inside the store, one level at a
// time; webdav.Dir.Mkdir does not create parents itself.
func (s *AssetStore) mkdirAll(ctx context.Context, dir string) error {
	segments := strings.Split(dir, "/")
	cur := ""
	for _, seg := range segments {
		cur = path.Join(cur, seg)
		if _, err := s.fs.Stat(ctx, cur); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return err
		}
		if err := s.fs.Mkdir(ctx, cur, rwxFolderPerm); err != nil && !os.IsExist(err) {
			return err
		}
	}
	return nil
}
