package disk

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"league/internal/modules/media"
)

// DiskStorage хранит файлы в локальном каталоге, который раздается по /uploads/*.
type DiskStorage struct {
	dir     string
	baseURL string
	log     *slog.Logger
}

func NewDiskStorage(dir, baseURL string, log *slog.Logger) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", dir, err)
	}
	return &DiskStorage{dir: dir, baseURL: baseURL, log: log}, nil
}

func (s *DiskStorage) Put(name string, data []byte, _ string) error {
	op := "DiskStorage.Put"
	log := s.log.With(slog.String("op", op), slog.String("name", name))

	// пишем во временный файл и переименовываем, чтобы не отдавать недописанный файл
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		log.Error("failed to create temp file", slog.String("error", err.Error()))
		return media.ErrStorageInternal
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		log.Error("failed to write image", slog.String("error", err.Error()))
		return media.ErrStorageInternal
	}
	if err := tmp.Close(); err != nil {
		return media.ErrStorageInternal
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		log.Error("failed to move image into place", slog.String("error", err.Error()))
		return media.ErrStorageInternal
	}
	return nil
}

func (s *DiskStorage) Delete(name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *DiskStorage) List() ([]media.StoredObject, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	objects := make([]media.StoredObject, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || entry.Name()[0] == '.' {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		objects = append(objects, media.StoredObject{
			Path:       media.UploadPrefix + entry.Name(),
			ModifiedAt: info.ModTime(),
		})
	}
	return objects, nil
}

func (s *DiskStorage) BaseURL() string {
	return s.baseURL
}

func (s *DiskStorage) Dir() string {
	return s.dir
}
