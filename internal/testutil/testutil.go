// Package testutil собирает окружение для тестов: sqlite во временном каталоге,
// медиа на диске и multipart запросы с картинками.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"league/config"
	"league/internal/init/cache"
	"league/internal/init/database"
	"league/internal/modules/media/repo/disk"
	mediaUC "league/internal/modules/media/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const BaseURL = "http://localhost:4000"

func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewCache поднимает встроенный redis и подключает к нему общий кэш.
func NewCache(t *testing.T) *cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := cache.NewCache(config.CacheConfig{Address: mr.Addr()})
	require.NoError(t, err)
	require.NotNil(t, c)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func StorageConfig() config.StorageConfig {
	return config.StorageConfig{
		Driver:             "disk",
		MaxImageSizeBytes:  5 << 20,
		MaxImageSide:       256,
		MaxImportSizeBytes: 10 << 20,
	}
}

// NewMedia возвращает media use case поверх временного каталога.
func NewMedia(t *testing.T) (*mediaUC.MediaUseCase, string) {
	t.Helper()
	dir := t.TempDir()
	storage, err := disk.NewDiskStorage(dir, BaseURL, Logger())
	require.NoError(t, err)
	return mediaUC.NewMediaUseCase(storage, Logger(), StorageConfig()), dir
}

func PNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: uint8(x * 20), B: uint8(y * 20), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// File описывает файл multipart формы.
type File struct {
	Field   string
	Name    string
	Content []byte
}

// MultipartRequest собирает запрос multipart/form-data.
func MultipartRequest(t *testing.T, method, target string, fields map[string]string, files ...File) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.Field, f.Name)
		require.NoError(t, err)
		_, err = fw.Write(f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(method, target, &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

// FileHeader отдает заголовок загруженного файла, как его видит контроллер.
func FileHeader(t *testing.T, field, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	r := MultipartRequest(t, http.MethodPost, "/", nil, File{Field: field, Name: name, Content: content})
	require.NoError(t, r.ParseMultipartForm(10<<20))
	fhs := r.MultipartForm.File[field]
	require.Len(t, fhs, 1)
	return fhs[0]
}
