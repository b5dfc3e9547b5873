package usecase

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"strings"

	"league/config"
	"league/internal/modules/media"
	"league/pkg/lib/imageManager"

	"github.com/google/uuid"
)

type MediaUseCase struct {
	storage media.Storage
	log     *slog.Logger
	cfg     config.StorageConfig
}

func NewMediaUseCase(storage media.Storage, log *slog.Logger, cfg config.StorageConfig) *MediaUseCase {
	if cfg.MaxImageSizeBytes == 0 {
		cfg.MaxImageSizeBytes = 5 * 1024 * 1024
	}
	return &MediaUseCase{storage: storage, log: log, cfg: cfg}
}

// SaveImage нормализует загруженное изображение и возвращает относительный путь /uploads/<uuid>.webp.
func (uc *MediaUseCase) SaveImage(fileHeader *multipart.FileHeader) (string, error) {
	op := "MediaUseCase.SaveImage"
	log := uc.log.With(slog.String("op", op))

	if fileHeader == nil {
		return "", media.ErrNoImage
	}
	log = log.With(slog.String("filename", fileHeader.Filename), slog.Int64("size", fileHeader.Size))

	if fileHeader.Size > uc.cfg.MaxImageSizeBytes {
		log.Warn("image too large", slog.Int64("limit", uc.cfg.MaxImageSizeBytes))
		return "", media.ErrImageTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("failed to open uploaded file", slog.String("error", err.Error()))
		return "", media.ErrStorageInternal
	}
	defer file.Close()

	processed, err := imageManager.ParsingImage(file, uc.cfg.MaxImageSide)
	if err != nil {
		if errors.Is(err, imageManager.ErrInvalidTypeImage) || errors.Is(err, imageManager.ErrEmptyImage) {
			log.Warn("invalid image", slog.String("error", err.Error()))
			return "", media.ErrInvalidImage
		}
		log.Error("failed to process image", slog.String("error", err.Error()))
		return "", media.ErrStorageInternal
	}

	name := uuid.NewString() + imageManager.Extension
	if err := uc.storage.Put(name, processed, imageManager.ContentType); err != nil {
		log.Error("failed to store image", slog.String("error", err.Error()))
		return "", media.ErrStorageInternal
	}

	log.Info("image stored", slog.String("name", name), slog.Int("bytes", len(processed)))
	return media.UploadPrefix + name, nil
}

// Delete удаляет файл по относительному пути. Ошибки только логируются.
func (uc *MediaUseCase) Delete(relPath string) {
	op := "MediaUseCase.Delete"
	log := uc.log.With(slog.String("op", op), slog.String("path", relPath))

	name, err := nameFromPath(relPath)
	if err != nil {
		log.Warn("refusing to delete path outside uploads")
		return
	}
	if err := uc.storage.Delete(name); err != nil {
		log.Warn("failed to delete stored image", slog.String("error", err.Error()))
		return
	}
	log.Debug("stored image deleted")
}

func (uc *MediaUseCase) PublicURL(relPath *string) *string {
	if relPath == nil || *relPath == "" {
		return nil
	}
	url := strings.TrimSuffix(uc.storage.BaseURL(), "/") + "/" + strings.TrimPrefix(*relPath, "/")
	return &url
}

func (uc *MediaUseCase) ListStored() ([]media.StoredObject, error) {
	return uc.storage.List()
}

func nameFromPath(relPath string) (string, error) {
	if !strings.HasPrefix(relPath, media.UploadPrefix) {
		return "", media.ErrInvalidPath
	}
	name := strings.TrimPrefix(relPath, media.UploadPrefix)
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return "", media.ErrInvalidPath
	}
	return name, nil
}
