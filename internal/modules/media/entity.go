package media

import (
	"mime/multipart"
	"time"
)

// UploadPrefix - относительный путь, под которым хранятся изображения записей.
const UploadPrefix = "/uploads/"

type StoredObject struct {
	Path       string // /uploads/<name>
	ModifiedAt time.Time
}

type UseCase interface {
	SaveImage(fileHeader *multipart.FileHeader) (string, error)
	Delete(relPath string)
	PublicURL(relPath *string) *string
	ListStored() ([]StoredObject, error)
}

// Storage - бэкенд хранения файлов (диск или S3).
type Storage interface {
	Put(name string, data []byte, contentType string) error
	Delete(name string) error
	List() ([]StoredObject, error)
	BaseURL() string
}
