package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"jobportal_backend/internal/imageprocessor"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/internal/storage"
	"jobportal_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// UploadService принимает бинарник запроса, нормализует его и отдает
// в удаленное хранилище. Единственный устойчивый след загрузки - URL.
type UploadService interface {
	// Ingest сохраняет файл в папку хранилища и возвращает публичный URL.
	// Ретраев нет: первая же ошибка хранилища валит всю операцию.
	Ingest(ctx context.Context, file *dto.UploadInput, folder string) (string, error)
}

type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
	ImageQuality int
}

type uploadService struct {
	storage   storage.Storage
	processor *imageprocessor.Processor
	config    UploadConfig
}

func NewUploadService(st storage.Storage, cfg UploadConfig) UploadService {
	return &uploadService{
		storage:   st,
		processor: imageprocessor.NewProcessor(cfg.ImageQuality),
		config:    cfg,
	}
}

func (s *uploadService) Ingest(ctx context.Context, file *dto.UploadInput, folder string) (string, error) {
	if file == nil || file.Reader == nil {
		return "", apperrors.NewBadRequestError("File is required")
	}

	if err := s.validate(file); err != nil {
		return "", err
	}

	reader := file.Reader
	contentType := file.ContentType
	ext := strings.ToLower(filepath.Ext(file.FileName))

	// Картинки нормализуем: ограничиваем размеры и перекодируем
	// с настроенным качеством. Резюме и прочее уходит как есть.
	if strings.HasPrefix(contentType, "image/") {
		data, err := io.ReadAll(file.Reader)
		if err != nil {
			return "", apperrors.UploadError(err)
		}
		processed, format, err := s.processor.Process(bytes.NewReader(data))
		if err != nil {
			// Битую картинку в хранилище не несем
			return "", apperrors.NewBadRequestError("File is not a valid image")
		}
		reader = processed

		// Расширение и content type описывают итоговую кодировку,
		// не исходный файл: gif и webp после перекодирования - JPEG
		switch format {
		case "png":
			ext, contentType = ".png", "image/png"
		default:
			ext, contentType = ".jpg", "image/jpeg"
		}
	}

	path := s.objectPath(folder, ext)

	if err := s.storage.Save(ctx, path, reader, contentType); err != nil {
		logger.CtxWithError(ctx, "asset store save failed", err, "path", path)
		return "", apperrors.UploadError(err)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return "", apperrors.UploadError(err)
	}

	logger.CtxInfo(ctx, "asset ingested", "path", path, "size", file.Size)
	return url, nil
}

func (s *uploadService) validate(file *dto.UploadInput) error {
	if s.config.MaxSize > 0 && file.Size > s.config.MaxSize {
		return apperrors.NewBadRequestError(
			fmt.Sprintf("File too large: max size is %d bytes", s.config.MaxSize))
	}

	if len(s.config.AllowedTypes) == 0 {
		return nil
	}
	for _, t := range s.config.AllowedTypes {
		if t == file.ContentType {
			return nil
		}
	}
	return apperrors.NewBadRequestError("File type is not allowed: " + file.ContentType)
}

// objectPath строит уникальный путь в хранилище с заданным расширением.
func (s *uploadService) objectPath(folder, ext string) string {
	return fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)
}
