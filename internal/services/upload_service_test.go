package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"os"
	"strings"
	"testing"

	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStorage - хранилище в памяти для тестов пайплайна загрузок
type memStorage struct {
	files           map[string][]byte
	saveErr         error
	lastPath        string
	lastContentType string
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]byte)}
}

func (s *memStorage) Save(_ context.Context, path string, reader io.Reader, contentType string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.files[path] = data
	s.lastPath = path
	s.lastContentType = contentType
	return nil
}

func (s *memStorage) Get(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := s.files[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStorage) Delete(_ context.Context, path string) error {
	delete(s.files, path)
	return nil
}

func (s *memStorage) Exists(_ context.Context, path string) (bool, error) {
	_, ok := s.files[path]
	return ok, nil
}

func (s *memStorage) GetURL(_ context.Context, path string) (string, error) {
	return "https://cdn.test/" + path, nil
}

func defaultUploadConfig() UploadConfig {
	return UploadConfig{
		MaxSize:      10 * 1024 * 1024,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp", "application/pdf"},
		ImageQuality: 85,
	}
}

// pngBytes кодирует маленькую валидную картинку
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// TestIngest_Document - не-картинка уходит в хранилище как есть
func TestIngest_Document(t *testing.T) {
	t.Parallel()

	st := newMemStorage()
	svc := NewUploadService(st, defaultUploadConfig())

	url, err := svc.Ingest(context.Background(), &dto.UploadInput{
		FileName:    "resume.pdf",
		ContentType: "application/pdf",
		Size:        9,
		Reader:      strings.NewReader("pdf-bytes"),
	}, "user_resumes")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://cdn.test/user_resumes/"))
	assert.True(t, strings.HasSuffix(st.lastPath, ".pdf"))
	assert.Equal(t, "application/pdf", st.lastContentType)
	assert.Equal(t, []byte("pdf-bytes"), st.files[st.lastPath])
}

// TestIngest_Image - картинка перекодируется, но остается валидной картинкой
func TestIngest_Image(t *testing.T) {
	t.Parallel()

	st := newMemStorage()
	svc := NewUploadService(st, defaultUploadConfig())

	url, err := svc.Ingest(context.Background(), &dto.UploadInput{
		FileName:    "avatar.png",
		ContentType: "image/png",
		Size:        int64(len(pngBytes(t))),
		Reader:      bytes.NewReader(pngBytes(t)),
	}, "user_profile")
	require.NoError(t, err)
	assert.Contains(t, url, "user_profile/")

	assert.True(t, strings.HasSuffix(st.lastPath, ".png"))
	assert.Equal(t, "image/png", st.lastContentType)
	_, format, err := image.Decode(bytes.NewReader(st.files[st.lastPath]))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}

// TestIngest_GIFTranscoded - gif перекодируется в JPEG, и путь с content type
// описывают именно сохраненные байты
func TestIngest_GIFTranscoded(t *testing.T) {
	t.Parallel()

	st := newMemStorage()
	svc := NewUploadService(st, defaultUploadConfig())

	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4)), nil))

	_, err := svc.Ingest(context.Background(), &dto.UploadInput{
		FileName:    "avatar.gif",
		ContentType: "image/gif",
		Size:        int64(buf.Len()),
		Reader:      &buf,
	}, "user_profile")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(st.lastPath, ".jpg"))
	assert.Equal(t, "image/jpeg", st.lastContentType)
	_, format, err := image.Decode(bytes.NewReader(st.files[st.lastPath]))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

// TestIngest_WebP - валидный webp принимается и сохраняется как JPEG
func TestIngest_WebP(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/sample.webp")
	require.NoError(t, err)

	st := newMemStorage()
	svc := NewUploadService(st, defaultUploadConfig())

	url, err := svc.Ingest(context.Background(), &dto.UploadInput{
		FileName:    "avatar.webp",
		ContentType: "image/webp",
		Size:        int64(len(data)),
		Reader:      bytes.NewReader(data),
	}, "user_profile")
	require.NoError(t, err)
	assert.Contains(t, url, "user_profile/")

	assert.True(t, strings.HasSuffix(st.lastPath, ".jpg"))
	assert.Equal(t, "image/jpeg", st.lastContentType)
	_, format, err := image.Decode(bytes.NewReader(st.files[st.lastPath]))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

// TestIngest_CorruptImage - битая картинка не доходит до хранилища
func TestIngest_CorruptImage(t *testing.T) {
	t.Parallel()

	st := newMemStorage()
	svc := NewUploadService(st, defaultUploadConfig())

	_, err := svc.Ingest(context.Background(), &dto.UploadInput{
		FileName:    "broken.png",
		ContentType: "image/png",
		Size:        12,
		Reader:      strings.NewReader("not-an-image"),
	}, "user_profile")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Empty(t, st.files)
}

// TestIngest_TooLarge
func TestIngest_TooLarge(t *testing.T) {
	t.Parallel()

	cfg := defaultUploadConfig()
	cfg.MaxSize = 100
	svc := NewUploadService(newMemStorage(), cfg)

	_, err := svc.Ingest(context.Background(), &dto.UploadInput{
		FileName:    "huge.pdf",
		ContentType: "application/pdf",
		Size:        1000,
		Reader:      strings.NewReader("..."),
	}, "user_resumes")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}

// TestIngest_TypeNotAllowed
func TestIngest_TypeNotAllowed(t *testing.T) {
	t.Parallel()

	svc := NewUploadService(newMemStorage(), defaultUploadConfig())

	_, err := svc.Ingest(context.Background(), &dto.UploadInput{
		FileName:    "script.sh",
		ContentType: "application/x-sh",
		Size:        10,
		Reader:      strings.NewReader("#!/bin/sh"),
	}, "user_resumes")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}

// TestIngest_NoFile - nil на входе это ошибка клиента, не паника
func TestIngest_NoFile(t *testing.T) {
	t.Parallel()

	svc := NewUploadService(newMemStorage(), defaultUploadConfig())

	_, err := svc.Ingest(context.Background(), nil, "user_profile")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}

// TestIngest_StorageFailure - отказ хранилища отдается как 500, без ретраев
func TestIngest_StorageFailure(t *testing.T) {
	t.Parallel()

	st := newMemStorage()
	st.saveErr = errors.New("bucket unavailable")
	svc := NewUploadService(st, defaultUploadConfig())

	_, err := svc.Ingest(context.Background(), &dto.UploadInput{
		FileName:    "resume.pdf",
		ContentType: "application/pdf",
		Size:        9,
		Reader:      strings.NewReader("pdf-bytes"),
	}, "user_resumes")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode)
}

// TestIngest_PathKeepsExtension - расширение исходного файла сохраняется в пути
func TestIngest_PathKeepsExtension(t *testing.T) {
	t.Parallel()

	st := newMemStorage()
	svc := NewUploadService(st, defaultUploadConfig())

	_, err := svc.Ingest(context.Background(), &dto.UploadInput{
		FileName:    "Resume.PDF",
		ContentType: "application/pdf",
		Size:        9,
		Reader:      strings.NewReader("pdf-bytes"),
	}, "user_resumes")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(st.lastPath, ".pdf"))
	assert.True(t, strings.HasPrefix(st.lastPath, "user_resumes/"))
}
