package upload

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxImageSize is the largest accepted upload (5MB).
const MaxImageSize = 5 * 1024 * 1024

var (
	ErrTooLarge    = errors.New("image file size must be less than 5MB")
	ErrNotAnImage  = errors.New("file must be an image")
	ErrEmptyUpload = errors.New("uploaded file is empty")
)

// ValidateImage checks the size and declared content type of an uploaded file.
func ValidateImage(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size == 0 {
		return ErrEmptyUpload
	}
	if fileHeader.Size > MaxImageSize {
		return ErrTooLarge
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}
	return nil
}

// SaveImage validates and stores an uploaded image under dir/subdir with a
// random filename, returning the path relative to dir.
func SaveImage(fileHeader *multipart.FileHeader, dir, subdir string) (string, error) {
	if err := ValidateImage(fileHeader); err != nil {
		return "", err
	}

	ext := filepath.Ext(fileHeader.Filename)
	relPath := filepath.Join(subdir, uuid.NewString()+ext)
	destPath := filepath.Join(dir, relPath)

	if err := os.MkdirAll(filepath.Dir(destPath), os.ModePerm); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return relPath, nil
}
