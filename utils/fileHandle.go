package utils

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge     = errors.New("file is too large")
	ErrUnsupportedImage = errors.New("only .jpg, .jpeg, .png and .webp images are allowed")
)

var imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

// ReadUploadedFile returns the content of an uploaded file of at most maxBytes.
func ReadUploadedFile(file *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	if file.Size > maxBytes {
		return nil, ErrFileTooLarge
	}
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

// SaveUploadedImage stores an image under destDir with a random name and
// returns the stored file name.
func SaveUploadedImage(file *multipart.FileHeader, destDir string, maxBytes int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		return "", ErrUnsupportedImage
	}
	data, err := ReadUploadedFile(file, maxBytes)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(destDir, name), data, 0644); err != nil {
		return "", err
	}
	return name, nil
}

func GetFileURL(name string) string {
	if name == "" {
		return ""
	}
	return "/uploads/" + name
}
