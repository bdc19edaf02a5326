package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedUploadExts = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
}

type StorageService interface {
	SaveFile(file *multipart.FileHeader) (filename string, path string, mimeType string, err error)
	SaveExport(content []byte, ext string) (filename string, path string, err error)
	GetFilePath(filename string) string
	GetExportPath(filename string) string
	DeleteFile(filename string) error
	EnsureDirs() error
}

type storageService struct {
	uploadPath string
	exportPath string
}

func NewStorageService(uploadPath, exportPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
		exportPath: exportPath,
	}
}

func (s *storageService) EnsureDirs() error {
	for _, dir := range []string{s.uploadPath, s.exportPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

func (s *storageService) SaveFile(file *multipart.FileHeader) (string, string, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	mimeType, ok := allowedUploadExts[ext]
	if !ok {
		return "", "", "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}

	uniqueFilename := fmt.Sprintf("cv_%s%s", uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	src, err := file.Open()
	if err != nil {
		return "", "", "", fmt.Errorf("%w: %v", ErrFileRead, err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return uniqueFilename, filePath, mimeType, nil
}

// SaveExport persists a generated document (.html or .pdf) under the
// export directory with a unique name.
func (s *storageService) SaveExport(content []byte, ext string) (string, string, error) {
	uniqueFilename := fmt.Sprintf("export_%s%s", uuid.New().String(), ext)
	filePath := filepath.Join(s.exportPath, uniqueFilename)

	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write export file: %w", err)
	}

	return uniqueFilename, filePath, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

func (s *storageService) GetExportPath(filename string) string {
	return filepath.Join(s.exportPath, filename)
}

func (s *storageService) DeleteFile(filename string) error {
	if err := os.Remove(s.GetFilePath(filename)); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
