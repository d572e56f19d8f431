// Package upload validates quotation files submitted for OCR recognition.
package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultMaxSizeMB  = 10
	defaultExtensions = ".pdf,.jpg,.jpeg,.png"
)

// FileValidator enforces the upload limits: maximum size and an extension
// whitelist. Both are env-configurable with platform defaults.

type FileValidator struct {
	allowedExt map[string]bool
	maxSize    int64
}

// NewDocumentValidator reads ALLOWED_FILE_EXTENSIONS and MAX_UPLOAD_SIZE_MB,
// falling back to the platform defaults (10 MiB; pdf and image types).
func NewDocumentValidator() *FileValidator {
	exts := os.Getenv("ALLOWED_FILE_EXTENSIONS")
	if strings.TrimSpace(exts) == "" {
		exts = defaultExtensions
	}
	allowedExt := make(map[string]bool)
	for _, ext := range strings.Split(exts, ",") {
		if ext = strings.TrimSpace(strings.ToLower(ext)); ext != "" {
			allowedExt[ext] = true
		}
	}

	sizeMB := defaultMaxSizeMB
	if v := os.Getenv("MAX_UPLOAD_SIZE_MB"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			sizeMB = parsed
		}
	}

	return &FileValidator{
		allowedExt: allowedExt,
		maxSize:    int64(sizeMB) << 20,
	}
}

// ValidateFile checks the upload against the limits and returns the
// normalized extension.
func (v *FileValidator) ValidateFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > v.maxSize {
		return "", fmt.Errorf("file too large (max %d MB)", v.maxSize>>20)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !v.allowedExt[ext] {
		return "", fmt.Errorf("invalid file extension %q", ext)
	}
	return ext, nil
}
