// Package export writes artifact content to files in the export directory.
package export

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"smartcontract/internal/usecase/interfaces"
)

const defaultExportDir = "./exports"

var ErrEmptyFilename = errors.New("empty export filename")

// FileExporter materializes artifact content under a configured directory.
//
// The directory comes from EXPORT_DIR (default ./exports) and is created on
// first use.

type FileExporter struct {
	dir string
}

var _ interfaces.IFileExporter = (*FileExporter)(nil)

func NewFileExporter(dir string) *FileExporter {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultExportDir
	}
	return &FileExporter{dir: dir}
}

// NewFileExporterFromEnv builds the exporter from EXPORT_DIR.
func NewFileExporterFromEnv() *FileExporter {
	return NewFileExporter(os.Getenv("EXPORT_DIR"))
}

// Export writes content verbatim and returns the absolute path written.
// The basename is sanitized so a crafted filename cannot escape the export
// directory.
func (e *FileExporter) Export(filename, content string) (string, error) {
	filename = sanitizeFilename(filename)
	if filename == "" {
		return "", ErrEmptyFilename
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		log.Printf("[export][file] mkdir failed dir=%s err=%v", e.dir, err)
		return "", err
	}

	path := filepath.Join(e.dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		log.Printf("[export][file] write failed path=%s err=%v", path, err)
		return "", err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	log.Printf("[export][file] write success path=%s bytes=%d", abs, len(content))
	return abs, nil
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == ".." {
		return ""
	}
	return name
}
