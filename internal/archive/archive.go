package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"anketa/internal/core"
)

// Locator resolves a record file name to a safe path inside storage.
type Locator interface {
	Path(fileName string) (string, error)
}

// Archiver packs single records into zip files.
type Archiver struct {
	records Locator
	logger  core.Logger
}

// New creates an archiver reading records through records.
func New(records Locator, logger core.Logger) *Archiver {
	return &Archiver{records: records, logger: logger}
}

// Create writes <name>.zip holding the record fileName into destDir, creating destDir
// if needed, and returns the archive path.
func (a *Archiver) Create(fileName, destDir string) (string, error) {
	src, err := a.records.Path(fileName)
	if err != nil {
		return "", fmt.Errorf("archive %s: %w", fileName, err)
	}

	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &core.NotFoundError{Resource: "record", Key: fileName, Message: "Анкета не найдена: " + fileName}
		}
		return "", fmt.Errorf("open record: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", fmt.Errorf("stat record: %w", err)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("create destination: %w", err)
	}

	zipPath := filepath.Join(destDir, strings.TrimSuffix(fileName, filepath.Ext(fileName))+".zip")

	// Written next to the target and renamed into place.
	tmp, err := os.CreateTemp(destDir, ".archive-*")
	if err != nil {
		return "", fmt.Errorf("create temp archive: %w", err)
	}
	defer func() {
		if rmErr := os.Remove(tmp.Name()); rmErr != nil && !os.IsNotExist(rmErr) {
			a.logger.Warn("failed to remove temp archive", "path", tmp.Name(), "error", rmErr)
		}
	}()

	if err := writeZip(tmp, in, info, fileName); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp archive: %w", err)
	}
	if err := os.Rename(tmp.Name(), zipPath); err != nil {
		return "", fmt.Errorf("move archive into place: %w", err)
	}

	a.logger.Info("record archived", "file", fileName, "archive", zipPath)
	return zipPath, nil
}

func writeZip(w io.Writer, r io.Reader, info os.FileInfo, name string) error {
	zw := zip.NewWriter(w)

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("zip header: %w", err)
	}
	header.Name = name
	header.Method = zip.Deflate

	entry, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("zip entry: %w", err)
	}
	if _, err := io.Copy(entry, r); err != nil {
		return fmt.Errorf("zip copy: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish zip: %w", err)
	}
	return nil
}
