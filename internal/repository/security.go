package repository

import (
	"fmt"
	"path/filepath"
	"strings"

	"anketa/internal/core"
	"anketa/internal/record"
)

// Path resolves fileName inside the storage directory. A name that escapes the
// directory is a SecurityError; a name outside the allowed character set is a
// ValidationError. Symbolic links are not followed.
func (r *Repository) Path(fileName string) (string, error) {
	root, err := filepath.Abs(r.baseDir)
	if err != nil {
		return "", fmt.Errorf("resolve storage directory: %w", err)
	}

	path, err := filepath.Abs(filepath.Join(root, fileName))
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", fileName, err)
	}
	if !strings.HasPrefix(path, root+string(filepath.Separator)) {
		return "", &core.SecurityError{Path: fileName, Root: root}
	}

	if !record.IsValidFileName(fileName) {
		return "", &core.ValidationError{
			Field:   "file_name",
			Message: fmt.Sprintf("недопустимое имя файла %q", fileName),
		}
	}
	return path, nil
}
