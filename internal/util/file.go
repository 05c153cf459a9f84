package util

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var fileNameCleaner = regexp.MustCompile(`[^\w.]`)

// CleanFileName strips everything but word characters and dots, replacing
// spaces with underscores first so they survive as separators.
func CleanFileName(name string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	return fileNameCleaner.ReplaceAllString(cleaned, "")
}

// UniqueFilePath returns a path inside dir for origName, prefixed with a
// random key so repeated uploads of the same file never collide. The
// directory is created if missing.
func UniqueFilePath(dir, origName string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	name := fmt.Sprintf("%s_%s", uuid.NewString(), CleanFileName(origName))
	return filepath.Join(dir, name), nil
}

// UserCVDir and UserReportDir lay files out per user under the storage root.
func UserCVDir(baseDir string, userID uint) string {
	return filepath.Join(baseDir, "users", fmt.Sprint(userID), "cvs")
}

func UserReportDir(baseDir string, userID uint) string {
	return filepath.Join(baseDir, "users", fmt.Sprint(userID), "reports")
}

// RemoveFileIfExists deletes path, treating a missing file as success so
// orphan cleanup never raises a secondary error.
func RemoveFileIfExists(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
