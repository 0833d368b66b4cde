// Package fileutils provides common file operations used throughout the
// application.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// ReadFile reads the entire contents of a file and returns it as a byte slice
func ReadFile(filePath string) ([]byte, error) {
	if !FileExists(filePath) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// ListXMLFiles returns the XML files directly inside a directory, sorted by
// name. Subdirectories are not descended into.
func ListXMLFiles(dirPath string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dirPath, "*.xml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list XML files: %w", err)
	}
	return files, nil
}

// ReplaceExtension swaps the extension of a file name, keeping the base name.
// The new extension is given without a leading dot.
func ReplaceExtension(fileName, newExt string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	return base + "." + newExt
}
