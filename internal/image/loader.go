// Package image provides utilities for loading generated images back from
// disk and for discovering the labelled files of a dataset.
package image

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp" // Register BMP format
)

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path.
	Load(path string) (image.Image, error)
	// Dimensions reads the width and height without decoding pixels.
	Dimensions(path string) (width, height int, err error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
// Supported formats: PNG, BMP.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if err := checkFile(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return img, nil
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".png", ".bmp"}
}

// isImageFile checks if a file has a supported image extension.
func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}

// Dimensions returns the size of the image at path from its header.
func (l *FileLoader) Dimensions(path string) (width, height int, err error) {
	if err := checkFile(path); err != nil {
		return 0, 0, err
	}
	return GetImageDimensions(path)
}

// checkFile validates that path names an existing regular file.
func checkFile(path string) error {
	// Validate path.
	if path == "" {
		return fmt.Errorf("image path cannot be empty")
	}

	// Check if file exists.
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image file not found: %s", path)
		}
		return fmt.Errorf("failed to stat image file: %w", err)
	}

	// Check if it's a directory.
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	return nil
}

// GetImageDimensions returns the width and height of an image without fully loading it.
func GetImageDimensions(path string) (width, height int, err error) {
	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image config: %w", err)
	}

	return config.Width, config.Height, nil
}

// Entry is one labelled image of a dataset.
type Entry struct {
	Path  string
	Label int
}

// ScanDataset finds every image laid out as <root>/<label>/<file>, where
// label is a non-negative integer. Directories with other names, nested
// directories and files with unsupported extensions are skipped. Entries are
// sorted by label, then path.
func ScanDataset(root string) ([]Entry, error) {
	dirs, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset directory: %w", err)
	}

	var entries []Entry
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		label, err := strconv.Atoi(dir.Name())
		if err != nil || label < 0 {
			continue
		}

		labelDir := filepath.Join(root, dir.Name())
		files, err := os.ReadDir(labelDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read label directory %s: %w", labelDir, err)
		}
		for _, f := range files {
			if f.IsDir() || !isImageFile(f.Name()) {
				continue
			}
			entries = append(entries, Entry{Path: filepath.Join(labelDir, f.Name()), Label: label})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Label != entries[j].Label {
			return entries[i].Label < entries[j].Label
		}
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}
