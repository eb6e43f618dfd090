// Package dataset turns rendered samples into a labelled image dataset on
// disk and checks existing datasets against their labels.
//
// Images are stored as <root>/<shapes>/<id>.<ext>; the directory name is
// the label.
package dataset

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"
)

// Format is an output image encoding.
type Format string

const (
	// FormatPNG writes lossless 3-channel PNG (default).
	FormatPNG Format = "png"
	// FormatBMP writes 24-bit uncompressed BMP.
	FormatBMP Format = "bmp"
)

// Formats returns the supported output formats.
func Formats() []Format {
	return []Format{FormatPNG, FormatBMP}
}

// ParseFormat converts a string, case-insensitively, to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	if slices.Contains(Formats(), f) {
		return f, nil
	}
	return "", fmt.Errorf("invalid format: %s (valid: png, bmp)", s)
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// ID names the image rendered from seed: its 16 lowercase hex digits.
func ID(seed int64) string {
	return fmt.Sprintf("%016x", uint64(seed)) // #nosec G115 -- bit pattern only
}

// Writer places encoded images under Root.
type Writer struct {
	Root   string
	Format Format
}

// NewWriter returns a Writer for root. An empty format means PNG.
func NewWriter(root string, format Format) *Writer {
	if format == "" {
		format = FormatPNG
	}
	return &Writer{Root: root, Format: format}
}

// PathFor returns <root>/<shapes>/<id>.<ext>.
func (w *Writer) PathFor(shapes int, id string) string {
	return filepath.Join(w.Root, strconv.Itoa(shapes), id+w.Format.Ext())
}

// Write encodes img to path, creating parent directories as needed.
func (w *Writer) Write(path string, img image.Image) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { // #nosec G301 - Dataset directories need standard permissions
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := os.Create(path) // #nosec G304 - Output path is built from the dataset root
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := Encode(f, img, w.Format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// Encode writes img to out in the given format.
func Encode(out io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG, "":
		return png.Encode(out, img)
	case FormatBMP:
		return bmp.Encode(out, img)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
