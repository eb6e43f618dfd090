// Package compression packs dataset directories into archives and unpacks
// them again.
package compression

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/hexgen/internal/security"
)

// MaxEntrySize bounds the decompressed size of a single archive entry.
const MaxEntrySize = 100 * 1024 * 1024

// Format is an archive container and compression pair.
type Format string

const (
	FormatTarXz  Format = "tar.xz"
	FormatTarGz  Format = "tar.gz"
	FormatTarBz2 Format = "tar.bz2" // read only
	FormatZip    Format = "zip"
)

// DetectFormat picks the archive format from a file name.
func DetectFormat(name string) (Format, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".tar.xz"), strings.HasSuffix(lower, ".txz"):
		return FormatTarXz, nil
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return FormatTarGz, nil
	case strings.HasSuffix(lower, ".tar.bz2"), strings.HasSuffix(lower, ".tbz2"):
		return FormatTarBz2, nil
	case strings.HasSuffix(lower, ".zip"):
		return FormatZip, nil
	default:
		return "", fmt.Errorf("unsupported archive format: %s (valid: .tar.xz, .tar.gz, .zip)", filepath.Base(name))
	}
}

// IsArchive reports whether name has a recognised archive extension.
func IsArchive(name string) bool {
	_, err := DetectFormat(name)
	return err == nil
}

// PackResult describes a written archive.
type PackResult struct {
	Path string
	// Files is the number of regular files stored.
	Files int
	// Bytes is the size of the archive on disk.
	Bytes int64
}

// ExtractResult describes an unpacked archive.
type ExtractResult struct {
	Dir   string
	Files int
}

// Pack stores every regular file under srcDir in a new archive at dest.
// Entry names are slash-separated paths relative to srcDir. A partially
// written archive is removed on error.
func Pack(srcDir, dest string) (res *PackResult, err error) {
	format, err := DetectFormat(dest)
	if err != nil {
		return nil, err
	}
	if format == FormatTarBz2 {
		return nil, fmt.Errorf("writing %s archives is not supported", format)
	}

	files, err := collectFiles(srcDir, dest)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil { // #nosec G301 - Archive directory needs standard permissions
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	out, err := os.Create(dest) // #nosec G304 - User-specified archive path, intended to be written
	if err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}
	defer func() {
		closeErr := out.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close archive: %w", closeErr)
		}
		if err != nil {
			_ = os.Remove(dest)
			res = nil
		}
	}()

	switch format {
	case FormatTarXz:
		err = writeTarXz(out, srcDir, files)
	case FormatTarGz:
		err = writeTarGz(out, srcDir, files)
	case FormatZip:
		err = writeZip(out, srcDir, files)
	}
	if err != nil {
		return nil, err
	}

	info, err := out.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat archive: %w", err)
	}
	return &PackResult{Path: dest, Files: len(files), Bytes: info.Size()}, nil
}

// collectFiles returns the slash-separated relative paths of the regular
// files under root in lexical order, leaving out skip.
func collectFiles(root, skip string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source is not a directory: %s", root)
	}

	absSkip, _ := filepath.Abs(skip)
	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if abs, _ := filepath.Abs(path); abs == absSkip {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if err := security.ValidateFilePath(rel, root); err != nil {
			return fmt.Errorf("invalid entry %s: %w", rel, err)
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk source directory: %w", err)
	}
	return files, nil
}

// List returns the names of the regular file entries in archive.
func List(archive string) ([]string, error) {
	var names []string
	err := walkArchive(archive, func(name string, _ io.Reader) error {
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Unpack extracts every regular file of archive below destDir. Entries that
// would land outside destDir are rejected.
func Unpack(archive, destDir string) (*ExtractResult, error) {
	res := &ExtractResult{Dir: destDir}
	err := walkArchive(archive, func(name string, r io.Reader) error {
		if err := security.ValidateFilePath(name, destDir); err != nil {
			return fmt.Errorf("invalid entry %s: %w", name, err)
		}
		destPath := filepath.Join(destDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil { // #nosec G301 - Dataset directories need standard permissions
			return fmt.Errorf("failed to create directory: %w", err)
		}

		out, err := os.Create(destPath) // #nosec G304 - Validated to stay within destDir
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", destPath, err)
		}
		_, copyErr := io.Copy(out, security.NewLimitedReader(r, MaxEntrySize))
		closeErr := out.Close()
		if copyErr != nil {
			return fmt.Errorf("failed to extract %s: %w", name, copyErr)
		}
		if closeErr != nil {
			return fmt.Errorf("failed to close %s: %w", destPath, closeErr)
		}

		res.Files++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// walkArchive calls fn for every regular file entry of archive in stored
// order.
func walkArchive(archive string, fn func(name string, r io.Reader) error) error {
	format, err := DetectFormat(archive)
	if err != nil {
		return err
	}
	if format == FormatZip {
		return walkZip(archive, fn)
	}

	f, err := os.Open(archive) // #nosec G304 - User-specified archive path, intended to be read
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	return walkTar(f, format, fn)
}
