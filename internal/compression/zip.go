package compression

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

func writeZip(w io.Writer, root string, files []string) error {
	zw := zip.NewWriter(w)
	for _, name := range files {
		if err := addZipEntry(zw, root, name); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish zip archive: %w", err)
	}
	return nil
}

func addZipEntry(zw *zip.Writer, root, name string) error {
	path := filepath.Join(root, filepath.FromSlash(name))
	f, err := os.Open(path) // #nosec G304 - Walked from the source directory
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("failed to build header for %s: %w", path, err)
	}
	header.Name = name
	header.Method = zip.Deflate

	dst, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to write header for %s: %w", name, err)
	}
	if _, err := io.Copy(dst, f); err != nil {
		return fmt.Errorf("failed to add %s: %w", name, err)
	}
	return nil
}

// walkZip calls fn for every regular file entry of the zip at path.
func walkZip(path string, fn func(name string, r io.Reader) error) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("failed to open zip archive: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if !f.FileInfo().Mode().IsRegular() {
			continue
		}
		if err := walkZipEntry(f, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkZipEntry(f *zip.File, fn func(name string, r io.Reader) error) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open file in archive: %w", err)
	}
	defer rc.Close()
	return fn(f.Name, rc)
}
