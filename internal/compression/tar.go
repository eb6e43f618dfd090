package compression

import (
	"archive/tar"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
)

func writeTarXz(w io.Writer, root string, files []string) error {
	xzw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	if err := writeTar(xzw, root, files); err != nil {
		return err
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to finish xz stream: %w", err)
	}
	return nil
}

func writeTarGz(w io.Writer, root string, files []string) error {
	gzw := gzip.NewWriter(w)
	if err := writeTar(gzw, root, files); err != nil {
		return err
	}
	if err := gzw.Close(); err != nil {
		return fmt.Errorf("failed to finish gzip stream: %w", err)
	}
	return nil
}

// writeTar writes files, relative to root, as a tar stream to w.
func writeTar(w io.Writer, root string, files []string) error {
	tw := tar.NewWriter(w)
	for _, name := range files {
		if err := addTarEntry(tw, root, name); err != nil {
			return err
		}
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finish tar archive: %w", err)
	}
	return nil
}

func addTarEntry(tw *tar.Writer, root, name string) error {
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
	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("failed to build header for %s: %w", path, err)
	}
	header.Name = name

	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", name, err)
	}
	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("failed to add %s: %w", name, err)
	}
	return nil
}

// walkTar decompresses r according to format and calls fn for every
// regular file entry.
func walkTar(r io.Reader, format Format, fn func(name string, r io.Reader) error) error {
	var src io.Reader
	switch format {
	case FormatTarXz:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return fmt.Errorf("failed to create xz reader: %w", err)
		}
		src = xzr
	case FormatTarGz:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		src = gzr
	case FormatTarBz2:
		src = bzip2.NewReader(r)
	default:
		return fmt.Errorf("not a tar format: %s", format)
	}

	tr := tar.NewReader(src)
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read tar archive: %w", err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		if err := fn(header.Name, tr); err != nil {
			return err
		}
	}
}
