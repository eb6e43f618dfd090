package compression

import (
	"archive/tar"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDataset(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"0/aaaa.png":   "zero",
		"2/bbbb.png":   "two",
		"2/cccc.png":   "two again",
		"labels.jsonl": "{}\n",
	}
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	}
	return root
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{name: "set.tar.xz", want: FormatTarXz},
		{name: "set.TXZ", want: FormatTarXz},
		{name: "set.tar.gz", want: FormatTarGz},
		{name: "set.tgz", want: FormatTarGz},
		{name: "set.tar.bz2", want: FormatTarBz2},
		{name: "set.zip", want: FormatZip},
		{name: "set.rar", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, IsArchive(tt.name))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsArchive(tt.name))
		})
	}
}

func TestPackListUnpack(t *testing.T) {
	want := []string{"0/aaaa.png", "2/bbbb.png", "2/cccc.png", "labels.jsonl"}

	for _, name := range []string{"set.tar.xz", "set.tar.gz", "set.zip"} {
		t.Run(name, func(t *testing.T) {
			src := makeDataset(t)
			dest := filepath.Join(t.TempDir(), "out", name)

			res, err := Pack(src, dest)
			require.NoError(t, err)
			assert.Equal(t, dest, res.Path)
			assert.Equal(t, 4, res.Files)
			assert.Positive(t, res.Bytes)

			names, err := List(dest)
			require.NoError(t, err)
			assert.Equal(t, want, names)

			out := t.TempDir()
			extracted, err := Unpack(dest, out)
			require.NoError(t, err)
			assert.Equal(t, 4, extracted.Files)

			body, err := os.ReadFile(filepath.Join(out, "2", "cccc.png"))
			require.NoError(t, err)
			assert.Equal(t, "two again", string(body))
		})
	}
}

func TestPackSkipsArchiveInsideSource(t *testing.T) {
	src := makeDataset(t)
	dest := filepath.Join(src, "self.tar.gz")

	res, err := Pack(src, dest)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Files)

	names, err := List(dest)
	require.NoError(t, err)
	assert.NotContains(t, names, "self.tar.gz")
}

func TestPackErrors(t *testing.T) {
	src := makeDataset(t)

	_, err := Pack(src, filepath.Join(t.TempDir(), "set.rar"))
	assert.ErrorContains(t, err, "unsupported archive format")

	_, err = Pack(src, filepath.Join(t.TempDir(), "set.tar.bz2"))
	assert.ErrorContains(t, err, "not supported")

	missing := filepath.Join(t.TempDir(), "missing")
	dest := filepath.Join(t.TempDir(), "set.zip")
	_, err = Pack(missing, dest)
	assert.Error(t, err)
	assert.NoFileExists(t, dest)

	_, err = Pack(filepath.Join(src, "labels.jsonl"), dest)
	assert.ErrorContains(t, err, "not a directory")
}

func TestUnpackRejectsTraversal(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "evil.tar.gz")
	f, err := os.Create(archive)
	require.NoError(t, err)

	gzw := gzip.NewWriter(f)
	tw := tar.NewWriter(gzw)
	body := []byte("nope")
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "../escape.png", Mode: 0o600, Size: int64(len(body)), Typeflag: tar.TypeReg}))
	_, err = tw.Write(body)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gzw.Close())
	require.NoError(t, f.Close())

	out := t.TempDir()
	_, err = Unpack(archive, out)
	assert.ErrorContains(t, err, "traversal")
	assert.NoFileExists(t, filepath.Join(filepath.Dir(out), "escape.png"))
}
