package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/jmylchreest/hexgen/internal/colour"
	"github.com/jmylchreest/hexgen/internal/synth"
)

// ManifestName is the label file written in the dataset root.
const ManifestName = "labels.jsonl"

// Record is one manifest line.
type Record struct {
	// Path is relative to the dataset root, slash separated.
	Path       string   `json:"path"`
	Shapes     int      `json:"shapes"`
	Seed       int64    `json:"seed"`
	Background string   `json:"background"`
	Colours    []string `json:"colours"`
	// MinContrast is the lowest WCAG contrast ratio between the background
	// and any shape, 0 without shapes.
	MinContrast float64 `json:"min_contrast"`
}

// NewRecord describes sample as written to path under root.
func NewRecord(root, path string, sample *synth.Sample) Record {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	colours := sample.Colours()
	hexes := make([]string, len(colours))
	shapes := make([]color.Color, len(colours))
	for i, c := range colours {
		hexes[i] = c.Hex()
		shapes[i] = c
	}

	return Record{
		Path:        filepath.ToSlash(rel),
		Shapes:      len(sample.Shapes),
		Seed:        sample.Seed,
		Background:  sample.Background.Hex(),
		Colours:     hexes,
		MinContrast: colour.MinContrastRatio(sample.Background, shapes...),
	}
}

// Manifest appends records to a labels file.
type Manifest struct {
	file *os.File
	enc  *json.Encoder
}

// OpenManifest opens the manifest in root for appending, creating root and
// the file if needed.
func OpenManifest(root string) (*Manifest, error) {
	if err := os.MkdirAll(root, 0o755); err != nil { // #nosec G301 - Dataset directories need standard permissions
		return nil, fmt.Errorf("failed to create dataset directory: %w", err)
	}
	path := filepath.Join(root, ManifestName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) // #nosec G302 G304 - Labels are meant to be shared with the images
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	return &Manifest{file: f, enc: enc}, nil
}

// Append writes one record as a single line.
func (m *Manifest) Append(r Record) error {
	if err := m.enc.Encode(r); err != nil {
		return fmt.Errorf("failed to write manifest record: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (m *Manifest) Close() error {
	return m.file.Close()
}

// ReadManifest parses every record from r.
func ReadManifest(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("failed to parse manifest line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return records, nil
}
