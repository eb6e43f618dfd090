package dataset

import (
	"fmt"

	"github.com/jmylchreest/hexgen/internal/canvas"
	"github.com/jmylchreest/hexgen/internal/fill"
	imgutil "github.com/jmylchreest/hexgen/internal/image"
	"github.com/jmylchreest/hexgen/internal/synth"
)

// CountShapes counts the shapes on c: every 4-connected region except the
// background. It relies on shapes being kept apart and clear of the top
// left corner, so the background is a single region.
func CountShapes(c *canvas.Canvas) int {
	return len(fill.Regions(c, fill.Four)) - 1
}

// Mismatch is an image whose content disagrees with its label.
type Mismatch struct {
	Path    string
	Label   int
	Counted int
	// Err is set when the image could not be checked at all.
	Err error
}

func (m Mismatch) String() string {
	if m.Err != nil {
		return fmt.Sprintf("%s: %v", m.Path, m.Err)
	}
	return fmt.Sprintf("%s: labelled %d, counted %d", m.Path, m.Label, m.Counted)
}

// Report summarises a verification.
type Report struct {
	Checked    int
	Passed     int
	Mismatches []Mismatch
}

// OK reports whether every checked image matched its label.
func (r Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Verify checks every entry's size from its header, then loads it and
// compares the counted shapes with its label.
func Verify(entries []imgutil.Entry, loader imgutil.Loader) Report {
	var report Report
	for _, e := range entries {
		report.Checked++

		w, h, err := loader.Dimensions(e.Path)
		if err != nil {
			report.Mismatches = append(report.Mismatches, Mismatch{Path: e.Path, Label: e.Label, Err: err})
			continue
		}
		if w != synth.Size || h != synth.Size {
			report.Mismatches = append(report.Mismatches, Mismatch{
				Path:  e.Path,
				Label: e.Label,
				Err:   fmt.Errorf("image is %dx%d, want %dx%d", w, h, synth.Size, synth.Size),
			})
			continue
		}

		img, err := loader.Load(e.Path)
		if err != nil {
			report.Mismatches = append(report.Mismatches, Mismatch{Path: e.Path, Label: e.Label, Err: err})
			continue
		}

		counted := CountShapes(canvas.FromImage(img))
		if counted != e.Label {
			report.Mismatches = append(report.Mismatches, Mismatch{Path: e.Path, Label: e.Label, Counted: counted})
			continue
		}
		report.Passed++
	}
	return report
}
