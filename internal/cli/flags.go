package cli

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/hexgen/internal/colour"
	"github.com/jmylchreest/hexgen/internal/dataset"
	"github.com/jmylchreest/hexgen/internal/seed"
	"github.com/jmylchreest/hexgen/internal/synth"
)

// formatValue is a pflag.Value for --format.
type formatValue dataset.Format

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Set(s string) error {
	format, err := dataset.ParseFormat(s)
	if err != nil {
		return err
	}
	*f = formatValue(format)
	return nil
}

func (f *formatValue) Type() string { return "format" }

// seedModeValue is a pflag.Value for --seed-mode.
type seedModeValue seed.Mode

func (m *seedModeValue) String() string { return string(*m) }

func (m *seedModeValue) Set(s string) error {
	mode, err := seed.ParseMode(s)
	if err != nil {
		return err
	}
	*m = seedModeValue(mode)
	return nil
}

func (m *seedModeValue) Type() string { return "mode" }

// colourValue is an optional colour flag; nil until set.
type colourValue struct {
	c *colour.Packed
}

func (v *colourValue) String() string {
	if v.c == nil {
		return ""
	}
	return v.c.Hex()
}

func (v *colourValue) Set(s string) error {
	c, err := colour.Parse(s)
	if err != nil {
		return err
	}
	v.c = &c
	return nil
}

func (v *colourValue) Type() string { return "colour" }

var (
	_ pflag.Value = (*formatValue)(nil)
	_ pflag.Value = (*seedModeValue)(nil)
	_ pflag.Value = (*colourValue)(nil)
)

// shapeFlags are the rendering flags shared by generate and render.
type shapeFlags struct {
	edgeLength   int
	background   colourValue
	allowOverlap bool
}

func (s *shapeFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&s.edgeLength, "edge-length", synth.DefaultEdgeLength, "hexagon edge length in pixels")
	fs.Var(&s.background, "background", "fixed background colour (#rrggbb or a name such as navy), random when unset")
	fs.BoolVar(&s.allowOverlap, "allow-overlap", false, "place shapes without keeping them apart (labels may no longer match)")
}

// config returns the generator configuration selected by the flags.
func (s *shapeFlags) config() synth.Config {
	cfg := synth.DefaultConfig()
	cfg.EdgeLength = s.edgeLength
	cfg.Background = s.background.c
	cfg.AllowOverlap = s.allowOverlap
	return cfg
}
