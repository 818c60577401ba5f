package render

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
)

// Options controls what is emitted and how the viewport is padded
type Options struct {
	FontSize      float64 // base font size; scaled by each text's size multiplier
	MarginPercent float64 // viewport padding per side, percent of the larger dimension
	Workers       int     // parallel instance resolution; <= 0 means GOMAXPROCS

	// JunctionRadius is the drawn dot radius. Dots at the drawing's edge
	// widen the viewport by this much.
	JunctionRadius float64

	NoText             bool // drop every text, flag labels included
	NoSchematicComment bool
	NoSpiceDirective   bool
	NoSymbolText       bool // texts drawn inside symbol definitions
	NoComponentName    bool // window slot 0
	NoComponentValue   bool // window slots 3 and 123

	Logger *slog.Logger
}

// DefaultOptions returns default rendering options (all text enabled)
func DefaultOptions() Options {
	return Options{
		FontSize:       16,
		MarginPercent:  10,
		Workers:        runtime.GOMAXPROCS(0),
		JunctionRadius: 4.5,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// keepText applies the text switches
func (o Options) keepText(t model.ResolvedText) bool {
	if o.NoText {
		return false
	}
	switch t.Source {
	case model.FromSchematic:
		if t.Kind == model.TextComment && o.NoSchematicComment {
			return false
		}
		if t.Kind == model.TextDirective && o.NoSpiceDirective {
			return false
		}
	case model.FromSymbol:
		return !o.NoSymbolText
	case model.FromWindow:
		switch t.Window {
		case model.WindowInstName:
			return !o.NoComponentName
		case model.WindowValue, model.WindowValue2:
			return !o.NoComponentValue
		}
	}
	return true
}
