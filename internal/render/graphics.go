package render

import (
	"fmt"
	"time"

	"github.com/calvike/fovea/internal/canvas"
	"github.com/calvike/fovea/internal/kitty"
	"github.com/calvike/fovea/internal/term"
)

const (
	// Reading zone: top fraction of the terminal reserved for the word.
	readingZoneFraction = 0.85

	// Face height relative to a terminal cell.
	defaultFontScale = 5.0

	geometryTimeout = 250 * time.Millisecond

	cursorHome = "\x1b[H"
)

// GraphicsOptions configure the Kitty backend.
type GraphicsOptions struct {
	// FontPath overrides the embedded default face when non-empty.
	FontPath string
	// FontScale sizes the face as a multiple of cell height; zero means
	// the default.
	FontScale float64
	Theme     canvas.Theme
}

// Graphics renders words pixel-accurately through the Kitty protocol.
// One full reading-zone canvas is composed and transmitted per frame so
// a single image replaces the previous one without flicker.
type Graphics struct {
	port     term.Port
	viewport *term.Viewport
	tx       *kitty.Transmitter
	font     *canvas.Font
	opts     GraphicsOptions
}

// NewGraphics builds the Kitty backend over the given port.
func NewGraphics(port term.Port, opts GraphicsOptions) *Graphics {
	if opts.FontScale <= 0 {
		opts.FontScale = defaultFontScale
	}
	return &Graphics{
		port:     port,
		viewport: term.NewViewport(port),
		tx:       kitty.NewTransmitter(port),
		opts:     opts,
	}
}

// Init queries terminal geometry and sizes the font face from cell
// height. A terminal that will not answer the geometry queries is fine:
// the default geometry applies and rendering proceeds.
func (g *Graphics) Init() error {
	// Refresh failure leaves geometry unknown; GeometryOrDefault covers it.
	_ = g.viewport.Refresh(geometryTimeout)

	geo := g.viewport.GeometryOrDefault()
	size := geo.CellHeight * g.opts.FontScale
	if size <= 0 {
		size = term.DefaultGeometry().CellHeight * g.opts.FontScale
	}

	var (
		f   *canvas.Font
		err error
	)
	if g.opts.FontPath != "" {
		f, err = canvas.LoadFile(g.opts.FontPath, size)
	} else {
		f, err = canvas.LoadDefault(size)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize graphics renderer: %w", err)
	}
	g.font = f
	return nil
}

// RenderWord composes the frame and transmits it. The previous frame is
// deleted only after its replacement has been sent.
func (g *Graphics) RenderWord(word string, anchor int) error {
	if g.font == nil {
		return ErrNotReady
	}

	geo := g.viewport.GeometryOrDefault()
	zoneWidth := geo.PixelWidth
	zoneHeight := int(float64(geo.PixelHeight) * readingZoneFraction)

	frame, err := canvas.New(zoneWidth, zoneHeight, g.opts.Theme.Background)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotReady, err)
	}
	if err := frame.ComposeWord(g.font, g.opts.Theme, word, anchor); err != nil {
		return err
	}

	prev := g.tx.LastID()

	// The frame is placed at the zone origin; home the cursor so the
	// image anchors to the top-left cell.
	if _, err := g.port.Write([]byte(cursorHome)); err != nil {
		return fmt.Errorf("failed to position cursor: %w", err)
	}
	if _, err := g.tx.Transmit(frame.RGBA(), frame.Width(), frame.Height(), 0, 0); err != nil {
		return err
	}
	if err := g.tx.DeletePrevious(prev); err != nil {
		return err
	}
	return nil
}

// Clear deletes the most recently transmitted frame.
func (g *Graphics) Clear() error {
	return g.tx.DeleteLast()
}

// SupportsSubpixelOVP reports sub-pixel anchoring, which the graphics
// backend always provides.
func (g *Graphics) SupportsSubpixelOVP() bool { return true }

// Cleanup deletes all on-screen images and releases the font face.
func (g *Graphics) Cleanup() error {
	if err := g.tx.DeleteAll(); err != nil {
		return err
	}
	if g.font != nil {
		if err := g.font.Close(); err != nil {
			return fmt.Errorf("failed to close font: %w", err)
		}
		g.font = nil
	}
	return nil
}
