package render

import (
	"fmt"
	"image/color"

	"github.com/mattn/go-runewidth"

	"github.com/calvike/fovea/internal/canvas"
	"github.com/calvike/fovea/internal/term"
)

// Cell is the fallback backend for terminals without pixel graphics.
// The anchor snaps to the nearest character cell; the terminal owns the
// font, so only display-cell widths matter here.
type Cell struct {
	port  term.Port
	theme canvas.Theme
	cols  int
	rows  int
	drawn bool
}

// NewCell builds the character-cell backend over the given port.
func NewCell(port term.Port, theme canvas.Theme) *Cell {
	return &Cell{port: port, theme: theme, cols: 80, rows: 24}
}

// Init reads the cell grid size, keeping the 80x24 default when the tty
// will not say.
func (c *Cell) Init() error {
	if cols, rows, err := term.CellSize(); err == nil {
		c.cols, c.rows = cols, rows
	}
	return nil
}

// RenderWord prints the word on the reading row with the anchor cluster
// at the center column, prefix to its left in the text color, anchor in
// the highlight color.
func (c *Cell) RenderWord(word string, anchor int) error {
	prefix, anchorCluster, suffix, err := canvas.SplitAnchor(word, anchor)
	if err != nil {
		return err
	}

	row := c.rows / 2
	startCol := c.cols/2 - runewidth.StringWidth(prefix)
	if startCol < 1 {
		startCol = 1
	}

	cmd := fmt.Sprintf("\x1b[%d;1H\x1b[2K\x1b[%d;%dH%s%s%s%s%s%s\x1b[0m",
		row, row, startCol,
		sgrForeground(c.theme.Text), prefix,
		sgrForeground(c.theme.Anchor), anchorCluster,
		sgrForeground(c.theme.Text), suffix,
	)
	if _, err := c.port.Write([]byte(cmd)); err != nil {
		return fmt.Errorf("failed to render word: %w", err)
	}
	if err := c.port.Flush(); err != nil {
		return fmt.Errorf("failed to flush word: %w", err)
	}
	c.drawn = true
	return nil
}

// Clear blanks the reading row.
func (c *Cell) Clear() error {
	if !c.drawn {
		return nil
	}
	cmd := fmt.Sprintf("\x1b[%d;1H\x1b[2K", c.rows/2)
	if _, err := c.port.Write([]byte(cmd)); err != nil {
		return fmt.Errorf("failed to clear reading row: %w", err)
	}
	if err := c.port.Flush(); err != nil {
		return fmt.Errorf("failed to flush clear: %w", err)
	}
	c.drawn = false
	return nil
}

// SupportsSubpixelOVP reports cell-level snapping only.
func (c *Cell) SupportsSubpixelOVP() bool { return false }

// Cleanup blanks the reading row and resets colors.
func (c *Cell) Cleanup() error {
	if err := c.Clear(); err != nil {
		return err
	}
	if _, err := c.port.Write([]byte("\x1b[0m")); err != nil {
		return fmt.Errorf("failed to reset colors: %w", err)
	}
	return c.port.Flush()
}

func sgrForeground(c color.RGBA) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}
