package term

// Geometry is an immutable snapshot of the terminal's pixel and cell
// dimensions. Refresh by re-querying the viewport.
type Geometry struct {
	PixelWidth  int
	PixelHeight int
	Cols        int
	Rows        int
	CellWidth   float64
	CellHeight  float64
}

// NewGeometry derives per-cell pixel sizes from the raw measurements.
func NewGeometry(pixelWidth, pixelHeight, cols, rows int) Geometry {
	g := Geometry{
		PixelWidth:  pixelWidth,
		PixelHeight: pixelHeight,
		Cols:        cols,
		Rows:        rows,
	}
	if cols > 0 {
		g.CellWidth = float64(pixelWidth) / float64(cols)
	}
	if rows > 0 {
		g.CellHeight = float64(pixelHeight) / float64(rows)
	}
	return g
}

// DefaultGeometry is the fallback used when the terminal does not answer
// dimension queries in time.
func DefaultGeometry() Geometry {
	return NewGeometry(1280, 720, 80, 24)
}

// CellToPixel converts a cell coordinate to the pixel coordinate of its
// top-left corner.
func (g Geometry) CellToPixel(col, row int) (int, int) {
	return int(float64(col) * g.CellWidth), int(float64(row) * g.CellHeight)
}

// RectToPixel converts a cell rectangle to a pixel rectangle.
func (g Geometry) RectToPixel(col, row, cols, rows int) (x, y, w, h int) {
	x, y = g.CellToPixel(col, row)
	w = int(float64(cols) * g.CellWidth)
	h = int(float64(rows) * g.CellHeight)
	return x, y, w, h
}
