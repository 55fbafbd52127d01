package term

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Viewport queries and caches terminal geometry. "Dimensions unknown" is
// an explicit state: callers either check Geometry's second result or
// take GeometryOrDefault.
type Viewport struct {
	port Port
	geo  *Geometry
}

// ErrBadReply reports a geometry reply that did not match the expected
// grammar.
var ErrBadReply = errors.New("malformed geometry reply")

// NewViewport builds a viewport over the given port with no geometry yet.
func NewViewport(port Port) *Viewport {
	return &Viewport{port: port}
}

// Refresh issues the two dimension queries: CSI 14t for the text area
// pixel size (reply ESC[4;height;width t) and CSI 18t for the cell grid
// (reply ESC[8;rows;cols t). On any failure the cached geometry is left
// untouched and the error returned; a slow terminal costs at most the
// timeout per query, never an unbounded block.
func (v *Viewport) Refresh(timeout time.Duration) error {
	pixelHeight, pixelWidth, err := v.queryPair("\x1b[14t", 4, timeout)
	if err != nil {
		return fmt.Errorf("failed to query pixel size: %w", err)
	}
	rows, cols, err := v.queryPair("\x1b[18t", 8, timeout)
	if err != nil {
		return fmt.Errorf("failed to query cell grid: %w", err)
	}

	geo := NewGeometry(pixelWidth, pixelHeight, cols, rows)
	v.geo = &geo
	return nil
}

// queryPair runs one CSI t query and parses the two numeric fields from
// a reply of the form ESC [ code ; first ; second t.
func (v *Viewport) queryPair(request string, code int, timeout time.Duration) (int, int, error) {
	reply, err := Query(v.port, []byte(request), 't', timeout)
	if err != nil {
		return 0, 0, err
	}
	return parseReply(reply, code)
}

func parseReply(reply []byte, code int) (int, int, error) {
	s := string(reply)
	start := strings.Index(s, "\x1b[")
	if start < 0 || !strings.HasSuffix(s, "t") {
		return 0, 0, ErrBadReply
	}
	body := strings.TrimSuffix(s[start+2:], "t")
	fields := strings.Split(body, ";")
	if len(fields) != 3 {
		return 0, 0, ErrBadReply
	}
	got, err := strconv.Atoi(fields[0])
	if err != nil || got != code {
		return 0, 0, ErrBadReply
	}
	first, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, ErrBadReply
	}
	second, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, ErrBadReply
	}
	if first <= 0 || second <= 0 {
		return 0, 0, ErrBadReply
	}
	return first, second, nil
}

// Geometry returns the cached snapshot and whether one exists.
func (v *Viewport) Geometry() (Geometry, bool) {
	if v.geo == nil {
		return Geometry{}, false
	}
	return *v.geo, true
}

// GeometryOrDefault returns the cached snapshot, falling back to
// DefaultGeometry when dimensions are unknown.
func (v *Viewport) GeometryOrDefault() Geometry {
	if g, ok := v.Geometry(); ok {
		return g
	}
	return DefaultGeometry()
}
