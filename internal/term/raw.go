package term

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	clearScreen    = "\x1b[2J\x1b[H"
)

// Guard holds the terminal in raw mode on the alternate screen for the
// duration of a reading session and restores it afterwards.
type Guard struct {
	port     Port
	fd       int
	oldState *term.State
}

// EnterRaw switches the terminal to raw mode, enters the alternate
// screen, and hides the cursor.
func EnterRaw(port Port) (*Guard, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	g := &Guard{port: port, fd: fd, oldState: oldState}
	if _, err := port.Write([]byte(enterAltScreen + hideCursor + clearScreen)); err != nil {
		g.Restore()
		return nil, fmt.Errorf("failed to enter alternate screen: %w", err)
	}
	if err := port.Flush(); err != nil {
		g.Restore()
		return nil, fmt.Errorf("failed to flush screen setup: %w", err)
	}
	return g, nil
}

// Restore leaves the alternate screen and returns the terminal to its
// previous mode. Safe to call more than once.
func (g *Guard) Restore() {
	if g.oldState == nil {
		return
	}
	if _, err := g.port.Write([]byte(showCursor + leaveAltScreen)); err == nil {
		// Best-effort screen restore before dropping raw mode.
		_ = g.port.Flush()
	}
	_ = term.Restore(g.fd, g.oldState)
	g.oldState = nil
}

// CellSize returns the terminal size in cells straight from the tty,
// independent of any pixel geometry query.
func CellSize() (cols, rows int, err error) {
	cols, rows, err = term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read terminal size: %w", err)
	}
	return cols, rows, nil
}
