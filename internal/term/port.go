// Package term wraps all escape-sequence terminal I/O behind an
// explicit port so geometry queries and graphics commands can be
// recorded or stubbed in tests.
package term

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"
)

// Port is the byte channel to the terminal. Writes carry escape-sequence
// commands; ReadByte polls terminal input with a bounded wait, serving
// both key presses and query replies through one reader.
type Port interface {
	Write(p []byte) (int, error)
	// Flush pushes buffered bytes out before the next command is issued.
	Flush() error
	// ReadByte returns the next input byte, or ErrReadTimeout when no
	// byte arrives within the timeout.
	ReadByte(timeout time.Duration) (byte, error)
}

// ErrReadTimeout reports that terminal input produced no byte in time.
var ErrReadTimeout = errors.New("terminal read timed out")

// Query writes a request and collects the reply up to and including the
// terminator byte. The whole exchange shares one deadline so a silent
// terminal cannot stall the caller.
func Query(p Port, request []byte, terminator byte, timeout time.Duration) ([]byte, error) {
	if _, err := p.Write(request); err != nil {
		return nil, fmt.Errorf("failed to write query: %w", err)
	}
	if err := p.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush query: %w", err)
	}

	deadline := time.Now().Add(timeout)
	var reply []byte
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, ErrReadTimeout
		}
		b, err := p.ReadByte(remaining)
		if err != nil {
			return nil, err
		}
		reply = append(reply, b)
		if b == terminator {
			return reply, nil
		}
	}
}

// TTYPort is the real terminal port over stdin/stdout. A single reader
// goroutine owns stdin; ReadByte multiplexes it with a timeout.
type TTYPort struct {
	out   *bufio.Writer
	bytes chan byte
	errs  chan error
}

// NewTTYPort builds a port over the process terminal and starts its
// stdin reader.
func NewTTYPort() *TTYPort {
	p := &TTYPort{
		out:   bufio.NewWriter(os.Stdout),
		bytes: make(chan byte, 256),
		errs:  make(chan error, 1),
	}
	go p.readLoop()
	return p
}

func (p *TTYPort) Write(b []byte) (int, error) {
	return p.out.Write(b)
}

func (p *TTYPort) Flush() error {
	return p.out.Flush()
}

// ReadByte returns the next stdin byte, waiting at most timeout.
func (p *TTYPort) ReadByte(timeout time.Duration) (byte, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	select {
	case b := <-p.bytes:
		return b, nil
	case err := <-p.errs:
		return 0, fmt.Errorf("failed to read terminal input: %w", err)
	case <-deadline.C:
		return 0, ErrReadTimeout
	}
}

func (p *TTYPort) readLoop() {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			p.bytes <- buf[0]
		}
		if err != nil {
			p.errs <- err
			return
		}
	}
}
