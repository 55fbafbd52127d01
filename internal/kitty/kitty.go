// Package kitty speaks the Kitty graphics protocol: APC escape commands
// carrying base64-encoded RGBA frames.
//
// Commands have the shape ESC _ G <key=value,...> ; <payload> ESC \.
// A transmit uses a=T with f=32 (32-bit RGBA), s/v for the pixel size,
// a strictly increasing image id i, and x/y placement. Payloads larger
// than the chunk limit are split across successive commands flagged
// m=1, with m=0 closing the sequence.
package kitty

import (
	"encoding/base64"
	"fmt"

	"github.com/calvike/fovea/internal/term"
)

const (
	apcStart = "\x1b_G"
	apcEnd   = "\x1b\\"

	// Maximum base64 payload bytes the protocol allows per command.
	chunkSize = 4096
)

// Transmitter sends frames to the terminal over a port. Image ids start
// at 1 and increase monotonically; the previous frame's id is retained
// so it can be deleted after its replacement is on screen.
type Transmitter struct {
	port   term.Port
	nextID uint32
	lastID uint32
}

// NewTransmitter builds a transmitter over the given port.
func NewTransmitter(port term.Port) *Transmitter {
	return &Transmitter{port: port, nextID: 1}
}

// Transmit encodes the raw RGBA buffer and sends it as one image placed
// at pixel position (x, y). It returns the id assigned to the frame.
// Every command is flushed before the next is issued so the terminal
// always receives whole commands.
func (t *Transmitter) Transmit(rgba []byte, width, height, x, y int) (uint32, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(rgba) != width*height*4 {
		return 0, fmt.Errorf("rgba buffer is %d bytes, want %d for %dx%d", len(rgba), width*height*4, width, height)
	}

	id := t.nextID
	payload := base64.StdEncoding.EncodeToString(rgba)
	chunks := splitChunks(payload)

	for i, chunk := range chunks {
		more := 1
		if i == len(chunks)-1 {
			more = 0
		}
		var cmd string
		if i == 0 {
			cmd = fmt.Sprintf("%sa=T,f=32,s=%d,v=%d,i=%d,x=%d,y=%d,m=%d;%s%s",
				apcStart, width, height, id, x, y, more, chunk, apcEnd)
		} else {
			cmd = fmt.Sprintf("%sm=%d;%s%s", apcStart, more, chunk, apcEnd)
		}
		if err := t.write(cmd); err != nil {
			return 0, fmt.Errorf("failed to transmit image %d: %w", id, err)
		}
	}

	t.lastID = id
	t.nextID++
	return id, nil
}

// DeleteLast removes the most recently transmitted image from the
// screen. No-op before the first transmit.
func (t *Transmitter) DeleteLast() error {
	if t.lastID == 0 {
		return nil
	}
	cmd := fmt.Sprintf("%sa=d,d=I,i=%d%s", apcStart, t.lastID, apcEnd)
	if err := t.write(cmd); err != nil {
		return fmt.Errorf("failed to delete image %d: %w", t.lastID, err)
	}
	t.lastID = 0
	return nil
}

// DeletePrevious removes a specific earlier frame, used after its
// replacement has been transmitted.
func (t *Transmitter) DeletePrevious(id uint32) error {
	if id == 0 {
		return nil
	}
	cmd := fmt.Sprintf("%sa=d,d=I,i=%d%s", apcStart, id, apcEnd)
	if err := t.write(cmd); err != nil {
		return fmt.Errorf("failed to delete image %d: %w", id, err)
	}
	return nil
}

// DeleteAll clears every image this session put on screen. Issued at
// shutdown.
func (t *Transmitter) DeleteAll() error {
	if err := t.write(apcStart + "a=d,d=A" + apcEnd); err != nil {
		return fmt.Errorf("failed to delete all images: %w", err)
	}
	t.lastID = 0
	return nil
}

// LastID returns the id of the most recently transmitted frame, 0 if
// none remains on screen.
func (t *Transmitter) LastID() uint32 { return t.lastID }

func (t *Transmitter) write(cmd string) error {
	if _, err := t.port.Write([]byte(cmd)); err != nil {
		return err
	}
	return t.port.Flush()
}

// splitChunks slices the base64 payload into protocol-sized pieces. The
// payload is ASCII, so byte slicing cannot split a character.
func splitChunks(payload string) []string {
	if payload == "" {
		return []string{""}
	}
	chunks := make([]string, 0, (len(payload)+chunkSize-1)/chunkSize)
	for len(payload) > chunkSize {
		chunks = append(chunks, payload[:chunkSize])
		payload = payload[chunkSize:]
	}
	return append(chunks, payload)
}
