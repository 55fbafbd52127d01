package app

import (
	"errors"
	"time"

	"github.com/calvike/fovea/internal/term"
)

type key int

const (
	keyNone key = iota
	keyTimeout
	keyPauseToggle
	keyQuit
	keyNextSentence
	keyPrevSentence
	keyFaster
	keySlower
)

const escFollowTimeout = 10 * time.Millisecond

// readKey polls for one key press, waiting at most timeout. A quiet
// terminal yields keyTimeout, which the reading loop treats as the
// auto-advance tick.
func readKey(port term.Port, timeout time.Duration) (key, error) {
	b, err := port.ReadByte(timeout)
	if err != nil {
		if errors.Is(err, term.ErrReadTimeout) {
			return keyTimeout, nil
		}
		return keyNone, err
	}

	switch b {
	case ' ':
		return keyPauseToggle, nil
	case 'q', 0x03: // Ctrl-C
		return keyQuit, nil
	case '+', '=':
		return keyFaster, nil
	case '-', '_':
		return keySlower, nil
	case 'l':
		return keyNextSentence, nil
	case 'h':
		return keyPrevSentence, nil
	case 0x1b:
		return readEscapeKey(port)
	default:
		return keyNone, nil
	}
}

// readEscapeKey decodes arrow keys (ESC [ C / ESC [ D). A lone escape
// press decodes as nothing.
func readEscapeKey(port term.Port) (key, error) {
	b, err := port.ReadByte(escFollowTimeout)
	if err != nil || b != '[' {
		return keyNone, nil
	}
	b, err = port.ReadByte(escFollowTimeout)
	if err != nil {
		return keyNone, nil
	}
	switch b {
	case 'C':
		return keyNextSentence, nil
	case 'D':
		return keyPrevSentence, nil
	default:
		return keyNone, nil
	}
}
