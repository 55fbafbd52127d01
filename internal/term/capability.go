package term

import (
	"errors"
	"os"
	"strings"
)

// Capability is the graphics support level of the hosting terminal.
type Capability int

const (
	// CapabilityNone means no pixel graphics protocol was detected.
	CapabilityNone Capability = iota
	// CapabilityKitty means the Kitty graphics protocol is available.
	CapabilityKitty
)

// ErrNoGraphics is returned when graphics rendering is required but the
// terminal advertises no supported protocol. This is a startup
// precondition failure, not something to degrade from mid-session.
var ErrNoGraphics = errors.New("terminal does not support the kitty graphics protocol (try kitty or konsole, or --force-cell for the character-cell renderer)")

// SupportsSubpixelOVP reports whether the capability allows sub-pixel
// anchor positioning.
func (c Capability) SupportsSubpixelOVP() bool {
	return c == CapabilityKitty
}

// DetectCapability inspects the environment for a Kitty-protocol
// terminal: $TERM containing "kitty" or "konsole", $TERM_PROGRAM
// containing "kitty", or $KONSOLE_VERSION set (Konsole exports it even
// under TERM=xterm-256color).
func DetectCapability() Capability {
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "kitty") || strings.Contains(term, "konsole") {
		return CapabilityKitty
	}
	if strings.Contains(strings.ToLower(os.Getenv("TERM_PROGRAM")), "kitty") {
		return CapabilityKitty
	}
	if os.Getenv("KONSOLE_VERSION") != "" {
		return CapabilityKitty
	}
	return CapabilityNone
}
