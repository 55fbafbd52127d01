// Package app drives the reading application: the coarse mode machine,
// the REPL prompt, and the timed reading loop.
package app

// Mode is the coarse application state.
type Mode int

const (
	// ModeRepl waits at the prompt for a command.
	ModeRepl Mode = iota
	// ModeReading auto-advances through the token stream.
	ModeReading
	// ModePaused holds the current word until resumed.
	ModePaused
	// ModeQuit terminates the application.
	ModeQuit
)
