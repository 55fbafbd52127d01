// Package repl parses prompt-line commands for the reader.
package repl

import (
	"strconv"
	"strings"
)

// Kind discriminates parsed commands.
type Kind int

const (
	// KindUnknown covers empty and unrecognized input.
	KindUnknown Kind = iota
	// KindQuit exits the application (:q, :quit).
	KindQuit
	// KindHelp shows command help (:h, :help).
	KindHelp
	// KindSetWPM sets the reading speed (:wpm N).
	KindSetWPM
	// KindLoadFile loads a document from a path (@path).
	KindLoadFile
	// KindLoadClipboard loads the clipboard (@@).
	KindLoadClipboard
)

// Command is one parsed prompt line.
type Command struct {
	Kind Kind
	// Arg is the file path for KindLoadFile, or the raw input for
	// KindUnknown.
	Arg string
	// WPM carries the requested speed for KindSetWPM.
	WPM int
}

// Parse interprets a prompt line. System commands start with ':',
// loading commands with '@'; everything else is unknown.
func Parse(input string) Command {
	input = strings.TrimSpace(input)
	if input == "" {
		return Command{Kind: KindUnknown, Arg: input}
	}

	if cmd, ok := strings.CutPrefix(input, ":"); ok {
		return parseSystem(input, cmd)
	}
	if rest, ok := strings.CutPrefix(input, "@"); ok {
		path := strings.TrimSpace(rest)
		if path == "" || path == "@" {
			return Command{Kind: KindLoadClipboard}
		}
		return Command{Kind: KindLoadFile, Arg: path}
	}
	return Command{Kind: KindUnknown, Arg: input}
}

func parseSystem(raw, cmd string) Command {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return Command{Kind: KindUnknown, Arg: raw}
	}
	switch fields[0] {
	case "q", "quit":
		return Command{Kind: KindQuit}
	case "h", "help":
		return Command{Kind: KindHelp}
	case "wpm":
		if len(fields) != 2 {
			return Command{Kind: KindUnknown, Arg: raw}
		}
		wpm, err := strconv.Atoi(fields[1])
		if err != nil {
			return Command{Kind: KindUnknown, Arg: raw}
		}
		return Command{Kind: KindSetWPM, WPM: wpm}
	default:
		return Command{Kind: KindUnknown, Arg: raw}
	}
}
