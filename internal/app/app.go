package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/calvike/fovea/internal/input"
	"github.com/calvike/fovea/internal/render"
	"github.com/calvike/fovea/internal/repl"
	"github.com/calvike/fovea/internal/store"
	"github.com/calvike/fovea/internal/term"
	"github.com/calvike/fovea/internal/timing"
)

// wpmStep is the speed change applied per +/- key press.
const wpmStep = 25

// promptPollTimeout bounds each prompt read so a stuck terminal cannot
// wedge the REPL loop.
const promptPollTimeout = time.Second

// App ties the terminal port, the renderer, and session history
// together and runs the REPL/reading mode machine.
type App struct {
	port      term.Port
	renderer  render.Renderer
	timingCfg timing.Config
	store     *store.Store
	wpm       int
}

// Options configures a new App. Store may be nil to disable session
// history.
type Options struct {
	Port      term.Port
	Renderer  render.Renderer
	TimingCfg timing.Config
	Store     *store.Store
	WPM       int
}

func New(opts Options) *App {
	return &App{
		port:      opts.Port,
		renderer:  opts.Renderer,
		timingCfg: opts.TimingCfg,
		store:     opts.Store,
		wpm:       opts.TimingCfg.ClampWPM(opts.WPM),
	}
}

// Run starts at the REPL prompt and alternates with reading sessions
// until the user quits. An initial document, when given, is read before
// the first prompt.
func (a *App) Run(initial string) error {
	if initial != "" {
		doc, err := input.Load(initial)
		if err != nil {
			return err
		}
		if err := a.runSession(doc); err != nil {
			return err
		}
	}

	a.printWelcome()
	for {
		line, err := a.readLine()
		if err != nil {
			return err
		}

		cmd := repl.Parse(line)
		switch cmd.Kind {
		case repl.KindQuit:
			return nil
		case repl.KindHelp:
			a.printHelp()
		case repl.KindSetWPM:
			a.wpm = a.timingCfg.ClampWPM(cmd.WPM)
			fmt.Printf("wpm set to %d\n", a.wpm)
		case repl.KindLoadFile:
			a.load(func() (input.Document, error) { return input.Load(cmd.Arg) })
		case repl.KindLoadClipboard:
			a.load(input.LoadClipboard)
		case repl.KindUnknown:
			if strings.TrimSpace(cmd.Arg) != "" {
				fmt.Printf("unknown command: %s (:h for help)\n", cmd.Arg)
			}
		}
	}
}

// load acquires a document and runs a reading session over it. Loader
// and session errors are reported at the prompt rather than ending the
// REPL.
func (a *App) load(loader func() (input.Document, error)) {
	doc, err := loader()
	if err != nil {
		a.logErrf("%v\n", err)
		return
	}
	if err := a.runSession(doc); err != nil {
		a.logErrf("session failed: %v\n", err)
	}
}

// readLine collects one prompt line. The terminal is in cooked mode
// here, so echo and line editing are the terminal's job; we only see
// the finished line.
func (a *App) readLine() (string, error) {
	fmt.Print("> ")
	var line []byte
	for {
		b, err := a.port.ReadByte(promptPollTimeout)
		if err != nil {
			if errors.Is(err, term.ErrReadTimeout) {
				continue
			}
			return "", err
		}
		if b == '\n' {
			return strings.TrimSuffix(string(line), "\r"), nil
		}
		line = append(line, b)
	}
}

func (a *App) printWelcome() {
	fmt.Printf("fovea ready at %d wpm. :h for help.\n", a.wpm)
}

func (a *App) printHelp() {
	fmt.Print(`commands:
  @path       read a file (text, pdf, epub)
  @@          read the clipboard
  :wpm N      set reading speed (50-1000)
  :h, :help   show this help
  :q, :quit   exit

while reading:
  space       pause / resume
  h/l, arrows previous / next sentence
  +/-         speed up / slow down
  q, ctrl-c   stop reading
`)
}

// noteRenderError reports a render failure without tearing down the
// session. The message lands on stderr after the terminal is restored.
func (a *App) noteRenderError(err error) {
	a.logErrf("render error: %v\n", err)
}

func (a *App) logErrf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
