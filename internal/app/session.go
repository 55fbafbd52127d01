package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/calvike/fovea/internal/cursor"
	"github.com/calvike/fovea/internal/input"
	"github.com/calvike/fovea/internal/model"
	"github.com/calvike/fovea/internal/ovp"
	"github.com/calvike/fovea/internal/render"
	"github.com/calvike/fovea/internal/term"
	"github.com/calvike/fovea/internal/token"
)

// pausedPollTimeout keeps the paused loop responsive without spinning.
const pausedPollTimeout = 500 * time.Millisecond

// runSession reads one document from start to quit or completion. The
// whole session is one cooperative loop: poll for a key with a timeout
// equal to the current token's duration, advance on timeout, render
// synchronously in the same goroutine.
func (a *App) runSession(doc input.Document) error {
	tokens := token.Tokenize(doc.Text)
	cur := cursor.New(tokens, a.wpm, a.timingCfg)
	if _, ok := cur.Current(); !ok {
		return fmt.Errorf("document produced no tokens: %s", doc.Source)
	}

	guard, err := term.EnterRaw(a.port)
	if err != nil {
		return err
	}
	defer guard.Restore()

	if err := a.renderer.Init(); err != nil {
		return err
	}
	defer func() {
		if cerr := a.renderer.Cleanup(); cerr != nil {
			// Best-effort cleanup; the terminal is being restored anyway.
			_ = cerr
		}
	}()

	startedAt := time.Now()
	startWPM := cur.WPM()
	completed, err := a.sessionLoop(cur)
	if err != nil {
		return err
	}

	a.wpm = cur.WPM()
	a.recordSession(doc, cur, tokens, startedAt, startWPM, completed)
	return nil
}

// sessionLoop runs until quit or stream completion. It reports whether
// the stream was read to the end.
func (a *App) sessionLoop(cur *cursor.Cursor) (bool, error) {
	mode := ModeReading
	a.renderCurrent(cur)

	for {
		timeout := pausedPollTimeout
		if mode == ModeReading {
			timeout = time.Duration(cur.CurrentDuration()) * time.Millisecond
		}

		k, err := readKey(a.port, timeout)
		if err != nil {
			return false, err
		}

		switch k {
		case keyTimeout:
			if mode != ModeReading {
				continue
			}
			if cur.AtEnd() {
				return true, nil
			}
			cur.Advance()
			a.renderCurrent(cur)
		case keyQuit:
			return false, nil
		case keyPauseToggle:
			if mode == ModeReading {
				mode = ModePaused
			} else {
				mode = ModeReading
			}
		case keyNextSentence:
			if cur.JumpToNextSentence() {
				a.renderCurrent(cur)
			}
		case keyPrevSentence:
			if cur.JumpToPreviousSentence() {
				a.renderCurrent(cur)
			}
		case keyFaster:
			cur.AdjustWPM(wpmStep)
		case keySlower:
			cur.AdjustWPM(-wpmStep)
		}
	}
}

// renderCurrent displays the token under the cursor. Synthetic newline
// tokens blank the display for their duration. Resource failures skip
// the frame and leave the previous one on screen; I/O failures surface
// on a later operation.
func (a *App) renderCurrent(cur *cursor.Cursor) {
	t, ok := cur.Current()
	if !ok {
		return
	}
	if t.Text == "" {
		if err := a.renderer.Clear(); err != nil {
			a.noteRenderError(err)
		}
		return
	}
	err := a.renderer.RenderWord(t.Text, ovp.AnchorIndex(t.Text))
	if err != nil && !errors.Is(err, render.ErrNotReady) {
		a.noteRenderError(err)
	}
}

func (a *App) recordSession(doc input.Document, cur *cursor.Cursor, tokens []token.Token, startedAt time.Time, startWPM int, completed bool) {
	if a.store == nil {
		return
	}
	endedAt := time.Now()
	stats := model.SessionStats{
		StartedAt:  startedAt,
		EndedAt:    endedAt,
		Source:     doc.Source,
		Words:      countWords(tokens, len(tokens)),
		WordsRead:  countWords(tokens, cur.Index()+1),
		WPMStart:   startWPM,
		WPMEnd:     cur.WPM(),
		DurationMs: endedAt.Sub(startedAt).Milliseconds(),
		Completed:  completed,
	}
	if _, err := a.store.InsertSession(context.Background(), stats); err != nil {
		a.logErrf("failed to record session: %v\n", err)
	}
}

// countWords counts word tokens (non-synthetic) among the first n.
func countWords(tokens []token.Token, n int) int {
	count := 0
	for i := 0; i < n && i < len(tokens); i++ {
		if tokens[i].Text != "" {
			count++
		}
	}
	return count
}
