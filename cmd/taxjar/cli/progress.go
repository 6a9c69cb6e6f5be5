// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// spinnerFrames are the braille animation frames, redrawn on each
// tick while a request is outstanding.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinnerInterval is the redraw period for the animation.
const spinnerInterval = 100 * time.Millisecond

// Progress is the transient indicator shown on stderr while an API
// call is in flight. It is purely cosmetic: it only animates when
// stderr is a terminal, never writes to stdout, and is flipped to a
// success or failure glyph before any result or error output.
type Progress struct {
	writer  io.Writer
	output  *termenv.Output
	label   string
	enabled bool
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

// StartProgress begins a spinner on stderr with the given label
// (e.g. "calculating tax"). When stderr is not a terminal the
// returned Progress is inert and writes nothing.
func StartProgress(label string) *Progress {
	enabled := term.IsTerminal(int(os.Stderr.Fd()))
	return startProgress(os.Stderr, label, enabled)
}

// startProgress is StartProgress with injectable writer and enable
// state, for tests.
func startProgress(w io.Writer, label string, enabled bool) *Progress {
	progress := &Progress{
		writer:  w,
		label:   label,
		enabled: enabled,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	if !enabled {
		close(progress.done)
		return progress
	}

	progress.output = termenv.NewOutput(w)
	progress.output.HideCursor()
	go progress.spin()
	return progress
}

// spin redraws the animation until stopped.
func (p *Progress) spin() {
	defer close(p.done)

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	frame := 0
	p.draw(frame)
	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			frame++
			p.draw(frame)
		}
	}
}

// draw rewrites the current line with the next animation frame.
func (p *Progress) draw(frame int) {
	fmt.Fprint(p.writer, "\r")
	p.output.ClearLine()
	glyph := spinnerStyle.Render(spinnerFrames[frame%len(spinnerFrames)])
	fmt.Fprintf(p.writer, "%s %s", glyph, p.label)
}

// Done stops the animation and replaces it with a final state line:
// a success glyph when err is nil, a failure glyph otherwise. Safe to
// call at most once per Progress; extra calls are no-ops.
func (p *Progress) Done(err error) {
	if !p.enabled {
		return
	}
	p.once.Do(func() {
		close(p.stop)
		<-p.done

		fmt.Fprint(p.writer, "\r")
		p.output.ClearLine()
		if err != nil {
			fmt.Fprintf(p.writer, "%s %s\n", failureStyle.Render("✗"), p.label)
		} else {
			fmt.Fprintf(p.writer, "%s %s\n", successStyle.Render("✓"), p.label)
		}
		p.output.ShowCursor()
	})
}
