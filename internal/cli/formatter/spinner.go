package formatter

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// The only long wait in the flow is report preparation, which may block on
// the narrative collaborator for several seconds.
var spinnerFrames = []string{"⠃", "⠉", "⠘", "⠰", "⠤", "⠆"}

// Spinner animates a wait message while a report is being prepared. It
// writes to stderr so a redirected report stays clean.
type Spinner struct {
	message string
	out     io.Writer
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		out:     os.Stderr,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start begins the animation. Call Stop to end it and clear the line.
func (s *Spinner) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()

		for frame := 0; ; frame++ {
			select {
			case <-s.stop:
				fmt.Fprint(s.out, "\r\033[K")
				return
			case <-ticker.C:
				dot := spinnerFrames[frame%len(spinnerFrames)]
				fmt.Fprintf(s.out, "\r  %s %s", StylePurple.Render(dot), Dim(s.message))
			}
		}
	}()
}

// Stop ends the animation and waits for the line to be cleared. Safe to
// call more than once.
func (s *Spinner) Stop() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}

// StartSpinner starts a spinner and returns its stop function.
func StartSpinner(message string) func() {
	s := NewSpinner(message)
	s.Start()
	return s.Stop
}
