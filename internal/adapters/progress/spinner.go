// Package progress provides progress reporting sinks for long-running
// operations.
package progress

import (
	"context"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/protoscout-org/protoscout/internal/usecase"
)

// SpinnerSink reports progress with a terminal spinner.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a new spinner-based progress sink.
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// OnProgress updates the spinner with the event message.
func (s *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		if !s.spinner.Active() {
			s.spinner.Start()
		}
		suffix := " " + event.Message
		if event.Stage != "" {
			suffix = " " + color.New(color.FgYellow).Sprint(event.Stage) + " " + event.Message
		}
		s.spinner.Suffix = suffix
	} else if s.spinner.Active() {
		s.spinner.Stop()
	}
}

// Info prints an info message, pausing the spinner around it.
func (s *SpinnerSink) Info(message string) {
	s.withPausedSpinner(func() {
		color.New(color.FgCyan).Println(message)
	})
}

// Error prints an error message, pausing the spinner around it.
func (s *SpinnerSink) Error(message string) {
	s.withPausedSpinner(func() {
		color.New(color.FgRed).Println(message)
	})
}

func (s *SpinnerSink) withPausedSpinner(fn func()) {
	wasActive := s.spinner != nil && s.spinner.Active()
	if wasActive {
		s.spinner.Stop()
	}
	fn()
	if wasActive {
		s.spinner.Start()
	}
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
