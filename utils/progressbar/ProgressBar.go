// Package progressbar implements functionality of printing a progress
// bar to a terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ProgressBar implements a progress bar that must be manually managed.
// Increment() records progress and Display() redraws the bar in place
// on its writer.
type ProgressBar struct {
	w               io.Writer
	width           int
	maxProgress     int
	currentProgress int
	startTime       time.Time
}

// New returns a new ProgressBar that is width characters wide and
// reaches 100% after max calls to Increment()
func New(w io.Writer, width, max int) *ProgressBar {
	if width <= 0 || max <= 0 {
		panic(fmt.Sprintf("new: width and max must be positive, have %d "+
			"and %d", width, max))
	}
	return &ProgressBar{
		w:           w,
		width:       width,
		maxProgress: max,
		startTime:   time.Now(),
	}
}

// Increment increments the internal progress counter. Progress beyond
// the maximum is ignored.
func (p *ProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// Fraction returns the fraction of progress made
func (p *ProgressBar) Fraction() float64 {
	return float64(p.currentProgress) / float64(p.maxProgress)
}

// String returns the progress bar without terminal control codes
func (p *ProgressBar) String() string {
	filled := p.currentProgress * p.width / p.maxProgress

	var bar strings.Builder
	bar.WriteString("|")
	bar.WriteString(strings.Repeat("█", filled))
	bar.WriteString(strings.Repeat(" ", p.width-filled))
	bar.WriteString(fmt.Sprintf("| [%.2f%% | elapsed: %v]", p.Fraction()*100,
		time.Since(p.startTime).Truncate(time.Second)))
	return bar.String()
}

// Display redraws the progress bar on the current line of its writer
func (p *ProgressBar) Display() error {
	if _, err := fmt.Fprintf(p.w, "\r\033[K%v", p); err != nil {
		return fmt.Errorf("display: %v", err)
	}
	return nil
}

// Close moves the writer to the line after the progress bar
func (p *ProgressBar) Close() error {
	if _, err := fmt.Fprintln(p.w); err != nil {
		return fmt.Errorf("close: %v", err)
	}
	return nil
}
