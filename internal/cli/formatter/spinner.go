package formatter

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// lineSpinner borrows the TUI's spinner frames so `move` and `import` look
// the same outside the dashboard.
var lineSpinner = spinner.Dot

// StartSpinner animates message on w, normally stderr, until the returned
// func is called. Stopping clears the line; calling stop twice is safe.
func StartSpinner(w io.Writer, message string) (stop func()) {
	quit := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(lineSpinner.FPS)
		defer ticker.Stop()
		for frame := 0; ; frame++ {
			select {
			case <-quit:
				fmt.Fprint(w, "\r\033[K")
				return
			case <-ticker.C:
				glyph := lineSpinner.Frames[frame%len(lineSpinner.Frames)]
				fmt.Fprintf(w, "\r  %s %s", StylePurple.Render(glyph), Dim(message))
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(quit)
			<-done
		})
	}
}
