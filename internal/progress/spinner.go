// In-place console animation shown while the scrape runs. Cosmetic only; the
// spinner goroutine touches no scrape state and is joined on Stop so no
// background timer outlives the run.

package progress

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var frames = [4]string{"|", "/", "-", `\`}

type Spinner struct {
	out      io.Writer
	interval time.Duration
	done     chan struct{}
	wg       sync.WaitGroup
}

func New(out io.Writer, interval time.Duration) *Spinner {
	return &Spinner{
		out:      out,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins the animation. Call Stop exactly once afterwards; a Spinner is
// not reusable.
func (s *Spinner) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		i := 0
		for {
			select {
			case <-s.done:
				//clear the glyph
				fmt.Fprint(s.out, "\r \r")
				return
			case <-ticker.C:
				fmt.Fprintf(s.out, "\r%s", frames[i%len(frames)])
				i++
			}
		}
	}()
}

// Stop halts the animation, clears the line and waits for the goroutine to
// exit.
func (s *Spinner) Stop() {
	close(s.done)
	s.wg.Wait()
}
