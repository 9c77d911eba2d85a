package display

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// Spinner is the progress indicator shown while jobs run. It animates on its
// own goroutine and clears its line when stopped. Stop is safe to call more
// than once.
type Spinner struct {
	message string
	writer  io.Writer
	active  bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
}

func NewSpinner(w io.Writer, message string) *Spinner {
	return &Spinner{message: message, writer: w}
}

func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return
	}
	s.active = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.animate()
}

func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	close(s.stopCh)
	s.mu.Unlock()

	<-s.doneCh
}

func (s *Spinner) animate() {
	defer close(s.doneCh)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-s.stopCh:
			s.clearLine()
			return
		case <-ticker.C:
			fmt.Fprintf(s.writer, "\r%s %s", spinnerFrames[frame%len(spinnerFrames)], s.message)
			frame++
		}
	}
}

func (s *Spinner) clearLine() {
	fmt.Fprintf(s.writer, "\r%*s\r", len(s.message)+2, "")
}
