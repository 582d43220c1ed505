// Package slideshow cycles the hero images on the landing page.
package slideshow

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Slide struct {
	Index  int    `json:"index"`
	Image  string `json:"image"`
	Active bool   `json:"active"`
}

type State struct {
	Current int     `json:"current"`
	Count   int     `json:"count"`
	Slides  []Slide `json:"slides"`
}

// SlideShow is safe for concurrent use: the background ticker and HTTP
// handlers both move the current slide.
type SlideShow struct {
	mu      sync.Mutex
	images  []string
	current int
	logger  *zap.Logger
}

func New(images []string, logger *zap.Logger) *SlideShow {
	if logger == nil {
		logger = zap.NewNop()
	}
	own := make([]string, len(images))
	copy(own, images)
	return &SlideShow{images: own, logger: logger}
}

func (s *SlideShow) Count() int { return len(s.images) }

// Next advances to (current+1) mod count. No-op when empty.
func (s *SlideShow) Next() State {
	return s.move(1)
}

// Previous steps back to (current-1+count) mod count. No-op when empty.
func (s *SlideShow) Previous() State {
	return s.move(-1)
}

func (s *SlideShow) move(delta int) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.images); n > 0 {
		s.current = (s.current + delta + n) % n
	}
	return s.stateLocked()
}

// Show jumps to index i, wrapped into range.
func (s *SlideShow) Show(i int) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.images); n > 0 {
		s.current = ((i % n) + n) % n
	}
	return s.stateLocked()
}

func (s *SlideShow) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *SlideShow) stateLocked() State {
	slides := make([]Slide, len(s.images))
	for i, img := range s.images {
		slides[i] = Slide{Index: i, Image: img, Active: i == s.current}
	}
	return State{Current: s.current, Count: len(s.images), Slides: slides}
}

// Run advances the slideshow every interval until ctx is done.
func (s *SlideShow) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || s.Count() == 0 {
		s.logger.Info("slideshow timer disabled", zap.Duration("interval", interval), zap.Int("slides", s.Count()))
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("slideshow timer stopped")
			return
		case <-ticker.C:
			st := s.Next()
			s.logger.Debug("slide advanced", zap.Int("current", st.Current))
		}
	}
}
