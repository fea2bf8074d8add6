package widgets

import (
	"fmt"
	"sync"
	"time"
)

// DefaultClearDelay is how long after closing the current image is kept,
// so an exit transition never shows a blank frame.
const DefaultClearDelay = 300 * time.Millisecond

// Lightbox is the image viewer state machine: closed, or open at an index
// into the image list. Arrow navigation wraps in both directions.
type Lightbox struct {
	mu         sync.Mutex
	images     []string
	index      int
	open       bool
	current    string // retained until the clear delay elapses after close
	clearDelay time.Duration
	clearTimer *time.Timer
}

// NewLightbox creates a closed lightbox over the given image list.
func NewLightbox(images []string) *Lightbox {
	return &Lightbox{images: images, clearDelay: DefaultClearDelay}
}

// Open transitions to open(i). The index is bounds-checked against the
// image list. Opening cancels a pending clear from an earlier close.
func (l *Lightbox) Open(i int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.images) {
		return fmt.Errorf("lightbox index %d out of range [0,%d)", i, len(l.images))
	}
	if l.clearTimer != nil {
		l.clearTimer.Stop()
		l.clearTimer = nil
	}
	l.open = true
	l.index = i
	l.current = l.images[i]
	return nil
}

// Navigate moves by direction (-1 left, +1 right) while open, wrapping at
// both ends. It is a no-op when closed or the image list is empty.
func (l *Lightbox) Navigate(direction int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.open || len(l.images) == 0 {
		return
	}
	count := len(l.images)
	l.index = (l.index + direction + count) % count
	l.current = l.images[l.index]
}

// Close transitions to closed. The current image is kept until the clear
// delay elapses so the exit transition has something to show.
func (l *Lightbox) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.open {
		return
	}
	l.open = false
	if l.clearTimer != nil {
		l.clearTimer.Stop()
	}
	l.clearTimer = time.AfterFunc(l.clearDelay, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if !l.open {
			l.current = ""
		}
	})
}

// IsOpen reports whether the lightbox is open.
func (l *Lightbox) IsOpen() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.open
}

// Index returns the current index; only meaningful while open.
func (l *Lightbox) Index() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index
}

// Current returns the displayed image source. After a close it stays set
// until the clear delay has elapsed.
func (l *Lightbox) Current() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}
