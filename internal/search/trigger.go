package search

import (
	"sync"
	"time"
)

// DebounceDelay is how long after the last edit a search fires.
const DebounceDelay = 300 * time.Millisecond

// Trigger drives an Engine from live input. Edits are debounced so only
// the trailing edit within the window fires; explicit submits fire
// immediately; escape clears the field and re-searches. The pending timer
// is the only cancellable deferred operation: each new edit cancels the
// previous one.
type Trigger struct {
	engine   *Engine
	delay    time.Duration
	onResult func(Result)

	mu    sync.Mutex
	timer *time.Timer
}

// NewTrigger creates a Trigger over the engine. onResult receives the
// outcome of every fired search and may be nil.
func NewTrigger(engine *Engine, onResult func(Result)) *Trigger {
	return &Trigger{engine: engine, delay: DebounceDelay, onResult: onResult}
}

// Edit registers a text-input change. The search fires after the debounce
// window unless another edit supersedes it first.
func (t *Trigger) Edit(query string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.fire(query)
	})
}

// Submit fires a search immediately, cancelling any pending edit.
func (t *Trigger) Submit(query string) Result {
	t.cancelPending()
	return t.fire(query)
}

// Escape clears the query and restores all cards immediately.
func (t *Trigger) Escape() Result {
	t.cancelPending()
	return t.fire("")
}

func (t *Trigger) cancelPending() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Trigger) fire(query string) Result {
	res := t.engine.Search(query)
	if t.onResult != nil {
		t.onResult(res)
	}
	return res
}
