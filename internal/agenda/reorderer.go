package agenda

import (
	"sync"
	"time"
)

// DefaultCommitDelay is the latency inserted between a reorder gesture and
// its commit.
const DefaultCommitDelay = 800 * time.Millisecond

// Reorderer stages moves on a Store and commits each one after a delay.
// A newer move or load supersedes an older one; the superseded commit
// fires but is rejected by the store's generation check.
type Reorderer struct {
	store    *Store
	delay    time.Duration
	onCommit func(applied bool, p Pending)

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// NewReorderer wraps store. onCommit may be nil; it runs on the timer
// goroutine after every fired commit attempt.
func NewReorderer(store *Store, delay time.Duration, onCommit func(applied bool, p Pending)) *Reorderer {
	if delay < 0 {
		delay = 0
	}
	return &Reorderer{store: store, delay: delay, onCommit: onCommit}
}

// Move stages from -> to and schedules the commit. After Close it returns
// ErrClosed and onCommit is never called.
func (r *Reorderer) Move(from, to int) (Pending, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return Pending{}, ErrClosed
	}
	p, err := r.store.StageMove(from, to)
	if err != nil {
		return Pending{}, err
	}
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(r.delay, func() {
		applied := r.store.Commit(p.Generation)
		if r.onCommit != nil {
			r.onCommit(applied, p)
		}
	})
	return p, nil
}

// Close stops the pending timer and closes the store so a commit already
// in flight is dropped.
func (r *Reorderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.store.Close()
}
