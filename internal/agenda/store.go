// Package agenda holds the canonical ordered sequence of agenda items.
//
// All mutations go through Store. Reads go through Snapshot, which returns
// copies, so callers never alias the store's slice.
package agenda

import (
	"fmt"
	"sync"

	"github.com/alexanderramin/agendadesk/internal/domain"
	"github.com/google/uuid"
)

// Snapshot is a read-only copy of the store state.
type Snapshot struct {
	Agenda     *domain.Agenda
	Items      []domain.AgendaItem
	Busy       bool
	Generation uint64
}

// Pending identifies a staged reorder awaiting its deferred commit.
type Pending struct {
	Generation uint64
	From       int
	To         int
}

// Store is the state container for one loaded agenda.
type Store struct {
	mu     sync.Mutex
	agenda *domain.Agenda
	items  []domain.AgendaItem

	// generation increases on every load and every reorder; a staged
	// reorder commits only while its generation is still current.
	generation uint64
	staged     []string // item IDs in staged order, nil when nothing is pending
	closed     bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Load replaces the entire state. Order is reassigned from position, and
// missing or duplicate IDs get fresh ones. Any pending reorder goes stale.
func (s *Store) Load(agenda *domain.Agenda, items []domain.AgendaItem) {
	next := make([]domain.AgendaItem, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ID == "" || seen[it.ID] {
			it.ID = uuid.New().String()
		}
		seen[it.ID] = true
		if !it.Postpone.Valid() {
			it.Postpone = domain.PostponeNo
		}
		next = append(next, it)
	}
	renumber(next)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.agenda = agenda.Clone()
	s.items = next
	s.generation++
	s.staged = nil
}

// MoveItem relocates the item at from to position to and renumbers the
// sequence. It commits immediately and invalidates any staged reorder.
// Moving an item onto itself with nothing staged changes nothing, not even
// the generation.
func (s *Store) MoveItem(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRange(from, to); err != nil {
		return err
	}
	if from == to && s.staged == nil {
		return nil
	}
	s.generation++
	s.staged = nil
	if from == to {
		return nil
	}
	s.items = relocate(s.items, from, to)
	renumber(s.items)
	return nil
}

// StageMove computes the reorder of from to to against the committed
// sequence without making it visible. The returned Pending must be passed
// to Commit; staging again or loading first makes it stale.
func (s *Store) StageMove(from, to int) (Pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Pending{}, ErrClosed
	}
	if err := s.checkRange(from, to); err != nil {
		return Pending{}, err
	}
	moved := relocate(s.items, from, to)
	ids := make([]string, len(moved))
	for i, it := range moved {
		ids[i] = it.ID
	}
	s.generation++
	s.staged = ids
	return Pending{Generation: s.generation, From: from, To: to}, nil
}

// Commit applies the staged reorder if gen is still the current generation.
// It reports whether anything was applied.
func (s *Store) Commit(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.staged == nil || gen != s.generation {
		return false
	}
	byID := make(map[string]domain.AgendaItem, len(s.items))
	for _, it := range s.items {
		byID[it.ID] = it
	}
	next := make([]domain.AgendaItem, 0, len(s.staged))
	for _, id := range s.staged {
		if it, ok := byID[id]; ok {
			next = append(next, it)
		}
	}
	if len(next) != len(s.items) {
		// The committed sequence changed shape under the staged order.
		s.staged = nil
		return false
	}
	renumber(next)
	s.items = next
	s.staged = nil
	return true
}

// SetPostpone replaces the postpone flag of the item at index. Ordering and
// every other field are left alone, and a staged reorder stays valid.
func (s *Store) SetPostpone(index int, value domain.Postpone) error {
	if !value.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPostpone, value)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, index, len(s.items))
	}
	s.items[index].Postpone = value
	return nil
}

// Snapshot returns a copy of the current committed state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := domain.CloneItems(s.items)
	if items == nil {
		items = []domain.AgendaItem{}
	}
	return Snapshot{
		Agenda:     s.agenda.Clone(),
		Items:      items,
		Busy:       s.staged != nil && !s.closed,
		Generation: s.generation,
	}
}

// Busy reports whether a staged reorder is waiting for its commit.
func (s *Store) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.staged != nil && !s.closed
}

// Len returns the number of items in the committed sequence.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Close tears the store down. Later commits are ignored.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.staged = nil
}

func (s *Store) checkRange(from, to int) error {
	n := len(s.items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move %d -> %d, length %d", ErrOutOfRange, from, to, n)
	}
	return nil
}

// relocate returns a new slice with the element at from removed and
// reinserted at to. Items in between shift by one toward from.
func relocate(items []domain.AgendaItem, from, to int) []domain.AgendaItem {
	out := make([]domain.AgendaItem, 0, len(items))
	moved := items[from]
	for i, it := range items {
		if i == from {
			continue
		}
		out = append(out, it)
	}
	out = append(out, domain.AgendaItem{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}

func renumber(items []domain.AgendaItem) {
	for i := range items {
		items[i].Order = i + 1
	}
}
