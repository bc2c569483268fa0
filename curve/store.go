package curve

import (
	"fmt"
	"sync"
)

// EventKind says what happened to the curves named in an Event.
type EventKind int

const (
	Added EventKind = iota
	Updated
	Removed
	// Batched events cover every curve touched between BeginBatch and the
	// matching EndBatch.
	Batched
)

func (k EventKind) String() string {
	switch k {
	case Added:
		return "added"
	case Updated:
		return "updated"
	case Removed:
		return "removed"
	case Batched:
		return "batched"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is delivered to subscribers after a change is visible in the store.
type Event struct {
	Kind EventKind
	IDs  []ID
}

// Store is a concurrency-safe collection of curves in insertion order.
// One curve is active: the one chosen with SetActive, else the first.
type Store struct {
	mu     sync.RWMutex
	curves map[ID]*Curve
	order  []ID
	active ID

	listeners map[int]func(Event)
	nextSub   int

	batchDepth int
	pending    []ID
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		curves:    make(map[ID]*Curve),
		listeners: make(map[int]func(Event)),
	}
}

// Subscribe registers fn for change events and returns a function that
// removes it. fn runs on the goroutine that made the change, outside the
// store lock, and must be safe for concurrent use.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Add inserts curves. A curve whose ID is already present replaces it.
func (s *Store) Add(curves ...*Curve) {
	if len(curves) == 0 {
		return
	}

	ids := make([]ID, 0, len(curves))

	s.mu.Lock()
	for _, c := range curves {
		if _, ok := s.curves[c.id]; !ok {
			s.order = append(s.order, c.id)
		}
		s.curves[c.id] = c
		ids = append(ids, c.id)
	}
	fire := s.record(Added, ids)
	s.mu.Unlock()

	fire()
}

// Get returns the current snapshot of a curve.
func (s *Store) Get(id ID) (*Curve, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.curves[id]
	return c, ok
}

// Active returns the active curve.
func (s *Store) Active() (*Curve, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.curves[s.active]; ok {
		return c, nil
	}
	if len(s.order) == 0 {
		return nil, fmt.Errorf("%w: store is empty", ErrNotFound)
	}
	return s.curves[s.order[0]], nil
}

// SetActive selects the active curve.
func (s *Store) SetActive(id ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.curves[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.active = id
	return nil
}

// Curves returns the current snapshots in insertion order.
func (s *Store) Curves() []*Curve {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Curve, len(s.order))
	for i, id := range s.order {
		out[i] = s.curves[id]
	}
	return out
}

// IDs returns the curve IDs in insertion order.
func (s *Store) IDs() []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]ID(nil), s.order...)
}

// Len returns the number of curves.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// SetBaseline replaces the baseline of curve id in one step and notifies
// subscribers once. On error the stored curve is unchanged.
func (s *Store) SetBaseline(id ID, baseline []float64) error {
	s.mu.Lock()
	c, ok := s.curves[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	next, err := c.withBaseline(baseline)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.curves[id] = next
	fire := s.record(Updated, []ID{id})
	s.mu.Unlock()

	fire()
	return nil
}

// SwapBaseline is SetBaseline conditioned on the stored snapshot still
// being expected, typically the curve the baseline was computed from. If
// the curve was replaced or updated since, ErrConflict is returned and
// nothing changes.
func (s *Store) SwapBaseline(expected *Curve, baseline []float64) error {
	s.mu.Lock()
	c, ok := s.curves[expected.id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, expected.id)
	}
	if c != expected {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrConflict, expected.id)
	}

	next, err := c.withBaseline(baseline)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.curves[expected.id] = next
	fire := s.record(Updated, []ID{expected.id})
	s.mu.Unlock()

	fire()
	return nil
}

// Replace swaps in a derived snapshot of an existing curve, e.g. one
// returned by WithDisplayed.
func (s *Store) Replace(c *Curve) error {
	s.mu.Lock()
	if _, ok := s.curves[c.id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, c.id)
	}
	s.curves[c.id] = c
	fire := s.record(Updated, []ID{c.id})
	s.mu.Unlock()

	fire()
	return nil
}

// Remove deletes a curve. Removing an unknown ID is a no-op.
func (s *Store) Remove(id ID) {
	s.mu.Lock()
	if _, ok := s.curves[id]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.curves, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.active == id {
		s.active = ""
	}
	fire := s.record(Removed, []ID{id})
	s.mu.Unlock()

	fire()
}

// Clear removes every curve.
func (s *Store) Clear() {
	s.mu.Lock()
	ids := s.order
	s.curves = make(map[ID]*Curve)
	s.order = nil
	s.active = ""
	fire := s.record(Removed, ids)
	s.mu.Unlock()

	fire()
}

// BeginBatch defers notifications until the matching EndBatch. Batches
// nest.
func (s *Store) BeginBatch() {
	s.mu.Lock()
	s.batchDepth++
	s.mu.Unlock()
}

// EndBatch closes a batch. When the outermost batch ends and anything
// changed, subscribers receive a single Batched event.
func (s *Store) EndBatch() {
	s.mu.Lock()
	if s.batchDepth == 0 {
		s.mu.Unlock()
		return
	}
	s.batchDepth--

	var fire func()
	if s.batchDepth == 0 && len(s.pending) > 0 {
		ids := dedupe(s.pending)
		s.pending = nil
		fire = s.notifier(Event{Kind: Batched, IDs: ids})
	}
	s.mu.Unlock()

	if fire != nil {
		fire()
	}
}

// record must be called with s.mu held. It returns the notification to run
// once the lock is released; inside a batch that is a no-op.
func (s *Store) record(kind EventKind, ids []ID) func() {
	if len(ids) == 0 {
		return func() {}
	}
	if s.batchDepth > 0 {
		s.pending = append(s.pending, ids...)
		return func() {}
	}
	return s.notifier(Event{Kind: kind, IDs: append([]ID(nil), ids...)})
}

func (s *Store) notifier(ev Event) func() {
	fns := make([]func(Event), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	return func() {
		for _, fn := range fns {
			fn(ev)
		}
	}
}

func dedupe(ids []ID) []ID {
	seen := make(map[ID]bool, len(ids))
	out := make([]ID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
