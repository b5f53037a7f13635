package contact

import (
	"sync"
	"time"
)

// Registry hands out one Controller per visitor session.
type Registry struct {
	relay    Relay
	ttl      time.Duration
	observer func(session string, s State)
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	ctrl     *Controller
	lastSeen time.Time
}

// NewRegistry returns a Registry whose idle sessions expire after ttl.
// observer may be nil.
func NewRegistry(relay Relay, ttl time.Duration, observer func(session string, s State)) *Registry {
	return &Registry{
		relay:    relay,
		ttl:      ttl,
		observer: observer,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Get returns the Controller for id, creating it on first use.
func (r *Registry) Get(id string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		var obs func(State)
		if r.observer != nil {
			obs = func(st State) { r.observer(id, st) }
		}
		s = &session{ctrl: NewController(r.relay, obs)}
		r.sessions[id] = s
	}
	s.lastSeen = r.now()
	return s.ctrl
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the ttl. Sessions with a
// message in flight are kept. It returns the number removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, s := range r.sessions {
		if s.lastSeen.After(cutoff) || s.ctrl.Snapshot().Sending {
			continue
		}
		delete(r.sessions, id)
		removed++
	}
	return removed
}

// Run sweeps every interval until stop is closed.
func (r *Registry) Run(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.Sweep()
		case <-stop:
			return
		}
	}
}
