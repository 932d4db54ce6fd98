// Package frame schedules per-frame callbacks for the host loop. Callbacks are independent:
// each has its own subscription and can be cancelled without touching the others.
package frame

// Callback receives the host's monotonic time in seconds.
type Callback func(now float64)

type subscription struct {
	id        int
	cb        Callback
	cancelled bool
}

// Scheduler runs every live callback once per Dispatch, in subscription order.
// It is single-threaded: Subscribe, cancel, Stop, and Dispatch must be called from the loop goroutine.
type Scheduler struct {
	subs    []*subscription
	nextID  int
	stopped bool
	ticks   uint64
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Subscribe registers cb and returns its cancel func. Cancelling twice is harmless.
// A callback subscribed during Dispatch first runs on the next Dispatch.
func (s *Scheduler) Subscribe(cb Callback) (cancel func()) {
	s.nextID++
	sub := &subscription{id: s.nextID, cb: cb}
	s.subs = append(s.subs, sub)
	return func() { sub.cancelled = true }
}

// Dispatch runs one tick. Callbacks cancelled before their turn in this tick are skipped.
func (s *Scheduler) Dispatch(now float64) {
	if s.stopped {
		return
	}
	s.ticks++
	live := s.subs[:len(s.subs):len(s.subs)]
	for _, sub := range live {
		if sub.cancelled {
			continue
		}
		sub.cb(now)
	}
	s.compact()
}

func (s *Scheduler) compact() {
	kept := s.subs[:0]
	for _, sub := range s.subs {
		if !sub.cancelled {
			kept = append(kept, sub)
		}
	}
	for i := len(kept); i < len(s.subs); i++ {
		s.subs[i] = nil
	}
	s.subs = kept
}

// Stop ends the loop: Stopped reports true and further Dispatch calls do nothing.
func (s *Scheduler) Stop() {
	s.stopped = true
}

// Stopped reports whether Stop was called.
func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// live is the number of live subscriptions.
func (s *Scheduler) live() int {
	n := 0
	for _, sub := range s.subs {
		if !sub.cancelled {
			n++
		}
	}
	return n
}
