package keyer

import (
	"sync"
	"time"
)

// Session is one in-flight Play invocation, from scheduling through
// completion or cancellation. It resolves exactly once.
type Session struct {
	id     uint64
	cancel chan struct{}
	done   chan struct{}

	once sync.Once
	mu   sync.Mutex
	err  error
}

func newSession(id uint64) *Session {
	return &Session{
		id:     id,
		cancel: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// ID is the keyer generation that created this session. Later sessions
// always have larger IDs; the zero ID is the empty-sequence session.
func (s *Session) ID() uint64 {
	return s.id
}

// Done is closed when the session completes, is cancelled, or fails.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Err returns nil while the session is still playing, nil after natural
// completion, ErrPlaybackCancelled after Stop, or the failure cause.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Wait blocks until the session resolves and returns its final error.
func (s *Session) Wait() error {
	<-s.done
	return s.Err()
}

func (s *Session) finish(err error) {
	s.once.Do(func() {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		close(s.done)
	})
}

// sleepUntil waits for an absolute deadline unless the session is
// cancelled first. Returns false on cancellation.
func (s *Session) sleepUntil(deadline time.Time) bool {
	d := time.Until(deadline)
	if d <= 0 {
		select {
		case <-s.cancel:
			return false
		default:
			return true
		}
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-s.cancel:
		return false
	}
}
