package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/daniilsolovey/blogfront/internal/blog"
	"github.com/google/uuid"
)

// ErrMountNotFound is returned for unknown or expired mounts.
var ErrMountNotFound = errors.New("mount not found")

// Mount is one rendered listing: the loader behind it and its share menu.
type Mount struct {
	ID     string
	Loader *blog.Loader
	Menu   *blog.ShareMenu

	touched time.Time
}

// Store keeps mounts until they have been idle for ttl.
type Store struct {
	mu     sync.Mutex
	mounts map[string]*Mount
	ttl    time.Duration
	now    func() time.Time
	log    *slog.Logger
}

func NewStore(ttl time.Duration, log *slog.Logger) *Store {
	return &Store{
		mounts: make(map[string]*Mount),
		ttl:    ttl,
		now:    time.Now,
		log:    log,
	}
}

// New registers a fresh mount.
func (s *Store) New() *Mount {
	m := &Mount{
		ID:     uuid.NewString(),
		Loader: blog.NewLoader(s.log),
		Menu:   &blog.ShareMenu{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m.touched = s.now()
	s.mounts[m.ID] = m

	return m
}

// Get returns the mount and marks it used.
func (s *Store) Get(id string) (*Mount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.mounts[id]
	if !ok {
		return nil, ErrMountNotFound
	}
	m.touched = s.now()

	return m, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.mounts, id)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.mounts)
}

// Expire drops mounts idle for longer than ttl and returns how many.
func (s *Store) Expire() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline := s.now().Add(-s.ttl)
	expired := 0
	for id, m := range s.mounts {
		if m.touched.Before(deadline) {
			delete(s.mounts, id)
			expired++
		}
	}

	return expired
}

// Run expires mounts periodically until ctx is done.
func (s *Store) Run(ctx context.Context) {
	interval := s.ttl / 2
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Expire(); n > 0 {
				s.log.Debug("expired listing mounts", "count", n)
			}
		}
	}
}
