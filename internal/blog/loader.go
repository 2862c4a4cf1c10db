package blog

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
)

var (
	ErrNotMounted = errors.New("loader has no source")
	ErrBusy       = errors.New("fetch already in flight")
	ErrExhausted  = errors.New("no more pages")
	// ErrStale is returned when the listing was remounted while a page was
	// being fetched; the late page is dropped.
	ErrStale = errors.New("listing changed while fetching")
)

// LoadFailedMessage is shown inline when a page could not be fetched.
const LoadFailedMessage = "Failed to load content. Please try again later."

// State is a snapshot of a loader.
type State struct {
	Key         string
	CurrentPage int
	Posts       []Post
	HasMore     bool
	Fetching    bool
	Error       string
	ShowAll     bool
}

// Loader accumulates the pages of one listing. Pages are fetched one at a
// time and appended in increasing order.
type Loader struct {
	mu     sync.Mutex
	log    *slog.Logger
	source Source
	gen    uint64
	state  State
}

func NewLoader(log *slog.Logger) *Loader {
	return &Loader{log: log}
}

// Mount resets the loader to src and fetches its first page.
func (l *Loader) Mount(ctx context.Context, src Source) error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.source = src
	l.state = State{
		Key:         src.Key(),
		CurrentPage: 1,
		HasMore:     true,
		Fetching:    true,
	}
	l.mu.Unlock()

	page, err := src.Fetch(ctx, 1)

	return l.apply(gen, 1, page, err)
}

// LoadMore fetches the next page. The first call permanently switches the
// listing to the all-posts grid.
func (l *Loader) LoadMore(ctx context.Context) error {
	l.mu.Lock()
	switch {
	case l.source == nil:
		l.mu.Unlock()
		return ErrNotMounted
	case l.state.Fetching:
		l.mu.Unlock()
		return ErrBusy
	case !l.state.HasMore:
		l.mu.Unlock()
		return ErrExhausted
	}

	l.state.Fetching = true
	l.state.ShowAll = true
	l.state.CurrentPage++
	next, gen, src := l.state.CurrentPage, l.gen, l.source
	l.mu.Unlock()

	page, err := src.Fetch(ctx, next)

	return l.apply(gen, next, page, err)
}

func (l *Loader) apply(gen uint64, number int, page Page, err error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen {
		l.log.Debug("dropping stale page", "key", l.state.Key, "page", number)
		return ErrStale
	}

	l.state.Fetching = false
	if err != nil {
		l.log.Error("failed to load page", "key", l.state.Key, "page", number, "error", err)
		l.state.Error = LoadFailedMessage
		l.state.HasMore = false
		return err
	}

	l.state.Posts = append(l.state.Posts, page.Posts...)
	l.state.HasMore = number < page.LastPage

	return nil
}

// DismissError hides the inline error. Paging stays halted.
func (l *Loader) DismissError() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.state.Error = ""
}

func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.state
	s.Posts = slices.Clone(l.state.Posts)
	return s
}
