package blog

import (
	"context"
	"fmt"
	"sync"
)

// StatusTable holds the statuses the dashboard displays. Changes show up
// immediately and are reverted when the CMS rejects them.
type StatusTable struct {
	mu       sync.Mutex
	statuses map[int]Status
}

func NewStatusTable() *StatusTable {
	return &StatusTable{statuses: make(map[int]Status)}
}

// Reset replaces the table with the statuses of posts.
func (t *StatusTable) Reset(posts []Post) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.statuses = make(map[int]Status, len(posts))
	for i := range posts {
		t.statuses[posts[i].ID] = posts[i].Status
	}
}

func (t *StatusTable) Status(id int) (Status, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.statuses[id]
	return s, ok
}

// Change sets id to next and calls apply. When apply fails the previous
// status is restored unless another change has replaced next meanwhile.
func (t *StatusTable) Change(ctx context.Context, id int, next Status,
	apply func(ctx context.Context, id int, s Status) error) (Status, error) {

	if !next.Valid() {
		return "", fmt.Errorf("unknown status %q", next)
	}

	t.mu.Lock()
	prev, known := t.statuses[id]
	t.statuses[id] = next
	t.mu.Unlock()

	if err := apply(ctx, id, next); err != nil {
		t.mu.Lock()
		defer t.mu.Unlock()

		current := t.statuses[id]
		if current == next {
			if known {
				t.statuses[id] = prev
			} else {
				delete(t.statuses, id)
			}
			current = prev
		}
		return current, err
	}

	return next, nil
}
