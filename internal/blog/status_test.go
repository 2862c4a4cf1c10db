package blog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTable_Change(t *testing.T) {
	ctx := context.Background()
	table := NewStatusTable()
	table.Reset([]Post{{ID: 1, Status: StatusPending}, {ID: 2, Status: StatusPublished}})

	t.Run("AppliedImmediately", func(t *testing.T) {
		status, err := table.Change(ctx, 1, StatusInReview, func(ctx context.Context, id int, s Status) error {
			current, _ := table.Status(id)
			assert.Equal(t, StatusInReview, current, "change is visible before the CMS answers")
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, StatusInReview, status)

		current, ok := table.Status(1)
		assert.True(t, ok)
		assert.Equal(t, StatusInReview, current)
	})

	t.Run("RevertedOnFailure", func(t *testing.T) {
		status, err := table.Change(ctx, 2, StatusArchived, func(ctx context.Context, id int, s Status) error {
			return errors.New("forbidden")
		})
		require.Error(t, err)
		assert.Equal(t, StatusPublished, status)

		current, _ := table.Status(2)
		assert.Equal(t, StatusPublished, current)
	})

	t.Run("NewerChangeSurvivesRollback", func(t *testing.T) {
		status, err := table.Change(ctx, 2, StatusRejected, func(ctx context.Context, id int, s Status) error {
			_, err := table.Change(ctx, 2, StatusActive, func(context.Context, int, Status) error { return nil })
			require.NoError(t, err)
			return errors.New("late failure")
		})
		require.Error(t, err)
		assert.Equal(t, StatusActive, status)
	})

	t.Run("UnknownIDRemovedOnFailure", func(t *testing.T) {
		_, err := table.Change(ctx, 99, StatusActive, func(context.Context, int, Status) error {
			return errors.New("not found")
		})
		require.Error(t, err)
		_, ok := table.Status(99)
		assert.False(t, ok)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		called := false
		_, err := table.Change(ctx, 1, Status("deleted"), func(context.Context, int, Status) error {
			called = true
			return nil
		})
		require.Error(t, err)
		assert.False(t, called)
	})

	t.Run("AnyTransitionAllowed", func(t *testing.T) {
		for _, from := range Statuses {
			for _, to := range Statuses {
				table.Reset([]Post{{ID: 5, Status: from}})
				status, err := table.Change(ctx, 5, to, func(context.Context, int, Status) error { return nil })
				require.NoError(t, err)
				assert.Equal(t, to, status)
			}
		}
	})
}
