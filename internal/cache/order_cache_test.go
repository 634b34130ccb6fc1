package cache_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/articurated/ordermanagement/internal/cache"
	"github.com/articurated/ordermanagement/internal/repository"
)

func TestOrderCache(t *testing.T) {
	t.Run("put then get", func(t *testing.T) {
		c := cache.NewOrderCache()
		order := &repository.Order{ID: uuid.New(), Status: repository.OrderPaid}

		c.Put(order)

		got, found := c.Get(order.ID)
		require.True(t, found)
		assert.Equal(t, order.ID, got.ID)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("miss", func(t *testing.T) {
		c := cache.NewOrderCache()

		_, found := c.Get(uuid.New())
		assert.False(t, found)
	})

	t.Run("callers cannot mutate cached entries", func(t *testing.T) {
		c := cache.NewOrderCache()
		order := &repository.Order{ID: uuid.New(), Status: repository.OrderPaid}
		c.Put(order)

		// Mutating either the original or a returned copy must not leak
		// into the cache.
		order.Status = repository.OrderCancelled
		got, _ := c.Get(order.ID)
		got.Status = repository.OrderDelivered

		fresh, found := c.Get(order.ID)
		require.True(t, found)
		assert.Equal(t, repository.OrderPaid, fresh.Status)
	})

	t.Run("invalidate removes the entry", func(t *testing.T) {
		c := cache.NewOrderCache()
		order := &repository.Order{ID: uuid.New()}
		c.Put(order)

		c.Invalidate(order.ID)

		_, found := c.Get(order.ID)
		assert.False(t, found)
		assert.Equal(t, 0, c.Len())
	})
}
