package cache

import (
	"sync"

	"github.com/google/uuid"

	"github.com/articurated/ordermanagement/internal/metrics"
	"github.com/articurated/ordermanagement/internal/repository"
)

// OrderCache keeps recently read orders in memory. Values are copied on the
// way in and out so callers can never mutate a cached entry.
type OrderCache struct {
	mu    sync.RWMutex
	cache map[uuid.UUID]*repository.Order
}

func NewOrderCache() *OrderCache {
	return &OrderCache{
		cache: make(map[uuid.UUID]*repository.Order),
	}
}

func (c *OrderCache) Get(orderID uuid.UUID) (*repository.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	order, found := c.cache[orderID]
	if !found {
		return nil, false
	}
	orderCopy := *order
	return &orderCopy, true
}

func (c *OrderCache) Put(order *repository.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()
	orderCopy := *order
	c.cache[order.ID] = &orderCopy
	metrics.OrderCacheItems.Set(float64(len(c.cache)))
}

func (c *OrderCache) Invalidate(orderID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, orderID)
	metrics.OrderCacheItems.Set(float64(len(c.cache)))
}

func (c *OrderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
