package hashing

import (
	"sync"
)

// ThreadSafeCounter wraps PositionCounter with mutex protection for concurrent access.
type ThreadSafeCounter struct {
	counter *PositionCounter
	mu      sync.RWMutex
}

// NewThreadSafeCounter creates a new thread-safe counter.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeCounter(maxCapacity int) *ThreadSafeCounter {
	return &ThreadSafeCounter{
		counter: NewPositionCounter(maxCapacity),
	}
}

// CheckAndAdd atomically checks whether hash was seen and records it.
func (c *ThreadSafeCounter) CheckAndAdd(hash uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counter.CheckAndAdd(hash)
}

// DuplicateCount returns the number of repeated hashes offered.
func (c *ThreadSafeCounter) DuplicateCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counter.DuplicateCount()
}

// UniqueCount returns the number of distinct hashes recorded.
func (c *ThreadSafeCounter) UniqueCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counter.UniqueCount()
}

// IsFull returns true if the counter has reached its capacity limit.
func (c *ThreadSafeCounter) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counter.IsFull()
}
