// Package cart holds a customer's selected classes until booking
// commits or the customer removes them. Items are snapshots of the
// class record at selection time, not live catalog reads.
package cart

import (
	"sync"

	"github.com/google/uuid"

	"yogabooking/internal/domain/models"
)

// Snapshot is what observers receive after every mutation, enough to
// keep a running "Your Cart (n)" label and total current.
type Snapshot struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

type Observer func(Snapshot)

type Cart struct {
	mu        sync.Mutex
	items     []models.ClassRecord
	observers []Observer
}

func New() *Cart {
	return &Cart{}
}

// Subscribe registers an observer called after every mutation.
func (c *Cart) Subscribe(fn Observer) {
	c.mu.Lock()
	c.observers = append(c.observers, fn)
	c.mu.Unlock()
}

// Add puts a class snapshot in the cart. Adding a class already present
// (by ID) is a no-op.
func (c *Cart) Add(class models.ClassRecord) {
	c.mu.Lock()
	for _, it := range c.items {
		if it.ID == class.ID {
			c.mu.Unlock()
			return
		}
	}
	c.items = append(c.items, class)
	c.notifyAndUnlock()
}

// Remove drops the item with the given class ID and reports whether it
// was present.
func (c *Cart) Remove(classID string) bool {
	c.mu.Lock()
	for i, it := range c.items {
		if it.ID == classID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.notifyAndUnlock()
			return true
		}
	}
	c.mu.Unlock()
	return false
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.notifyAndUnlock()
}

// Items returns a copy of the cart content in insertion order.
func (c *Cart) Items() []models.ClassRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.ClassRecord(nil), c.items...)
}

func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Total sums the item prices.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalLocked()
}

func (c *Cart) totalLocked() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Price
	}
	return total
}

// notifyAndUnlock snapshots under the lock, then releases it before
// calling observers so they may call back into the cart.
func (c *Cart) notifyAndUnlock() {
	snap := Snapshot{Count: len(c.items), Total: c.totalLocked()}
	observers := append([]Observer(nil), c.observers...)
	c.mu.Unlock()
	for _, fn := range observers {
		fn(snap)
	}
}

// Manager tracks server-side carts by ID, one per browsing session.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

func (m *Manager) Create() (string, *Cart) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.NewString()
	c := New()
	m.carts[id] = c
	return id, c
}

func (m *Manager) Get(id string) (*Cart, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[id]
	return c, ok
}
