package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/metrics"
	"github.com/shopspring/decimal"
)

// CartOption configures a Cart.
type CartOption func(*Cart)

// WithMaxLines caps the number of lines the cart accepts. Zero means unlimited.
func WithMaxLines(n int) CartOption {
	return func(c *Cart) {
		if n > 0 {
			c.maxLines = n
		}
	}
}

// withIDGenerator overrides line ID generation (tests).
func withIDGenerator(fn func() string) CartOption {
	return func(c *Cart) {
		c.newID = fn
	}
}

// withBaseVersion starts the version counter at v.
func withBaseVersion(v int64) CartOption {
	return func(c *Cart) {
		c.version = v
	}
}

// Cart keeps an ordered list of priced lines for one shopping session.
// A single RWMutex guards the whole cart: reads share it, mutations hold it exclusively.
type Cart struct {
	mu        sync.RWMutex
	sessionID string
	lines     []model.CartLine
	version   int64
	updatedAt time.Time
	maxLines  int
	newID     func() string
}

// NewCart creates an empty cart for the given session.
func NewCart(sessionID string, opts ...CartOption) *Cart {
	c := &Cart{
		sessionID: sessionID,
		lines:     make([]model.CartLine, 0),
		updatedAt: time.Now(),
		newID:     func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RestoreCart rebuilds a cart from a persisted snapshot.
func RestoreCart(snap model.CartSnapshot, opts ...CartOption) *Cart {
	c := NewCart(snap.SessionID, opts...)
	c.lines = append(c.lines, snap.Lines...)
	c.version = snap.Version
	if !snap.UpdatedAt.IsZero() {
		c.updatedAt = snap.UpdatedAt
	}
	return c
}

// SessionID returns the session the cart belongs to.
func (c *Cart) SessionID() string {
	return c.sessionID
}

// AddLine appends a new priced line. Identical configurations are never merged.
func (c *Cart) AddLine(cfg model.LineConfiguration) (model.CartLine, error) {
	if cfg.Quantity <= 0 {
		metrics.RecordCartOperation("add", "invalid_quantity")
		return model.CartLine{}, ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxLines > 0 && len(c.lines) >= c.maxLines {
		metrics.RecordCartOperation("add", "cart_full")
		return model.CartLine{}, ErrCartFull
	}

	line := model.CartLine{
		ID:            c.newID(),
		Configuration: cfg,
		UnitPrice:     UnitPrice(cfg),
		Subtotal:      Subtotal(cfg),
		AddedAt:       time.Now(),
	}
	c.lines = append(c.lines, line)
	c.touch()

	metrics.RecordCartOperation("add", "success")
	return line, nil
}

// UpdateQuantity sets a line's quantity and recomputes its subtotal.
// A non-positive quantity fails with ErrInvalidQuantity and leaves the line unchanged.
func (c *Cart) UpdateQuantity(lineID string, quantity int) (model.CartLine, error) {
	if quantity <= 0 {
		metrics.RecordCartOperation("update", "invalid_quantity")
		return model.CartLine{}, ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(lineID)
	if idx < 0 {
		metrics.RecordCartOperation("update", "not_found")
		return model.CartLine{}, ErrLineNotFound
	}

	line := &c.lines[idx]
	line.Configuration.Quantity = quantity
	line.UnitPrice = UnitPrice(line.Configuration)
	line.Subtotal = Subtotal(line.Configuration)
	c.touch()

	metrics.RecordCartOperation("update", "success")
	return *line, nil
}

// RemoveLine deletes a line. Unknown IDs are ignored.
func (c *Cart) RemoveLine(lineID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(lineID)
	if idx < 0 {
		metrics.RecordCartOperation("remove", "noop")
		return
	}
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	c.touch()
	metrics.RecordCartOperation("remove", "success")
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = c.lines[:0]
	c.touch()
	metrics.RecordCartOperation("clear", "success")
}

// Total returns the sum of all line subtotals.
func (c *Cart) Total() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.total()
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []model.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyLines()
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lines)
}

// Snapshot returns a consistent copy of the cart taken under the read lock.
func (c *Cart) Snapshot() model.CartSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return model.CartSnapshot{
		SessionID: c.sessionID,
		Lines:     c.copyLines(),
		Total:     c.total(),
		Version:   c.version,
		UpdatedAt: c.updatedAt,
	}
}

func (c *Cart) total() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Subtotal)
	}
	return sum
}

func (c *Cart) copyLines() []model.CartLine {
	out := make([]model.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) indexOf(lineID string) int {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			return i
		}
	}
	return -1
}

// touch must be called with the write lock held.
func (c *Cart) touch() {
	c.version++
	c.updatedAt = time.Now()
}
