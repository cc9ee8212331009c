// Package cart keeps a process-local mirror of the signed-in user's
// server-side cart. The server owns the cart; the mirror is a cache
// rebuilt wholesale after every mutation, so the displayed state is
// never more than one round trip behind and never locally patched.
package cart

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/sokastore/soka/internal/api"
	"github.com/sokastore/soka/internal/models"
	"github.com/sokastore/soka/internal/types"
)

// API is the slice of the store client the mirror drives.
type API interface {
	Authenticated() bool
	GetCart(ctx context.Context) ([]models.CartItem, error)
	AddToCart(ctx context.Context, input api.CartAddInput) error
	UpdateCartItem(ctx context.Context, itemID int64, quantity int) error
	RemoveCartItem(ctx context.Context, itemID int64) error
	ClearCart(ctx context.Context) error
}

var _ API = (*api.Client)(nil)

type Mirror struct {
	api    API
	notify types.Notifier

	mu      sync.Mutex
	items   []models.CartItem
	loading bool

	// Refreshes are numbered; a response is applied only if no
	// later-issued refresh has landed first, so whichever reply wins
	// the race is also the newest server state.
	seq     uint64
	applied uint64
}

func New(apiClient API, notifier types.Notifier) *Mirror {
	return &Mirror{
		api:    apiClient,
		notify: notifier,
	}
}

// Items returns a copy of the mirrored cart lines in server order.
func (m *Mirror) Items() []models.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]models.CartItem, len(m.items))
	copy(items, m.items)
	return items
}

// Count is the sum of quantities across all lines, recomputed on every
// call so it can never drift from the items.
func (m *Mirror) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, item := range m.items {
		count += item.Quantity
	}
	return count
}

// Loading reports whether an Add is in flight.
func (m *Mirror) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Refresh replaces the mirror with the server's cart. Without a token
// the mirror empties and that is not an error. A 401 also empties it
// (the session died server-side). Transport and decode failures keep
// the previous state untouched and are logged, not surfaced.
func (m *Mirror) Refresh(ctx context.Context) error {
	if !m.api.Authenticated() {
		m.mu.Lock()
		m.seq++
		m.applied = m.seq
		m.items = nil
		m.mu.Unlock()
		return nil
	}

	m.mu.Lock()
	m.seq++
	seq := m.seq
	m.mu.Unlock()

	items, err := m.api.GetCart(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if seq <= m.applied {
		// A later refresh already landed; this response is stale.
		return nil
	}

	if err != nil {
		if api.IsUnauthorized(err) {
			m.applied = seq
			m.items = nil
			return nil
		}
		log.Printf("cart: refresh failed, keeping previous state: %v", err)
		return err
	}

	m.applied = seq
	m.items = items
	return nil
}

// Add puts a product in the server cart and resynchronizes. There is no
// optimistic local insert; correctness is favored over latency.
func (m *Mirror) Add(ctx context.Context, input api.CartAddInput) error {
	if !m.api.Authenticated() {
		m.notify.Error("Please sign in to add items to your cart")
		return nil
	}
	if input.Quantity < 1 {
		input.Quantity = 1
	}

	m.setLoading(true)
	defer m.setLoading(false)

	if err := m.api.AddToCart(ctx, input); err != nil {
		m.notify.Error(failureMessage(err, "Failed to add item to cart"))
		return err
	}

	m.notify.Success("Added to cart")
	m.Refresh(ctx)
	return nil
}

// Remove deletes one line from the server cart and resynchronizes.
// Without a token it is a silent no-op.
func (m *Mirror) Remove(ctx context.Context, itemID int64) error {
	if !m.api.Authenticated() {
		return nil
	}

	if err := m.api.RemoveCartItem(ctx, itemID); err != nil {
		m.notify.Error(failureMessage(err, "Failed to remove item from cart"))
		return err
	}

	m.notify.Success("Removed from cart")
	m.Refresh(ctx)
	return nil
}

// UpdateQuantity sets a line's quantity, clamped at 1, then
// resynchronizes. The mirror shows the old quantity until the refresh
// lands; there is no optimistic update to drift.
func (m *Mirror) UpdateQuantity(ctx context.Context, itemID int64, quantity int) error {
	if !m.api.Authenticated() {
		return nil
	}
	if quantity < 1 {
		quantity = 1
	}

	if err := m.api.UpdateCartItem(ctx, itemID, quantity); err != nil {
		m.notify.Error("Failed to update quantity")
		return err
	}

	m.Refresh(ctx)
	return nil
}

// Clear empties the server cart. On success the mirror empties
// immediately; on failure the mirror keeps its state and the error is
// only logged.
func (m *Mirror) Clear(ctx context.Context) error {
	if !m.api.Authenticated() {
		return nil
	}

	if err := m.api.ClearCart(ctx); err != nil {
		log.Printf("cart: clear failed: %v", err)
		return err
	}

	m.mu.Lock()
	m.seq++
	m.applied = m.seq
	m.items = nil
	m.mu.Unlock()

	m.notify.Success("Cart cleared")
	return nil
}

func (m *Mirror) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}

// failureMessage prefers the server's own message over the fallback.
func failureMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "request failed" {
		return apiErr.Message
	}
	return fallback
}
