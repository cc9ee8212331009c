package cart

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokastore/soka/internal/api"
	"github.com/sokastore/soka/internal/models"
	"github.com/sokastore/soka/internal/notify"
)

// mockAPI acts as the server: it owns an authoritative cart that
// mutations change, and GetCart returns a snapshot of it.
type mockAPI struct {
	mu     sync.Mutex
	authed bool
	cart   []models.CartItem
	nextID int64
	calls  []string

	getErr    error
	addErr    error
	updateErr error
	removeErr error
	clearErr  error

	// When set, GetCart blocks until the started/release handshake
	// completes, for racing two refreshes deterministically.
	blockFirstGet bool
	getStarted    chan struct{}
	getRelease    chan struct{}
}

func newMockAPI() *mockAPI {
	return &mockAPI{authed: true, nextID: 1}
}

func (m *mockAPI) record(call string) {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()
}

func (m *mockAPI) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockAPI) Authenticated() bool { return m.authed }

func (m *mockAPI) GetCart(ctx context.Context) ([]models.CartItem, error) {
	m.record("get")

	m.mu.Lock()
	block := m.blockFirstGet
	m.blockFirstGet = false
	m.mu.Unlock()
	if block {
		m.getStarted <- struct{}{}
		<-m.getRelease
	}

	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := make([]models.CartItem, len(m.cart))
	copy(snapshot, m.cart)
	return snapshot, nil
}

func (m *mockAPI) AddToCart(ctx context.Context, input api.CartAddInput) error {
	m.record("add")
	if m.addErr != nil {
		return m.addErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart = append(m.cart, models.CartItem{
		ID:        m.nextID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Size:      input.Size,
	})
	m.nextID++
	return nil
}

func (m *mockAPI) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	m.record("update")
	if m.updateErr != nil {
		return m.updateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cart {
		if m.cart[i].ID == itemID {
			m.cart[i].Quantity = quantity
		}
	}
	return nil
}

func (m *mockAPI) RemoveCartItem(ctx context.Context, itemID int64) error {
	m.record("remove")
	if m.removeErr != nil {
		return m.removeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.cart[:0]
	for _, item := range m.cart {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	m.cart = kept
	return nil
}

func (m *mockAPI) ClearCart(ctx context.Context) error {
	m.record("clear")
	if m.clearErr != nil {
		return m.clearErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart = nil
	return nil
}

var _ API = (*mockAPI)(nil)

func newMirror(t *testing.T, server *mockAPI) (*Mirror, *notify.MockNotifier) {
	t.Helper()
	notifier := notify.NewMockNotifier()
	return New(server, notifier), notifier
}

func TestNoTokenNoNetworkCalls(t *testing.T) {
	server := newMockAPI()
	server.authed = false
	mirror, notifier := newMirror(t, server)
	ctx := context.Background()

	require.NoError(t, mirror.Add(ctx, api.CartAddInput{ProductID: 5, Quantity: 3, Size: "M"}))
	require.NoError(t, mirror.Remove(ctx, 1))
	require.NoError(t, mirror.UpdateQuantity(ctx, 1, 2))
	require.NoError(t, mirror.Clear(ctx))
	require.NoError(t, mirror.Refresh(ctx))

	assert.Zero(t, server.callCount(), "no request may leave the client without a token")
	assert.Empty(t, mirror.Items())
	assert.Zero(t, mirror.Count())
	// Only Add surfaces a notification in the signed-out case
	assert.Len(t, notifier.Errors, 1)
}

func TestMirrorMatchesServerAfterMutations(t *testing.T) {
	server := newMockAPI()
	mirror, notifier := newMirror(t, server)
	ctx := context.Background()

	require.NoError(t, mirror.Add(ctx, api.CartAddInput{ProductID: 5, Quantity: 2, Size: "M"}))
	require.NoError(t, mirror.Add(ctx, api.CartAddInput{ProductID: 9, Quantity: 1}))

	items := mirror.Items()
	require.Len(t, items, 2)
	assert.Equal(t, server.cart, items, "mirror must equal the server cart, never a locally patched value")
	assert.Equal(t, 3, mirror.Count())
	assert.Equal(t, []string{"Added to cart", "Added to cart"}, notifier.Successes)

	require.NoError(t, mirror.UpdateQuantity(ctx, items[0].ID, 5))
	assert.Equal(t, server.cart, mirror.Items())
	assert.Equal(t, 6, mirror.Count())

	require.NoError(t, mirror.Remove(ctx, items[0].ID))
	assert.Equal(t, server.cart, mirror.Items())
	assert.Equal(t, 1, mirror.Count())
}

func TestFailedUpdateLeavesMirrorUntouched(t *testing.T) {
	server := newMockAPI()
	mirror, notifier := newMirror(t, server)
	ctx := context.Background()

	require.NoError(t, mirror.Add(ctx, api.CartAddInput{ProductID: 1, Quantity: 2}))
	before := mirror.Items()

	server.updateErr = &api.Error{Status: http.StatusInternalServerError, Message: "boom"}
	err := mirror.UpdateQuantity(ctx, before[0].ID, 9)
	require.Error(t, err)

	assert.Equal(t, before, mirror.Items())
	assert.Equal(t, []string{"Failed to update quantity"}, notifier.Errors)
}

func TestRefresh401ClearsMirror(t *testing.T) {
	server := newMockAPI()
	mirror, _ := newMirror(t, server)
	ctx := context.Background()

	require.NoError(t, mirror.Add(ctx, api.CartAddInput{ProductID: 1, Quantity: 2}))
	require.NotEmpty(t, mirror.Items())

	server.getErr = &api.Error{Status: http.StatusUnauthorized, Message: "token expired"}
	require.NoError(t, mirror.Refresh(ctx))

	assert.Empty(t, mirror.Items())
	assert.Zero(t, mirror.Count())
}

func TestRefreshTransportFailureKeepsState(t *testing.T) {
	server := newMockAPI()
	mirror, notifier := newMirror(t, server)
	ctx := context.Background()

	require.NoError(t, mirror.Add(ctx, api.CartAddInput{ProductID: 1, Quantity: 2}))
	before := mirror.Items()

	server.getErr = errors.New("connection refused")
	err := mirror.Refresh(ctx)
	require.Error(t, err)

	assert.Equal(t, before, mirror.Items(), "a failed refresh must not tear the mirror")
	assert.Empty(t, notifier.Errors, "refresh failures are logged, not surfaced")
}

func TestAddFailureSurfacesServerMessage(t *testing.T) {
	server := newMockAPI()
	mirror, notifier := newMirror(t, server)

	server.addErr = &api.Error{Status: http.StatusBadRequest, Message: "Product does not exist"}
	err := mirror.Add(context.Background(), api.CartAddInput{ProductID: 999, Quantity: 1})
	require.Error(t, err)

	assert.Equal(t, []string{"Product does not exist"}, notifier.Errors)
	assert.Empty(t, mirror.Items())
	assert.False(t, mirror.Loading())
}

func TestAddClampsQuantity(t *testing.T) {
	server := newMockAPI()
	mirror, _ := newMirror(t, server)

	require.NoError(t, mirror.Add(context.Background(), api.CartAddInput{ProductID: 1, Quantity: 0}))
	require.Len(t, server.cart, 1)
	assert.Equal(t, 1, server.cart[0].Quantity)
}

func TestUpdateQuantityClampsAtOne(t *testing.T) {
	server := newMockAPI()
	mirror, _ := newMirror(t, server)
	ctx := context.Background()

	require.NoError(t, mirror.Add(ctx, api.CartAddInput{ProductID: 1, Quantity: 2}))
	id := mirror.Items()[0].ID

	require.NoError(t, mirror.UpdateQuantity(ctx, id, 0))
	assert.Equal(t, 1, mirror.Items()[0].Quantity)
}

func TestClearFailureLogsOnly(t *testing.T) {
	server := newMockAPI()
	mirror, notifier := newMirror(t, server)
	ctx := context.Background()

	require.NoError(t, mirror.Add(ctx, api.CartAddInput{ProductID: 1, Quantity: 2}))
	before := mirror.Items()

	server.clearErr = errors.New("boom")
	err := mirror.Clear(ctx)
	require.Error(t, err)

	assert.Equal(t, before, mirror.Items())
	assert.Empty(t, notifier.Errors, "clear failures are logged, not surfaced")
}

func TestClearSuccessEmptiesImmediately(t *testing.T) {
	server := newMockAPI()
	mirror, notifier := newMirror(t, server)
	ctx := context.Background()

	require.NoError(t, mirror.Add(ctx, api.CartAddInput{ProductID: 1, Quantity: 2}))
	require.NoError(t, mirror.Clear(ctx))

	assert.Empty(t, mirror.Items())
	assert.Contains(t, notifier.Successes, "Cart cleared")
}

func TestStaleRefreshDiscarded(t *testing.T) {
	server := newMockAPI()
	mirror, _ := newMirror(t, server)
	ctx := context.Background()

	require.NoError(t, mirror.Add(ctx, api.CartAddInput{ProductID: 1, Quantity: 1}))

	// Refresh A starts first and blocks inside GetCart while holding
	// the older sequence number.
	server.getStarted = make(chan struct{}, 1)
	server.getRelease = make(chan struct{})
	server.blockFirstGet = true

	done := make(chan error, 1)
	go func() {
		done <- mirror.Refresh(ctx)
	}()
	<-server.getStarted

	// Refresh B runs to completion and sees quantity 4.
	server.mu.Lock()
	server.cart[0].Quantity = 4
	server.mu.Unlock()
	require.NoError(t, mirror.Refresh(ctx))
	require.Equal(t, 4, mirror.Items()[0].Quantity)

	// Releasing A delivers the stale quantity-1 snapshot; it must be
	// discarded, not applied last-write-wins.
	server.mu.Lock()
	server.cart[0].Quantity = 1
	server.mu.Unlock()
	close(server.getRelease)
	require.NoError(t, <-done)

	assert.Equal(t, 4, mirror.Items()[0].Quantity)
}
