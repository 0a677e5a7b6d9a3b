package checkout_test

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guswanstore/guswanmy/internal/models"
	"github.com/guswanstore/guswanmy/internal/services/checkout"
)

var payRefRe = regexp.MustCompile(`^PAY-\d{8}-[A-Z0-9]{6}$`)

// fakeCarts is an in-memory cart backend.
type fakeCarts struct {
	mu    sync.Mutex
	carts map[string][]models.CartLine
}

func newFakeCarts() *fakeCarts {
	return &fakeCarts{carts: make(map[string][]models.CartLine)}
}

func (f *fakeCarts) put(email string, lines ...models.CartLine) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.carts[email] = lines
}

func (f *fakeCarts) Get(_ context.Context, email string) (models.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return models.Cart{Lines: append([]models.CartLine(nil), f.carts[email]...)}, nil
}

func (f *fakeCarts) ClearLines(_ context.Context, email string, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	var kept []models.CartLine
	for _, l := range f.carts[email] {
		if _, ok := drop[l.ID]; !ok {
			kept = append(kept, l)
		}
	}
	f.carts[email] = kept
	return nil
}

// fakeLedger records appended orders.
type fakeLedger struct {
	mu     sync.Mutex
	orders []models.Order
}

func (f *fakeLedger) Append(_ context.Context, order models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeLedger) all() []models.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Order(nil), f.orders...)
}

func fastConfig() checkout.Config {
	return checkout.Config{
		ProcessingDuration: 80 * time.Millisecond,
		MessageInterval:    20 * time.Millisecond,
		ProgressInterval:   10 * time.Millisecond,
		RevealDelay:        10 * time.Millisecond,
	}
}

func newService(carts *fakeCarts, ledger *fakeLedger) *checkout.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	return checkout.NewService(fastConfig(), carts, ledger, logger)
}

func waitForState(t *testing.T, svc *checkout.Service, email, state string) *checkout.Status {
	t.Helper()
	var st *checkout.Status
	require.Eventually(t, func() bool {
		var err error
		st, err = svc.Status(context.Background(), email)
		return err == nil && st.State == state
	}, 2*time.Second, 5*time.Millisecond)
	return st
}

func TestCheckout_FullCycle(t *testing.T) {
	carts := newFakeCarts()
	ledger := &fakeLedger{}
	svc := newService(carts, ledger)
	ctx := context.Background()
	email := "buyer@example.com"

	carts.put(email,
		models.CartLine{ID: "bot-1m", Name: "Guswan Bot", Price: 25000, Quantity: 2},
		models.CartLine{ID: "script-perm", Name: "Guswan Script", Price: 100000, Quantity: 1},
	)

	require.NoError(t, svc.Start(ctx, email, models.MethodQRIS))

	st, err := svc.Status(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, checkout.StateProcessing, st.State)
	assert.NotEmpty(t, st.Message)
	assert.LessOrEqual(t, st.Progress, 95)

	st = waitForState(t, svc, email, checkout.StateAwaitingProof)
	assert.Regexp(t, payRefRe, st.Reference)
	assert.Equal(t, 100, st.Progress)
	assert.Equal(t, models.MethodQRIS, st.Method)
	assert.Equal(t, int64(150000), st.Total)
	assert.ElementsMatch(t, []string{"Guswan Bot", "Guswan Script"}, st.Items)

	order, err := svc.SubmitProof(ctx, email, "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, st.Reference, order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, int64(150000), order.Total)
	assert.Equal(t, models.MethodQRIS, order.PaymentMethod)
	assert.ElementsMatch(t, []string{"Guswan Bot", "Guswan Script"}, order.Items)

	// exactly one pending order reached the ledger
	recorded := ledger.all()
	require.Len(t, recorded, 1)
	assert.Equal(t, order.ID, recorded[0].ID)

	// the ordered lines left the cart
	c, err := carts.Get(ctx, email)
	require.NoError(t, err)
	assert.Empty(t, c.Lines)

	// the flow is gone; with an empty cart the state reads idle
	st, err = svc.Status(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, checkout.StateIdle, st.State)
}

func TestCheckout_CancelLeavesNoTrace(t *testing.T) {
	carts := newFakeCarts()
	ledger := &fakeLedger{}
	svc := newService(carts, ledger)
	ctx := context.Background()
	email := "buyer@example.com"

	var cancelled int
	svc.SetCancelHook(func() { cancelled++ })

	carts.put(email, models.CartLine{ID: "bot-1m", Name: "Guswan Bot", Price: 25000, Quantity: 1})

	require.NoError(t, svc.Start(ctx, email, models.MethodDana))
	require.NoError(t, svc.Cancel(ctx, email))
	assert.Equal(t, 1, cancelled)

	// wait well past the original processing window
	time.Sleep(150 * time.Millisecond)

	assert.Empty(t, ledger.all())

	// the cart survives and the state falls back to method selection
	st, err := svc.Status(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, checkout.StateAwaitingMethod, st.State)

	// a fresh flow can start right away
	require.NoError(t, svc.Start(ctx, email, models.MethodOVO))
}

func TestCheckout_StartGuards(t *testing.T) {
	carts := newFakeCarts()
	ledger := &fakeLedger{}
	svc := newService(carts, ledger)
	ctx := context.Background()
	email := "buyer@example.com"

	err := svc.Start(ctx, email, "cash")
	assert.ErrorIs(t, err, checkout.ErrInvalidMethod)

	err = svc.Start(ctx, email, models.MethodGoPay)
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)

	carts.put(email, models.CartLine{ID: "bot-1m", Name: "Guswan Bot", Price: 25000, Quantity: 1})
	require.NoError(t, svc.Start(ctx, email, models.MethodGoPay))

	err = svc.Start(ctx, email, models.MethodGoPay)
	assert.ErrorIs(t, err, checkout.ErrFlowActive)
}

func TestCheckout_ProofGuards(t *testing.T) {
	carts := newFakeCarts()
	ledger := &fakeLedger{}
	svc := newService(carts, ledger)
	ctx := context.Background()
	email := "buyer@example.com"

	_, err := svc.SubmitProof(ctx, email, "proof")
	assert.ErrorIs(t, err, checkout.ErrNoFlow)

	carts.put(email, models.CartLine{ID: "bot-1m", Name: "Guswan Bot", Price: 25000, Quantity: 1})
	require.NoError(t, svc.Start(ctx, email, models.MethodQRIS))

	// still processing
	_, err = svc.SubmitProof(ctx, email, "proof")
	assert.ErrorIs(t, err, checkout.ErrNotAwaitingProof)

	waitForState(t, svc, email, checkout.StateAwaitingProof)

	_, err = svc.SubmitProof(ctx, email, "")
	assert.ErrorIs(t, err, checkout.ErrMissingProof)

	_, err = svc.SubmitProof(ctx, email, "proof")
	require.NoError(t, err)
	assert.Len(t, ledger.all(), 1)
}

func TestCheckout_CancelWithoutFlow(t *testing.T) {
	svc := newService(newFakeCarts(), &fakeLedger{})

	err := svc.Cancel(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, checkout.ErrNoFlow)
}

func TestCheckout_FlowsAreIndependent(t *testing.T) {
	carts := newFakeCarts()
	ledger := &fakeLedger{}
	svc := newService(carts, ledger)
	ctx := context.Background()

	carts.put("a@example.com", models.CartLine{ID: "bot-1m", Name: "Guswan Bot", Price: 25000, Quantity: 1})
	carts.put("b@example.com", models.CartLine{ID: "exec-1w", Name: "Guswan Executor", Price: 15000, Quantity: 1})

	require.NoError(t, svc.Start(ctx, "a@example.com", models.MethodQRIS))
	require.NoError(t, svc.Start(ctx, "b@example.com", models.MethodDana))

	// cancelling one flow leaves the other running to completion
	require.NoError(t, svc.Cancel(ctx, "a@example.com"))

	st := waitForState(t, svc, "b@example.com", checkout.StateAwaitingProof)
	assert.Regexp(t, payRefRe, st.Reference)

	_, err := svc.SubmitProof(ctx, "b@example.com", "proof")
	require.NoError(t, err)

	recorded := ledger.all()
	require.Len(t, recorded, 1)
	assert.Equal(t, "b@example.com", recorded[0].Email)
}
