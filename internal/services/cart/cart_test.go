package cart_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guswanstore/guswanmy/internal/models"
	"github.com/guswanstore/guswanmy/internal/services/cart"
)

// fakeCache is an in-memory stand-in for the redis cache.
type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(key string, result any) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, result)
}

func (f *fakeCache) Set(key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeCache) Invalidate(key string) error {
	delete(f.data, key)
	return nil
}

func newService() *cart.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	return cart.NewService(newFakeCache(), time.Hour, logger)
}

func line(id string, price int64, qty int) models.CartLine {
	return models.CartLine{ID: id, Name: "product " + id, Price: price, Quantity: qty}
}

func TestCartService_TotalMatchesLines(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	email := "buyer@example.com"

	_, err := svc.AddLine(ctx, email, line("bot-1m", 25000, 2))
	require.NoError(t, err)
	_, err = svc.AddLine(ctx, email, line("script-perm", 100000, 1))
	require.NoError(t, err)
	c, err := svc.AddLine(ctx, email, line("exec-1w", 15000, 3))
	require.NoError(t, err)

	// total always equals the sum of price*quantity over the lines
	var want int64
	for _, l := range c.Lines {
		want += l.Price * int64(l.Quantity)
	}
	assert.Equal(t, want, c.Total())
	assert.Equal(t, int64(25000*2+100000+15000*3), c.Total())

	c, err = svc.RemoveLine(ctx, email, "script-perm")
	require.NoError(t, err)
	assert.Equal(t, int64(25000*2+15000*3), c.Total())
}

func TestCartService_AddMergesSameLine(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	email := "buyer@example.com"

	_, err := svc.AddLine(ctx, email, line("bot-1m", 25000, 1))
	require.NoError(t, err)
	c, err := svc.AddLine(ctx, email, line("bot-1m", 25000, 2))
	require.NoError(t, err)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 3, c.Lines[0].Quantity)
	assert.Equal(t, int64(75000), c.Total())
}

func TestCartService_RemoveAbsentLineIsNoop(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	email := "buyer@example.com"

	_, err := svc.AddLine(ctx, email, line("bot-1m", 25000, 1))
	require.NoError(t, err)

	c, err := svc.RemoveLine(ctx, email, "does-not-exist")
	require.NoError(t, err)
	assert.Len(t, c.Lines, 1)
	assert.Equal(t, int64(25000), c.Total())
}

func TestCartService_MissingCartReadsEmpty(t *testing.T) {
	svc := newService()

	c, err := svc.Get(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, c.Lines)
	assert.Zero(t, c.Total())
}

func TestCartService_ClearLinesByIdentity(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	email := "buyer@example.com"

	// two different lines sharing the same display name
	_, err := svc.AddLine(ctx, email, models.CartLine{ID: "bot-1m", Name: "Guswan Bot", Price: 25000, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddLine(ctx, email, models.CartLine{ID: "bot-perm", Name: "Guswan Bot", Price: 200000, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.ClearLines(ctx, email, []string{"bot-1m"}))

	c, err := svc.Get(ctx, email)
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "bot-perm", c.Lines[0].ID)
}
