package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guswanstore/guswanmy/internal/models"
)

func TestStorage_Users(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	err := storage.RegisterUser(ctx, models.User{Email: "buyer@example.com", PasswordHash: "hashed"})
	require.NoError(t, err)

	got, err := storage.GetUserByEmail(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", got.Email)
	assert.Equal(t, "hashed", got.PasswordHash)
	assert.False(t, got.CreatedAt.IsZero())

	// duplicate email hits the primary key
	err = storage.RegisterUser(ctx, models.User{Email: "buyer@example.com", PasswordHash: "other"})
	require.Error(t, err)

	_, err = storage.GetUserByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_Orders_InsertionOrderAndFilters(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	factory.CreateOrder(t, "PAY-11111111-AAAAAA", "a@example.com", []string{"Guswan Bot"}, 25000, models.MethodQRIS, models.StatusPending)
	factory.CreateOrder(t, "PAY-22222222-BBBBBB", "b@example.com", []string{"Guswan Script"}, 100000, models.MethodDana, models.StatusCompleted)
	factory.CreateOrder(t, "PAY-33333333-CCCCCC", "a@example.com", []string{"Guswan Executor"}, 15000, models.MethodOVO, models.StatusPending)

	// unfiltered list preserves insertion order
	all, err := storage.ListOrders(ctx, models.OrderFilter{}, 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "PAY-11111111-AAAAAA", all[0].ID)
	assert.Equal(t, "PAY-22222222-BBBBBB", all[1].ID)
	assert.Equal(t, "PAY-33333333-CCCCCC", all[2].ID)

	// owner filter
	mine, err := storage.ListOrders(ctx, models.OrderFilter{Owner: "a@example.com"}, 10, 0)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	// status filter
	pending, err := storage.ListOrders(ctx, models.OrderFilter{Status: models.StatusPending}, 10, 0)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	// combined
	both, err := storage.ListOrders(ctx, models.OrderFilter{Owner: "a@example.com", Status: models.StatusPending}, 10, 0)
	require.NoError(t, err)
	require.Len(t, both, 2)
}

func TestStorage_Orders_StatusUpdate(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	order := models.Order{
		ID:            "PAY-12345678-ABC123",
		Email:         "buyer@example.com",
		Items:         []string{"Guswan Bot", "Guswan Script"},
		Total:         125000,
		PaymentMethod: models.MethodGoPay,
		Status:        models.StatusPending,
		ProofImage:    "data:image/png;base64,AAAA",
		Timestamp:     time.Now().UTC(),
	}
	require.NoError(t, storage.CreateOrder(ctx, order))

	got, err := storage.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Items, got.Items)
	assert.Equal(t, order.Total, got.Total)
	assert.Equal(t, models.StatusPending, got.Status)

	count, err := storage.UpdateOrderStatus(ctx, order.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err = storage.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)

	count, err = storage.UpdateOrderStatus(ctx, "PAY-00000000-XXXXXX", models.StatusCompleted)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStorage_Resellers(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	r := models.Reseller{
		ID:         uuid.New().String(),
		Email:      "seller@example.com",
		Name:       "Budi",
		JoinDate:   time.Now().UTC(),
		Sales:      10,
		Commission: 150000,
	}
	require.NoError(t, storage.CreateReseller(ctx, r))

	ok, err := storage.IsReseller(ctx, "seller@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = storage.IsReseller(ctx, "user@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := storage.GetResellerByEmail(ctx, "seller@example.com")
	require.NoError(t, err)
	assert.Equal(t, r.Name, got.Name)
	assert.Equal(t, r.Sales, got.Sales)
	assert.Equal(t, r.Commission, got.Commission)

	list, err := storage.ListResellers(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStorage_Products(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	p := models.Product{
		ID:          "custom-1",
		Name:        "Custom Script",
		Description: "admin authored",
		Icon:        "sparkles",
		Color:       "from-pink-500 to-rose-500",
		Pricing:     []models.PriceTier{{Duration: "Permanent", Price: 50000}},
	}
	require.NoError(t, storage.CreateProduct(ctx, "script", p))

	overlay, err := storage.ListProducts(ctx)
	require.NoError(t, err)
	require.Contains(t, overlay, "script")
	require.Len(t, overlay["script"], 1)
	assert.Equal(t, p, overlay["script"][0])
}
