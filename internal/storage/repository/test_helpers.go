package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guswanstore/guswanmy/internal/models"
)

// TestDataFactory creates rows directly for integration tests.
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory creates a test data factory.
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser inserts a user row.
func (f *TestDataFactory) CreateUser(t *testing.T, email, passwordHash string) {
	_, err := f.storage.DB.Exec(`INSERT INTO users (email, password_hash) VALUES ($1, $2)`,
		email, passwordHash)
	require.NoError(t, err)
}

// CreateOrder inserts an order row.
func (f *TestDataFactory) CreateOrder(t *testing.T, id, email string, items []string, total int64, method, status string) {
	raw, err := json.Marshal(items)
	require.NoError(t, err)
	_, err = f.storage.DB.Exec(`INSERT INTO orders (id, email, items, total, payment_method, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, email, raw, total, method, status, time.Now().UTC())
	require.NoError(t, err)
}

// CreateReseller inserts a reseller row.
func (f *TestDataFactory) CreateReseller(t *testing.T, r models.Reseller) {
	_, err := f.storage.DB.Exec(`INSERT INTO resellers (id, email, name, join_date, sales, commission)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, r.Email, r.Name, r.JoinDate, r.Sales, r.Commission)
	require.NoError(t, err)
}

// setupTestDatabase starts a disposable PostgreSQL container and applies the schema.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(3*time.Minute)),
	)
	require.NoError(t, err, "failed to start container")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to build connection string")

	var storage *Storage
	for range 10 {
		storage, err = New(connStr)
		if err == nil {
			err = storage.DB.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")

	_, err = storage.DB.Exec(`
        CREATE TABLE users (
            email TEXT PRIMARY KEY,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );

        CREATE TABLE resellers (
            id UUID PRIMARY KEY,
            email TEXT NOT NULL UNIQUE,
            name TEXT NOT NULL,
            join_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            sales INT NOT NULL DEFAULT 0 CHECK (sales >= 0),
            commission BIGINT NOT NULL DEFAULT 0 CHECK (commission >= 0)
        );

        CREATE TABLE orders (
            id TEXT PRIMARY KEY,
            seq BIGSERIAL,
            email TEXT NOT NULL,
            items JSONB NOT NULL,
            total BIGINT NOT NULL CHECK (total > 0),
            payment_method TEXT NOT NULL CHECK (payment_method IN ('qris', 'dana', 'ovo', 'gopay')),
            status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'completed', 'rejected')),
            proof_image TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );

        CREATE INDEX idx_orders_email ON orders (email);
        CREATE INDEX idx_orders_status ON orders (status);

        CREATE TABLE custom_products (
            id TEXT PRIMARY KEY,
            seq BIGSERIAL,
            category TEXT NOT NULL,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            icon TEXT NOT NULL DEFAULT '',
            color TEXT NOT NULL DEFAULT '',
            pricing JSONB NOT NULL
        );
    `)
	require.NoError(t, err, "failed to create tables")

	cleanup := func() {
		if storage != nil && storage.DB != nil {
			_ = storage.DB.Close()
		}
		if pgContainer != nil {
			_ = pgContainer.Terminate(ctx)
		}
	}

	return storage, cleanup
}
