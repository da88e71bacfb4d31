//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func CreateTestFoodie(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, nickname) VALUES ($1, $2, $3, 'foodie', $4) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, "foodie-"+email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}
	return userID
}

func CreateTestChef(t *testing.T, db DBLike, email, bindingCode string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, nickname, binding_code) VALUES ($1, $2, $3, 'chef', $4, $5) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, "chef-"+email, bindingCode)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}
	return userID
}

// CreateTestDish inserts a dish active on the given dates (YYYY-MM-DD).
func CreateTestDish(t *testing.T, db DBLike, chefID uuid.UUID, name string, priceCents int64, maxUnits int32, activeDates []string) uuid.UUID {
	t.Helper()

	dishID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO dishes (id, chef_id, name, price_cents, max_units, active_dates) VALUES ($1, $2, $3, $4, $5, $6::date[])",
		dishID, chefID, name, priceCents, maxUnits, activeDates)
	require.NoError(t, err)
	return dishID
}

func CreateTestBinding(t *testing.T, db DBLike, foodieID, chefID uuid.UUID, code string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO bindings (foodie_id, chef_id, binding_code) VALUES ($1, $2, $3) ON CONFLICT (foodie_id) DO NOTHING",
		foodieID, chefID, code)
	require.NoError(t, err)
}

// SeedReferenceData exists for parity with ResetDB; the schema has no
// shared reference rows, every test seeds its own users and dishes.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
