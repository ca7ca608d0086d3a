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

// CreateTestSlot inserts an enabled availability slot and returns its ID.
func CreateTestSlot(t *testing.T, db DBLike, start, end time.Time, maxBookings int) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO availability_slots (id, slot_date, start_at, end_at, max_bookings, is_available) VALUES ($1, $2, $3, $4, $5, true)",
		slotID, start.Format("2006-01-02"), start, end, maxBookings)
	require.NoError(t, err)

	return slotID
}

// CreateTestBooking inserts a booking row directly, bypassing the write
// path, for seeding conflict and occupancy scenarios.
func CreateTestBooking(t *testing.T, db DBLike, userID uuid.UUID, start time.Time, durationMin int, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO bookings (
			id, user_id, service_type, start_at, duration_min, status,
			street, city, region, postal_code,
			fee_base_cents, fee_distance_cents, fee_total_cents, fee_miles, fee_travel_min
		) VALUES ($1, $2, 'cold_plunge', $3, $4, $5, '500 Test St', 'Austin', 'TX', '78701', 7999, 0, 7999, 3, 6)`,
		bookingID, userID, start, durationMin, status)
	require.NoError(t, err)

	return bookingID
}

// SeedReferenceData exists for parity with ResetDB; the schema has no
// static reference tables, slots and bookings are seeded per test.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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
