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

func CreateWorkItem(t *testing.T, db DBLike, itemType, status string, eventDate *time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO work_items (id, item_type, status, event_date) VALUES ($1, $2, $3, $4)",
		id, itemType, status, eventDate)
	require.NoError(t, err)
	return id
}

func CreateOrderBatch(t *testing.T, db DBLike, status string, trackingNumber *string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO order_batches (id, status, tracking_number) VALUES ($1, $2, $3)",
		id, status, trackingNumber)
	require.NoError(t, err)
	return id
}

func UpdateOrderBatchStatus(t *testing.T, db DBLike, id uuid.UUID, status string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE order_batches SET status = $2, updated_at = now() WHERE id = $1", id, status)
	require.NoError(t, err)
}

type CadenceRuleRow struct {
	Key              string
	WorkItemType     string
	Status           string
	DaysMin          *int
	DaysMax          *int
	FollowUpDays     int
	BusinessDaysOnly bool
	Priority         int
	PausesFollowUp   bool
}

func InsertCadenceRule(t *testing.T, db DBLike, r CadenceRuleRow) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO cadence_rules (cadence_key, work_item_type, status, days_until_event_min, days_until_event_max,
		                           follow_up_days, business_days_only, priority, pauses_follow_up)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		r.Key, r.WorkItemType, r.Status, r.DaysMin, r.DaysMax, r.FollowUpDays, r.BusinessDaysOnly, r.Priority, r.PausesFollowUp)
	require.NoError(t, err)
}

func BatchEmailStatus(t *testing.T, db DBLike, queueID uuid.UUID) (string, *string) {
	t.Helper()

	var (
		status    string
		lastError *string
	)
	err := db.QueryRow(context.Background(),
		"SELECT status, last_error FROM batch_email_queue WHERE queue_id = $1", queueID).Scan(&status, &lastError)
	require.NoError(t, err)
	return status, lastError
}

// inserts the cadence rules every test starts from
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO cadence_rules (cadence_key, work_item_type, status, follow_up_days, business_days_only, priority, pauses_follow_up)
		VALUES
		    ('production_order/in_production', 'production_order', 'in_production', 5, true, 0, false),
		    ('production_order/on_hold', 'production_order', 'on_hold', -1, false, 0, true),
		    ('assisted_project/quoting', 'assisted_project', 'quoting', 3, false, 0, false)
		ON CONFLICT (cadence_key) DO NOTHING;
	`)
	return err
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
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
