package readstore

import (
	"context"

	"chefbook/internal/infra"
	"chefbook/internal/infra/db"
	"chefbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type EarningsReadStore struct {
	db db.DBTX
}

func NewEarningsReadStore(dbtx db.DBTX) *EarningsReadStore {
	return &EarningsReadStore{db: dbtx}
}

// Summarize computes earnings from current statuses on every call. Orders
// count only while completed, tips only while paid; there is no running
// total to drift out of sync.
func (r *EarningsReadStore) Summarize(ctx context.Context, chefID uuid.UUID) (*queries.EarningsSummaryView, error) {
	var view queries.EarningsSummaryView
	err := r.db.QueryRow(ctx, `
		SELECT
			COALESCE((SELECT SUM(total_cents) FROM orders WHERE chef_id = $1 AND status = 'completed'), 0),
			(SELECT COUNT(*) FROM orders WHERE chef_id = $1 AND status = 'completed'),
			COALESCE((SELECT SUM(amount_cents) FROM tips WHERE chef_id = $1 AND status = 'paid'), 0),
			(SELECT COUNT(*) FROM tips WHERE chef_id = $1 AND status = 'paid')`,
		chefID).Scan(
		&view.CompletedOrderCents, &view.CompletedOrderCount,
		&view.PaidTipCents, &view.PaidTipCount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to summarize earnings", err)
	}
	view.TotalCents = view.CompletedOrderCents + view.PaidTipCents
	return &view, nil
}

// ChartPoints returns one bucket per calendar day for the trailing window,
// zero-filled for days without income so chart labels stay contiguous.
func (r *EarningsReadStore) ChartPoints(ctx context.Context, chefID uuid.UUID, days int32) ([]queries.EarningsChartPoint, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			to_char(g.day, 'MM-DD'),
			COALESCE(o.cents, 0),
			COALESCE(t.cents, 0)
		FROM generate_series(
			CURRENT_DATE - ($2::int - 1), CURRENT_DATE, interval '1 day') AS g(day)
		LEFT JOIN (
			SELECT completed_at::date AS day, SUM(total_cents) AS cents
			FROM orders
			WHERE chef_id = $1 AND status = 'completed'
			GROUP BY 1) o ON o.day = g.day::date
		LEFT JOIN (
			SELECT created_at::date AS day, SUM(amount_cents) AS cents
			FROM tips
			WHERE chef_id = $1 AND status = 'paid'
			GROUP BY 1) t ON t.day = g.day::date
		ORDER BY g.day`,
		chefID, days)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to chart earnings", err)
	}
	defer rows.Close()

	points := make([]queries.EarningsChartPoint, 0, days)
	for rows.Next() {
		var p queries.EarningsChartPoint
		if err := rows.Scan(&p.Label, &p.OrderCents, &p.TipCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan earnings bucket", err)
		}
		p.TotalCents = p.OrderCents + p.TipCents
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to chart earnings", err)
	}
	return points, nil
}

// Records interleaves completed orders and paid tips, newest settlement
// first. The window count rides along so the caller gets the unpaginated
// total without a second query.
func (r *EarningsReadStore) Records(ctx context.Context, chefID uuid.UUID, limit, offset int32) ([]queries.EarningsRecordView, int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT kind, ref_id, amount_cents, occurred_at, COUNT(*) OVER ()
		FROM (
			SELECT 'order' AS kind, id AS ref_id, total_cents AS amount_cents,
			       COALESCE(completed_at, updated_at) AS occurred_at
			FROM orders
			WHERE chef_id = $1 AND status = 'completed'
			UNION ALL
			SELECT 'tip', id, amount_cents, created_at
			FROM tips
			WHERE chef_id = $1 AND status = 'paid'
		) settled
		ORDER BY occurred_at DESC
		LIMIT $2 OFFSET $3`,
		chefID, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list earnings records", err)
	}
	defer rows.Close()

	var (
		records []queries.EarningsRecordView
		total   int64
	)
	for rows.Next() {
		var rec queries.EarningsRecordView
		if err := rows.Scan(&rec.Kind, &rec.RefID, &rec.AmountCents, &rec.OccurredAt, &total); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan earnings record", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list earnings records", err)
	}
	return records, total, nil
}
