package postgres

import (
	"context"
	"fmt"

	"github.com/squarem/invoicing-api/internal/domain/repository"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo allocates invoice-number sequences from a per-period counter
// row. Pass a pool or tx (Querier); inside the create-invoice transaction the
// row lock taken by the upsert serializes concurrent allocations.
type CounterRepo struct {
	q Querier
}

// NewCounterRepository builds the adapter.
func NewCounterRepository(q Querier) *CounterRepo {
	return &CounterRepo{q: q}
}

// NextSequence increments and returns the counter for a YYYYMM period in a
// single atomic statement. The first call for a period creates the row at 1.
func (r *CounterRepo) NextSequence(period string) (int64, error) {
	const query = `
		INSERT INTO invoice_counters (period, last_seq)
		VALUES ($1, 1)
		ON CONFLICT (period) DO UPDATE SET last_seq = invoice_counters.last_seq + 1
		RETURNING last_seq`
	var seq int64
	if err := r.q.QueryRow(context.Background(), query, period).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence for %s: %w", period, err)
	}
	return seq, nil
}
