package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/output"
)

// querier is the part of pgxpool.Pool the repository needs.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ output.VoucherLedger = (*VoucherLedgerRepository)(nil)

// VoucherLedgerRepository implements output.VoucherLedger on PostgreSQL.
type VoucherLedgerRepository struct {
	db querier
}

func NewVoucherLedgerRepository(db querier) *VoucherLedgerRepository {
	return &VoucherLedgerRepository{db: db}
}

const insertMutation = `
INSERT INTO voucher_mutations (tenant_id, participant_id, event_id, allocation_id, action, quantity, actor)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`

func (r *VoucherLedgerRepository) Record(ctx context.Context, m *entities.VoucherMutation) error {
	var createdAt time.Time
	err := r.db.QueryRow(ctx, insertMutation,
		m.TenantID, m.ParticipantID, m.EventID, m.AllocationID, m.Action, m.Quantity, m.Actor,
	).Scan(&m.ID, &createdAt)
	if err != nil {
		return fmt.Errorf("insert voucher mutation: %w", err)
	}
	m.CreatedAt = createdAt
	return nil
}

const selectMutations = `
SELECT id, tenant_id, participant_id, event_id, allocation_id, action, quantity, actor, created_at
FROM voucher_mutations
WHERE tenant_id = $1 AND participant_id = $2 AND event_id = $3
ORDER BY created_at DESC, id DESC`

func (r *VoucherLedgerRepository) ListByParticipant(ctx context.Context, tenantID string, participantID, eventID int) ([]entities.VoucherMutation, error) {
	rows, err := r.db.Query(ctx, selectMutations, tenantID, participantID, eventID)
	if err != nil {
		return nil, fmt.Errorf("list voucher mutations: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.VoucherMutation, error) {
		var m entities.VoucherMutation
		err := row.Scan(&m.ID, &m.TenantID, &m.ParticipantID, &m.EventID, &m.AllocationID, &m.Action, &m.Quantity, &m.Actor, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan voucher mutations: %w", err)
	}
	return out, nil
}
