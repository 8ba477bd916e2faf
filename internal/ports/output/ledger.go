package output

import (
	"context"

	"eventdesk/internal/domain/entities"
)

type VoucherLedger interface {
	Record(ctx context.Context, m *entities.VoucherMutation) error
	ListByParticipant(ctx context.Context, tenantID string, participantID, eventID int) ([]entities.VoucherMutation, error)
}
