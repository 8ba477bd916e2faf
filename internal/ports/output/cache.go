package output

import (
	"context"
	"time"

	"eventdesk/internal/domain/entities"
)

// DetailsCache stores participant details snapshots. Get reports a miss with
// (nil, false, nil).
type DetailsCache interface {
	Get(ctx context.Context, key string) (*entities.ParticipantDetails, bool, error)
	Set(ctx context.Context, key string, d *entities.ParticipantDetails, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
