package interfaces

import (
	"context"

	"cobranza_campo/internal/domain/entities"
)

// IPendingPaymentRepository abstracts the durable pending-payment queue.
//
// Save is the system's only deduplication guarantee: insert-if-absent by id.
// When a record with the same id already exists the stored record is returned
// with duplicate=true and nothing is written. Delete of an unknown id is a
// no-op success so retrying a cleanup is always safe.

type IPendingPaymentRepository interface {
	GetAll(ctx context.Context) ([]entities.PendingPayment, error)
	GetByCredit(ctx context.Context, creditID string) ([]entities.PendingPayment, error)
	Save(ctx context.Context, p entities.PendingPayment) (stored entities.PendingPayment, duplicate bool, err error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	TotalByCredit(ctx context.Context, creditID string) (float64, error)
}
