package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cobranza_campo/internal/domain/entities"
	"cobranza_campo/internal/usecase/interfaces"
	"cobranza_campo/pkg/identity"
)

var (
	ErrInvalidCreditID    = errors.New("invalid credito")
	ErrInvalidCycleID     = errors.New("invalid ciclo")
	ErrInvalidPaymentType = errors.New("invalid tipo de pago")
	ErrInvalidAmount      = errors.New("invalid monto")
	ErrInvalidPaymentID   = errors.New("invalid pago id")
)

// isoMillisUTC matches the timestamp format the capture clients write
// (toISOString: "2025-08-27T15:04:05.000Z").
const isoMillisUTC = "2006-01-02T15:04:05.000Z"

// CaptureCommand is a candidate payment produced by the capture collaborator.
// Everything except the derived id and the fixed pending status.
type CaptureCommand struct {
	CreditID         string
	CycleID          string
	Amount           float64
	PaymentTypeCode  string
	PaymentTypeLabel string
	Comments         string
	CapturedAt       string
	ClientName       string
	ReceiptImageRef  string
	Latitude         *float64
	Longitude        *float64
	UserID           string
}

// IPendingPaymentUseCase exposes the local payment queue operations.
//
// Read paths deliberately degrade to an empty queue when storage is
// unreadable: the display collaborator cannot distinguish "nothing pending"
// from "storage failed", which is a documented trade-off inherited from the
// device app.

type IPendingPaymentUseCase interface {
	Capture(ctx context.Context, cmd CaptureCommand) (entities.PendingPayment, bool, error)
	ListPending(ctx context.Context, search string) ([]entities.PendingPayment, error)
	ListByCredit(ctx context.Context, creditID string) ([]entities.PendingPayment, error)
	TotalByCredit(ctx context.Context, creditID string) (float64, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type PendingPaymentUseCase struct {
	repo interfaces.IPendingPaymentRepository
}

var _ IPendingPaymentUseCase = (*PendingPaymentUseCase)(nil)

func NewPendingPaymentUseCase(repo interfaces.IPendingPaymentRepository) *PendingPaymentUseCase {
	return &PendingPaymentUseCase{repo: repo}
}

// Capture assigns the payment its derived id, applies the canonical stored
// defaults and queues it. The returned flag reports whether an identical
// capture was already queued (in which case the stored record is returned and
// nothing is written).
func (u *PendingPaymentUseCase) Capture(ctx context.Context, cmd CaptureCommand) (entities.PendingPayment, bool, error) {
	creditID := strings.TrimSpace(cmd.CreditID)
	if creditID == "" {
		return entities.PendingPayment{}, false, ErrInvalidCreditID
	}
	cycleID := strings.TrimSpace(cmd.CycleID)
	if cycleID == "" {
		return entities.PendingPayment{}, false, ErrInvalidCycleID
	}
	typeCode := strings.TrimSpace(cmd.PaymentTypeCode)
	if typeCode == "" {
		return entities.PendingPayment{}, false, ErrInvalidPaymentType
	}
	if cmd.Amount <= 0 {
		return entities.PendingPayment{}, false, ErrInvalidAmount
	}

	capturedAt := strings.TrimSpace(cmd.CapturedAt)
	if capturedAt == "" {
		capturedAt = time.Now().UTC().Format(isoMillisUTC)
	}

	typeLabel := strings.TrimSpace(cmd.PaymentTypeLabel)
	if typeLabel == "" {
		typeLabel = entities.DefaultPaymentTypeLabel
	}

	p := entities.PendingPayment{
		ID:               identity.GeneratePaymentID(creditID, capturedAt, cmd.UserID, cmd.Amount),
		CreditID:         creditID,
		CycleID:          cycleID,
		Amount:           cmd.Amount,
		Comments:         cmd.Comments,
		PaymentTypeCode:  typeCode,
		PaymentTypeLabel: typeLabel,
		CapturedAt:       capturedAt,
		ClientName:       cmd.ClientName,
		Status:           entities.PaymentStatusPendiente,
		ReceiptImageRef:  cmd.ReceiptImageRef,
		Latitude:         cmd.Latitude,
		Longitude:        cmd.Longitude,
		UserID:           cmd.UserID,
	}

	stored, duplicate, err := u.repo.Save(ctx, p)
	if err != nil {
		log.Printf("[pagos][usecase] save failed credito=%s pago_id=%s err=%v", creditID, p.ID, err)
		return entities.PendingPayment{}, false, err
	}
	if duplicate {
		log.Printf("[pagos][usecase] duplicate capture skipped credito=%s pago_id=%s", creditID, stored.ID)
	} else {
		log.Printf("[pagos][usecase] payment queued credito=%s pago_id=%s monto=%.2f", creditID, stored.ID, stored.Amount)
	}
	return stored, duplicate, nil
}

// ListPending returns the queue, optionally narrowed by a search term (see
// FilterBySearch for the matching rules).
func (u *PendingPaymentUseCase) ListPending(ctx context.Context, search string) ([]entities.PendingPayment, error) {
	all, err := u.repo.GetAll(ctx)
	if err != nil {
		log.Printf("[pagos][usecase] list failed, degrading to empty queue err=%v", err)
		return []entities.PendingPayment{}, nil
	}
	return FilterBySearch(search, all), nil
}

func (u *PendingPaymentUseCase) ListByCredit(ctx context.Context, creditID string) ([]entities.PendingPayment, error) {
	creditID = strings.TrimSpace(creditID)
	if creditID == "" {
		return nil, ErrInvalidCreditID
	}

	payments, err := u.repo.GetByCredit(ctx, creditID)
	if err != nil {
		log.Printf("[pagos][usecase] list-by-credit failed, degrading to empty queue credito=%s err=%v", creditID, err)
		return []entities.PendingPayment{}, nil
	}
	return payments, nil
}

func (u *PendingPaymentUseCase) TotalByCredit(ctx context.Context, creditID string) (float64, error) {
	creditID = strings.TrimSpace(creditID)
	if creditID == "" {
		return 0, ErrInvalidCreditID
	}

	total, err := u.repo.TotalByCredit(ctx, creditID)
	if err != nil {
		log.Printf("[pagos][usecase] total-by-credit failed, degrading to 0 credito=%s err=%v", creditID, err)
		return 0, nil
	}
	return total, nil
}

func (u *PendingPaymentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPaymentID
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		log.Printf("[pagos][usecase] delete failed pago_id=%s err=%v", id, err)
		return err
	}
	return nil
}

func (u *PendingPaymentUseCase) DeleteAll(ctx context.Context) error {
	if err := u.repo.DeleteAll(ctx); err != nil {
		log.Printf("[pagos][usecase] delete-all failed err=%v", err)
		return err
	}
	log.Printf("[pagos][usecase] queue cleared")
	return nil
}
