package usecase

import (
	"context"
	"errors"
	"log"

	"cobranza_campo/internal/domain/entities"
	"cobranza_campo/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptySelection         = errors.New("no payments selected")
	ErrSubmitterNotConfigured = errors.New("collections submitter not configured")
)

// ISyncUseCase reconciles a selected set of queued payments against the
// collections backend.
//
// An empty id list means "everything currently queued": the sync screen's
// selection model is opt-out, all loaded payments start selected.

type ISyncUseCase interface {
	SyncByIDs(ctx context.Context, ids []string) (entities.SyncReport, error)
	Summarize(ctx context.Context, ids []string, search string) (entities.SelectionSummary, error)
}

type SyncUseCase struct {
	repo      interfaces.IPendingPaymentRepository
	submitter interfaces.IPaymentSubmitter
}

var _ ISyncUseCase = (*SyncUseCase)(nil)

func NewSyncUseCase(repo interfaces.IPendingPaymentRepository, submitter interfaces.IPaymentSubmitter) *SyncUseCase {
	return &SyncUseCase{repo: repo, submitter: submitter}
}

// SyncByIDs submits the selected payments one at a time, in queue order, and
// deletes from the store exactly those the backend acknowledged. Failed
// payments are left untouched so a later sync can retry them; this is the
// only retry mechanism, there is no background scheduler.
func (u *SyncUseCase) SyncByIDs(ctx context.Context, ids []string) (entities.SyncReport, error) {
	if u.submitter == nil {
		return entities.SyncReport{}, ErrSubmitterNotConfigured
	}

	all, err := u.repo.GetAll(ctx)
	if err != nil {
		log.Printf("[sync][usecase] loading queue failed err=%v", err)
		return entities.SyncReport{}, err
	}

	selected := selectByIDs(all, ids)
	if len(selected) == 0 {
		return entities.SyncReport{}, ErrEmptySelection
	}

	report := entities.SyncReport{
		BatchID:   uuid.NewString(),
		Total:     len(selected),
		Successes: make([]entities.SyncReportItem, 0, len(selected)),
		Failures:  make([]entities.SyncReportItem, 0),
	}
	log.Printf("[sync][usecase] batch start batch_id=%s total=%d", report.BatchID, report.Total)

	// One submission fully completes before the next begins; per-item
	// attribution stays unambiguous and the backend is never flooded.
	for _, p := range selected {
		res := u.submitter.Submit(ctx, p)
		item := entities.SyncReportItem{
			PaymentID: p.ID,
			CreditID:  p.CreditID,
			Amount:    p.Amount,
		}
		if res.Success {
			item.ServerPayload = res.ServerPayload
			report.Successes = append(report.Successes, item)
		} else {
			item.ErrorMessage = res.ErrorMessage
			report.Failures = append(report.Failures, item)
			log.Printf("[sync][usecase] submission failed batch_id=%s pago_id=%s credito=%s err=%s", report.BatchID, p.ID, p.CreditID, res.ErrorMessage)
		}
	}

	// Acknowledged payments leave the queue; this is the only sync-driven
	// removal path. A delete failure leaves a registered payment queued, the
	// derived id lets the backend deduplicate it on the next sync.
	for _, item := range report.Successes {
		if err := u.repo.Delete(ctx, item.PaymentID); err != nil {
			log.Printf("[sync][usecase] cleanup delete failed batch_id=%s pago_id=%s err=%v", report.BatchID, item.PaymentID, err)
		}
	}

	log.Printf("[sync][usecase] batch done batch_id=%s exitosos=%d fallidos=%d", report.BatchID, len(report.Successes), len(report.Failures))
	return report, nil
}

// Summarize computes the selected/unselected totals the sync screen shows
// before confirming a delivery. The search term narrows the visible queue
// first, then the selection is applied over what remains.
func (u *SyncUseCase) Summarize(ctx context.Context, ids []string, search string) (entities.SelectionSummary, error) {
	all, err := u.repo.GetAll(ctx)
	if err != nil {
		log.Printf("[sync][usecase] loading queue for summary failed err=%v", err)
		return entities.SelectionSummary{}, err
	}

	visible := FilterBySearch(search, all)
	var sel Selection
	if len(ids) == 0 {
		sel = NewSelection(visible)
	} else {
		sel = SelectionFromIDs(ids)
	}
	return Summarize(visible, sel), nil
}

// selectByIDs keeps queue order; an empty id list selects everything.
func selectByIDs(all []entities.PendingPayment, ids []string) []entities.PendingPayment {
	if len(ids) == 0 {
		return all
	}

	wanted := SelectionFromIDs(ids)
	selected := make([]entities.PendingPayment, 0, len(ids))
	for _, p := range all {
		if wanted.Has(p.ID) {
			selected = append(selected, p)
		}
	}
	return selected
}
