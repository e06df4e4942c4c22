package interfaces

import (
	"context"

	"cobranza_campo/internal/domain/entities"
)

// IPaymentSubmitter abstracts the collections backend a queued payment is
// submitted to.
//
// Submit never returns a Go error: rejections and connectivity failures are
// expected per-item outcomes, expressed in the SubmissionResult so the
// reconciler can attribute them. The distinction retryable vs. permanent is
// not made at this layer; a failed payment simply stays queued.
type IPaymentSubmitter interface {
	Submit(ctx context.Context, p entities.PendingPayment) entities.SubmissionResult
}
