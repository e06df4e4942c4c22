package repository

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"cobranza_campo/internal/domain/entities"
	"cobranza_campo/internal/usecase/interfaces"
)

const defaultStoreFile = "pagos_pendientes.json"

// PendingPaymentFileRepository keeps the queue as a single JSON array in a
// local file, the same shape the device app persisted under its
// "pagos_pendientes" storage key. Every mutation rewrites the whole
// collection; the mutex serializes mutations so a save can never race another
// save onto a stale snapshot.
//
// Read problems degrade to an empty queue instead of failing: a caller seeing
// no pending payments cannot tell "empty" from "unreadable", which is a
// documented trade-off carried over from the device store.

type PendingPaymentFileRepository struct {
	mu   sync.Mutex
	path string
}

var _ interfaces.IPendingPaymentRepository = (*PendingPaymentFileRepository)(nil)

func NewPendingPaymentFileRepository(path string) *PendingPaymentFileRepository {
	if path == "" {
		path = getenvDefault("PENDING_STORE_FILE", defaultStoreFile)
	}
	return &PendingPaymentFileRepository{path: path}
}

func (r *PendingPaymentFileRepository) GetAll(_ context.Context) ([]entities.PendingPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readAll(), nil
}

func (r *PendingPaymentFileRepository) GetByCredit(_ context.Context, creditID string) ([]entities.PendingPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]entities.PendingPayment, 0)
	for _, p := range r.readAll() {
		if p.CreditID == creditID {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (r *PendingPaymentFileRepository) Save(_ context.Context, p entities.PendingPayment) (entities.PendingPayment, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.readAll()
	for _, existing := range all {
		if existing.ID == p.ID {
			return existing, true, nil
		}
	}

	all = append(all, p)
	if err := r.writeAll(all); err != nil {
		return entities.PendingPayment{}, false, err
	}
	return p, false, nil
}

// Delete is idempotent: the collection is rewritten without the id whether or
// not it was present.
func (r *PendingPaymentFileRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.readAll()
	kept := make([]entities.PendingPayment, 0, len(all))
	for _, p := range all {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.writeAll(kept)
}

func (r *PendingPaymentFileRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (r *PendingPaymentFileRepository) TotalByCredit(ctx context.Context, creditID string) (float64, error) {
	payments, err := r.GetByCredit(ctx, creditID)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, p := range payments {
		total += p.Amount
	}
	return total, nil
}

func (r *PendingPaymentFileRepository) readAll() []entities.PendingPayment {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[pagos][store] reading %s failed, treating queue as empty err=%v", r.path, err)
		}
		return []entities.PendingPayment{}
	}

	var payments []entities.PendingPayment
	if err := json.Unmarshal(raw, &payments); err != nil {
		log.Printf("[pagos][store] decoding %s failed, treating queue as empty err=%v", r.path, err)
		return []entities.PendingPayment{}
	}
	return payments
}

// writeAll replaces the whole collection atomically (write-then-rename), so
// readers never observe a partially written queue.
func (r *PendingPaymentFileRepository) writeAll(payments []entities.PendingPayment) error {
	raw, err := json.Marshal(payments)
	if err != nil {
		return err
	}

	tmp := r.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}
