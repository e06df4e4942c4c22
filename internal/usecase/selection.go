package usecase

import (
	"strings"
	"unicode/utf8"

	"cobranza_campo/internal/domain/entities"
)

// minSearchLen is the threshold below which a search term is ignored and the
// full queue stays visible. Inherited from the sync screen's behavior.
const minSearchLen = 3

// Selection is the set of payment ids chosen for a sync operation.
type Selection map[string]struct{}

// NewSelection starts with every given payment selected. The sync screen's
// model is opt-out: users deselect what they do not want to deliver.
func NewSelection(records []entities.PendingPayment) Selection {
	s := make(Selection, len(records))
	for _, p := range records {
		s[p.ID] = struct{}{}
	}
	return s
}

func SelectionFromIDs(ids []string) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle flips membership of id.
func (s Selection) Toggle(id string) {
	if s.Has(id) {
		delete(s, id)
	} else {
		s[id] = struct{}{}
	}
}

// SelectAll replaces the selection with the currently visible ids.
func (s Selection) SelectAll(visibleIDs []string) {
	clear(s)
	for _, id := range visibleIDs {
		s[id] = struct{}{}
	}
}

func (s Selection) DeselectAll() {
	clear(s)
}

// FilterBySearch narrows records when the term has at least minSearchLen
// characters: case-insensitive substring match on the client name, or plain
// substring match on the credit id. Shorter terms return the input unchanged.
func FilterBySearch(term string, records []entities.PendingPayment) []entities.PendingPayment {
	if utf8.RuneCountInString(term) < minSearchLen {
		return records
	}

	lowered := strings.ToLower(term)
	matched := make([]entities.PendingPayment, 0, len(records))
	for _, p := range records {
		if strings.Contains(strings.ToLower(p.ClientName), lowered) || strings.Contains(p.CreditID, term) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Summarize splits records into selected and unselected buckets with count
// and amount totals.
func Summarize(records []entities.PendingPayment, sel Selection) entities.SelectionSummary {
	var summary entities.SelectionSummary
	for _, p := range records {
		if sel.Has(p.ID) {
			summary.Selected.Count++
			summary.Selected.Amount += p.Amount
		} else {
			summary.Unselected.Count++
			summary.Unselected.Amount += p.Amount
		}
	}
	return summary
}
