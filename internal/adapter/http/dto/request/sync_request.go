package request

import "strings"

// SyncRequest selects which queued payments a sync operation covers. An
// absent or empty id list means everything currently queued (the selection
// model is opt-out). Buscar narrows the visible queue for summaries.
type SyncRequest struct {
	IDs    []string `json:"ids"`
	Buscar string   `json:"buscar"`
}

// NormalizedIDs trims entries and drops blanks and repeats, preserving the
// first-seen order.
func (r SyncRequest) NormalizedIDs() []string {
	if len(r.IDs) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(r.IDs))
	ids := make([]string, 0, len(r.IDs))
	for _, id := range r.IDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
