package request

import (
	"reflect"
	"testing"
)

func TestSyncRequest_NormalizedIDs(t *testing.T) {
	t.Run("nil for empty input", func(t *testing.T) {
		if got := (SyncRequest{}).NormalizedIDs(); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("trims, drops blanks and repeats", func(t *testing.T) {
		r := SyncRequest{IDs: []string{" p1 ", "", "p2", "p1", "  ", "p3"}}
		want := []string{"p1", "p2", "p3"}
		if got := r.NormalizedIDs(); !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("nil when everything is blank", func(t *testing.T) {
		r := SyncRequest{IDs: []string{" ", ""}}
		if got := r.NormalizedIDs(); len(got) != 0 {
			t.Fatalf("expected no ids, got %v", got)
		}
	})
}
