package identity

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestGeneratePaymentID_Deterministic(t *testing.T) {
	first := GeneratePaymentID("123456", "2024-01-15T10:30:00.000Z", "user-7", 500)
	second := GeneratePaymentID("123456", "2024-01-15T10:30:00.000Z", "user-7", 500)

	if first != second {
		t.Fatalf("same attributes produced different ids: %s vs %s", first, second)
	}
	if len(first) != 32 {
		t.Fatalf("expected 32-char hex digest, got %q", first)
	}
	for _, r := range first {
		if !strings.ContainsRune("0123456789abcdef", r) {
			t.Fatalf("expected hex digest, got %q", first)
		}
	}
}

func TestGeneratePaymentID_SensitiveToEveryAttribute(t *testing.T) {
	base := GeneratePaymentID("123456", "2024-01-15T10:30:00.000Z", "user-7", 500)

	variants := map[string]string{
		"credit":    GeneratePaymentID("654321", "2024-01-15T10:30:00.000Z", "user-7", 500),
		"timestamp": GeneratePaymentID("123456", "2024-01-15T10:30:01.000Z", "user-7", 500),
		"user":      GeneratePaymentID("123456", "2024-01-15T10:30:00.000Z", "user-8", 500),
		"amount":    GeneratePaymentID("123456", "2024-01-15T10:30:00.000Z", "user-7", 500.5),
	}
	for name, id := range variants {
		if id == base {
			t.Fatalf("changing %s did not change the id", name)
		}
	}
}

func TestGeneratePaymentID_FractionalAmountsDistinct(t *testing.T) {
	whole := GeneratePaymentID("123456", "2024-01-15T10:30:00.000Z", "user-7", 500)
	fractional := GeneratePaymentID("123456", "2024-01-15T10:30:00.000Z", "user-7", 500.50)

	if whole == fractional {
		t.Fatalf("500 and 500.50 collapsed to the same id")
	}
}

func TestGeneratePaymentID_FallbackOnBadTimestamp(t *testing.T) {
	before := time.Now().UnixMilli()
	id := GeneratePaymentID("123456", "not-a-timestamp", "user-7", 500)
	after := time.Now().UnixMilli()

	parts := strings.SplitN(id, "_", 2)
	if len(parts) != 2 || parts[1] != "123456" {
		t.Fatalf("expected \"<millis>_123456\" fallback, got %q", id)
	}

	millis, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		t.Fatalf("fallback prefix is not epoch millis: %q", id)
	}
	if millis < before || millis > after {
		t.Fatalf("fallback millis %d outside [%d, %d]", millis, before, after)
	}
}
