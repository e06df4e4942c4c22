package identity

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// GeneratePaymentID derives the queue id for a captured payment from its
// business attributes: two captures of the same credit, timestamp, user and
// amount yield the same id, which is what the store's insert-if-absent
// deduplication keys on.
//
// The canonical form is "<credito>-<epochMillis>-<usuario>-<monto>" hashed
// with MD5. When the capture timestamp cannot be normalized the function
// falls back to "<nowEpochMillis>_<credito>"; that fallback is not unique
// across repeated failures within the same millisecond for the same credit.
func GeneratePaymentID(creditID, capturedAt, userID string, amount float64) string {
	millis, err := epochMillis(capturedAt)
	if err != nil {
		return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), creditID)
	}

	canonical := fmt.Sprintf("%s-%d-%s-%s", creditID, millis, userID, formatAmount(amount))
	sum := md5.Sum([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

func epochMillis(capturedAt string) (int64, error) {
	t, err := time.Parse(time.RFC3339Nano, capturedAt)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// formatAmount renders the amount the way the capture clients serialize
// numbers: shortest form, no trailing zeros ("500", "500.5").
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
