package billing

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateInvoiceNumber returns a number in the INV-YYMM-XXXX format, where
// XXXX is a random 4-digit suffix. Uniqueness is probabilistic; the store
// retries generation if a collision with an existing invoice is detected.
func GenerateInvoiceNumber(now time.Time) string {
	suffix := 1000 + rand.Intn(9000)
	return fmt.Sprintf("INV-%s-%d", now.Format("0601"), suffix)
}
