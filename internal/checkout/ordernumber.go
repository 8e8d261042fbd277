package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newOrderNumber builds the human-referenceable order number: a time
// component plus a random suffix, e.g. RG-1756357920731-9F2C4A. Collisions
// are negligible across concurrent checkouts and the ledger's unique
// constraint is the actual guarantee.
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("RG-%d-%s", now.UnixMilli(), suffix)
}
