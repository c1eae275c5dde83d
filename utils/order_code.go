package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenOrderCode builds a human-readable reference for one submission, e.g.
// "PO-20260831-9f3a2b1c". The suffix makes retried submissions
// distinguishable in the workflow engine's logs even though the payload
// itself carries no idempotency key.
func GenOrderCode(t time.Time) string {
	id := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("PO-%s-%s", t.Format("20060102"), id)
}
