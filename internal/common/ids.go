package common

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NewID returns a time-ordered identifier for an entity created at t.
// IDs created within the same millisecond still sort in creation order.
func NewID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String()
}
