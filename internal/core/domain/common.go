package domain

import "time"

// AuditFields holds the standard timestamps the server attaches to every
// persisted entity.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"updatedAt"`
}
