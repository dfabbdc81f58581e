package services

import "github.com/google/uuid"

// UpdateResult acknowledges an update. Matched counts records found by id,
// Modified counts records written.
type UpdateResult struct {
	Matched  int64
	Modified int64
}

// IsOwner is the ownership guard applied before mutating or deleting a
// record: the acting user must be the record's owner.
func IsOwner(ownerID, actingUserID uuid.UUID) bool {
	return ownerID != uuid.Nil && ownerID == actingUserID
}
