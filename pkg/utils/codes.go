package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// PurchaseOrderReference builds a sequential purchase order reference,
// e.g. PO-2024-007 for the 7th order of 2024.
func PurchaseOrderReference(year, seq int) string {
	return fmt.Sprintf("PO-%d-%03d", year, seq)
}
