package entity

import (
	"time"

	"github.com/google/uuid"
)

// Group is a customer's document folder. DocumentCount mirrors the
// number of documents whose GroupID equals ID; it is recomputed by the
// scan service at save time, not on every document mutation.
type Group struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    string    `json:"customer_id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	DocumentCount int       `json:"document_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
