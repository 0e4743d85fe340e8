package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents one scanned page for data transfer between layers.
type Document struct {
	ID        uuid.UUID `json:"id"`
	GroupID   uuid.UUID `json:"group_id"`
	ImageRef  string    `json:"image_ref"`
	AssetID   string    `json:"asset_id,omitempty"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
