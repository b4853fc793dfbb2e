package unit

import (
	"time"

	"github.com/google/uuid"
)

// Unit is a measurement unit shared by every goal level, e.g. "件" or "円".
type Unit struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Symbol    string    `json:"symbol,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
