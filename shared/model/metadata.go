package model

import "time"

// Metadata is embedded in every persisted row. CreatedBy/ModifiedBy hold the
// acting guest email, or "system" for staff-side mutations.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}
