package models

import "time"

// Preference is a persisted key/value pair scoped to the storefront.
type Preference struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name used by GORM.
func (Preference) TableName() string {
	return "preferences"
}
