// Package sqlkv stores slots as rows of an embedded SQLite database through GORM.
package sqlkv

import "time"

// SlotDTO is one persisted key value slot.
type SlotDTO struct {
	Key       string `gorm:"column:slot_key;primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for slots.
func (SlotDTO) TableName() string {
	return "kv_slots"
}
