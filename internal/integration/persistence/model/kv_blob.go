package model

import "time"

// KVBlobModel represents the kv_blobs table backing the SQL blob store.
type KVBlobModel struct {
	Key       string    `gorm:"column:blob_key;type:varchar(128);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the KVBlobModel.
func (KVBlobModel) TableName() string {
	return "kv_blobs"
}
