package mock

import (
	"database/sql"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/macro-tracker/backend/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

// Db is the shared in-memory SQLite database behind the kv_blobs store.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the database once per test binary and migrates kv_blobs.
func NewDb() *Db {
	once.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// Every connection must see the same in-memory database.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(&model.KVBlobModel{}); err != nil {
		panic("failed to migrate kv_blobs. err: " + err.Error())
	}

	return &Db{
		DbConn: dbConn,
		models: map[string]any{
			model.KVBlobModel{}.TableName(): &model.KVBlobModel{},
		},
	}
}

// ClearDB removes every stored blob.
func (d *Db) ClearDB() error {
	return d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.KVBlobModel{}).Error
}

// GetModel returns the model registered for table.
func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}

// Blob returns the raw value stored under key in kv_blobs.
func (d *Db) Blob(key string) (string, bool) {
	var row model.KVBlobModel
	if err := d.DbConn.Where("blob_key = ?", key).Take(&row).Error; err != nil {
		return "", false
	}
	return row.Value, true
}

// PutBlob writes a raw value under key, bypassing the application.
func (d *Db) PutBlob(key, value string) error {
	return d.DbConn.Save(&model.KVBlobModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}).Error
}
