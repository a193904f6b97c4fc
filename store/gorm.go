package store

import (
	"encoding/json"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record is one named JSON value in the records table.
type Record struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// GormStore keeps all shop state in a single local SQLite file. The shop has
// one till and no server, so one file is the whole database.
type GormStore struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the database at path and ensures the records
// table exists.
func OpenSQLite(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Read(key string, dest any) {
	var rec Record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		return
	}
	if rec.Value == "" {
		return
	}
	decode([]byte(rec.Value), key, dest)
}

func (s *GormStore) Write(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Record{Key: key, Value: string(raw)}).Error
}

func (s *GormStore) Remove(key string) error {
	return s.db.Delete(&Record{}, "key = ?", key).Error
}
