package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stayhub/stayctl/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type sessionEntry struct {
	EntryKey  string `gorm:"primaryKey;column:entry_key"`
	Value     string `gorm:"column:value;not null"`
	UpdatedAt time.Time
}

func (sessionEntry) TableName() string {
	return "session_entries"
}

// SQLStore keeps the session entries in a SQLite key/value table.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(dsn string) (*SQLStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	if err := db.AutoMigrate(&sessionEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate session database: %w", err)
	}

	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Load(ctx context.Context) (*StoredSession, error) {
	var rows []sessionEntry
	if err := s.db.WithContext(ctx).
		Where("entry_key IN ?", []string{EntryToken, EntryUser}).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read session entries: %w", err)
	}

	entries := make(map[string]string, len(rows))
	for _, row := range rows {
		entries[row.EntryKey] = row.Value
	}

	stored, corrupt := decodeEntries(entries)
	if corrupt {
		logrus.Warnln("Discarding incomplete session entries")
		return nil, s.Clear(ctx)
	}

	return stored, nil
}

func (s *SQLStore) Save(ctx context.Context, token string, user *models.UserProfile) error {
	entries, err := encodeEntries(token, user)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range entries {
			if err := tx.Save(&sessionEntry{EntryKey: key, Value: value}).Error; err != nil {
				return fmt.Errorf("failed to write session entry %s: %w", key, err)
			}
		}
		return nil
	})
}

func (s *SQLStore) Clear(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Where("entry_key IN ?", []string{EntryToken, EntryUser}).
		Delete(&sessionEntry{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear session entries: %w", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
