// Package postgres stores device state records in a single key/value table.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	pingTimeout                 = 5 * time.Second
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// entry is one record of the state table.
type entry struct {
	Key       string `gorm:"primaryKey;size:128"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (entry) TableName() string {
	return "state_entries"
}

// Store implements kv.Store over PostgreSQL.
type Store struct {
	db            *gorm.DB
	sqlDB         *sql.DB
	cancelMonitor context.CancelFunc
}

// Open connects, migrates the state table and starts the pool monitor.
func Open(ctx context.Context, conn *pgLib.DBConn, logger *slog.Logger, debug bool) (*Store, error) {
	if conn == nil {
		return nil, errors.New("postgres connection settings are required for postgres provider")
	}

	db, err := pgLib.New(conn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newSlogLogger(logger, debug),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()

		return nil, errors.Wrap(err, "failed to ping PostgreSQL")
	}

	if err := db.WithContext(ctx).AutoMigrate(&entry{}); err != nil {
		_ = sqlDB.Close()

		return nil, errors.Wrap(err, "failed to migrate state table")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	go monitorDBPool(monitorCtx, logger, sqlDB, dbPoolMonitorInterval)

	return &Store{db: db, sqlDB: sqlDB, cancelMonitor: cancelMonitor}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var e entry
	err := s.db.WithContext(ctx).Where("key = ?", key).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "get %s", key)
	}

	return e.Value, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	e := entry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error

	return errors.Wrapf(err, "set %s", key)
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return errors.Wrap(s.db.WithContext(ctx).Where("key IN ?", keys).Delete(&entry{}).Error, "delete state keys")
}

// Close stops the pool monitor and closes the connection pool.
func (s *Store) Close() error {
	s.cancelMonitor()

	return errors.WithStack(s.sqlDB.Close())
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
				}
				level := slog.LevelDebug
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					level = slog.LevelWarn
				}
				logger.LogAttrs(ctx, level, "State store pool wait", attrs...)
			}

			prev = cur
		}
	}
}
