package db

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// readPolicy implements degrade-on-read: a failed list or lookup is logged
// and reported to the caller as an empty or absent result. Writes never go
// through it.
type readPolicy struct {
	logger *zap.Logger
}

func newReadPolicy(logger *zap.Logger) readPolicy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return readPolicy{logger: logger.Named("store")}
}

func (policy readPolicy) degraded(operation string, userID string, err error) {
	policy.logger.Warn("read degraded to empty result",
		zap.String("operation", operation),
		zap.String("user_id", userID),
		zap.Error(err),
	)
}

func listOrEmpty[T any](policy readPolicy, operation string, userID string, query *gorm.DB) []T {
	rows := make([]T, 0)
	if err := query.Find(&rows).Error; err != nil {
		policy.degraded(operation, userID, err)
		return make([]T, 0)
	}
	return rows
}

// firstOrAbsent returns false both for a missing row and for a store failure;
// only the latter is logged.
func firstOrAbsent[T any](policy readPolicy, operation string, userID string, query *gorm.DB) (T, bool) {
	var row T
	if err := query.First(&row).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			policy.degraded(operation, userID, err)
		}
		var zero T
		return zero, false
	}
	return row, true
}

// affectedOrNotFound turns a write that matched no owned row into
// gorm.ErrRecordNotFound.
func affectedOrNotFound(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// upsertAndReload writes row with the given conflict clause and then reads
// the stored row back by its natural key, so the caller sees the surviving
// id and creation time rather than the ones it proposed.
func upsertAndReload[T any](database *gorm.DB, row *T, conflict clause.OnConflict, naturalKey string, args ...any) error {
	return database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(conflict).Create(row).Error; err != nil {
			return err
		}
		var stored T
		if err := tx.Where(naturalKey, args...).First(&stored).Error; err != nil {
			return err
		}
		*row = stored
		return nil
	})
}
