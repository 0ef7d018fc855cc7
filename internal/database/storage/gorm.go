package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStorage реализует все порты хранилища поверх одного gorm.DB.
// Каждый метод выполняет один запрос (плюс preload связанного избранного)
// и фиксируется сразу, транзакций между записями нет.
type GormStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormStorage создает новый экземпляр GormStorage
func NewGormStorage(db *gorm.DB, logger *slog.Logger) *GormStorage {
	return &GormStorage{db: db, logger: logger}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// listAll возвращает все строки таблицы T, упорядоченные по id
func listAll[T any](ctx context.Context, s *GormStorage, table string, preloads ...string) ([]T, error) {
	start := time.Now()

	q := s.db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p, orderByID)
	}

	rows := make([]T, 0)
	if err := q.Order("id").Find(&rows).Error; err != nil {
		s.logger.Error("failed to list rows", "table", table, "error", err)
		return nil, fmt.Errorf("list %s: %w", table, err)
	}

	s.logger.Debug("listed rows",
		"table", table,
		"count", len(rows),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return rows, nil
}

// getByID возвращает строку по id или (nil, nil), если ее нет
func getByID[T any](ctx context.Context, s *GormStorage, table string, id uint, preloads ...string) (*T, error) {
	q := s.db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p, orderByID)
	}

	var row T
	if err := q.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Debug("row not found by id", "table", table, "id", id)
			return nil, nil
		}
		s.logger.Error("failed to get row by id", "table", table, "id", id, "error", err)
		return nil, fmt.Errorf("get %s by id %d: %w", table, id, err)
	}
	return &row, nil
}

// findOne возвращает первую строку, подходящую под условия, или (nil, nil)
func findOne[T any](ctx context.Context, s *GormStorage, table string, conds map[string]interface{}) (*T, error) {
	var row T
	err := s.db.WithContext(ctx).Where(conds).Order("id").Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to find row", "table", table, "conditions", conds, "error", err)
		return nil, fmt.Errorf("find %s: %w", table, err)
	}
	return &row, nil
}

// listWhere возвращает все строки, подходящие под условия
func listWhere[T any](ctx context.Context, s *GormStorage, table string, conds map[string]interface{}) ([]T, error) {
	rows := make([]T, 0)
	if err := s.db.WithContext(ctx).Where(conds).Order("id").Find(&rows).Error; err != nil {
		s.logger.Error("failed to list rows by filter", "table", table, "conditions", conds, "error", err)
		return nil, fmt.Errorf("list %s by filter: %w", table, err)
	}
	return rows, nil
}

// create вставляет строку; id назначает бд. Связанные записи не сохраняются.
func create[T any](ctx context.Context, s *GormStorage, table string, row *T) error {
	start := time.Now()
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		s.logger.Error("failed to insert row", "table", table, "error", err)
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	s.logger.Info("row inserted",
		"table", table,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// remove удаляет ровно переданную строку по первичному ключу
func remove[T any](ctx context.Context, s *GormStorage, table string, row *T) error {
	res := s.db.WithContext(ctx).Delete(row)
	if res.Error != nil {
		s.logger.Error("failed to delete row", "table", table, "error", res.Error)
		return fmt.Errorf("delete from %s: %w", table, res.Error)
	}
	s.logger.Info("row deleted", "table", table, "rows_affected", res.RowsAffected)
	return nil
}
