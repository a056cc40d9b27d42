package config

import (
	"context"
	"errors"
	"sync"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultScope is the store ID of scope-default configuration rows. Lookups
// for a specific store fall back to this scope when no store-specific value
// exists.
const DefaultScope int64 = 0

// StaticSource is an in-memory Source, used by tests and by deployments that
// seed method configuration from the app config file.
type StaticSource struct {
	mu     sync.RWMutex
	values map[string]map[int64]map[string]any
}

func NewStaticSource() *StaticSource {
	return &StaticSource{values: map[string]map[int64]map[string]any{}}
}

func (s *StaticSource) Set(methodCode string, storeID int64, field string, value any) *StaticSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	stores, ok := s.values[methodCode]
	if !ok {
		stores = map[int64]map[string]any{}
		s.values[methodCode] = stores
	}
	fields, ok := stores[storeID]
	if !ok {
		fields = map[string]any{}
		stores[storeID] = fields
	}
	fields[field] = value
	return s
}

func (s *StaticSource) Get(methodCode, field string, storeID int64) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stores, ok := s.values[methodCode]
	if !ok {
		return nil, false
	}
	if fields, ok := stores[storeID]; ok {
		if v, ok := fields[field]; ok {
			return v, true
		}
	}
	if storeID != DefaultScope {
		if fields, ok := stores[DefaultScope]; ok {
			if v, ok := fields[field]; ok {
				return v, true
			}
		}
	}
	return nil, false
}

// MethodConfig is one store-scoped configuration row of a payment method.
type MethodConfig struct {
	ID         snowflake.ID `json:"id" gorm:"primaryKey"`
	MethodCode string       `json:"method_code" gorm:"type:varchar(64);not null;uniqueIndex:idx_method_configs_key"`
	StoreID    int64        `json:"store_id" gorm:"not null;default:0;uniqueIndex:idx_method_configs_key"`
	Field      string       `json:"field" gorm:"type:varchar(128);not null;uniqueIndex:idx_method_configs_key"`
	Value      string       `json:"value" gorm:"type:text;not null"`
}

func (MethodConfig) TableName() string { return "method_configs" }

// GormSource reads method configuration rows from the database, falling back
// from the store-specific row to the default scope.
type GormSource struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewGormSource(db *gorm.DB, log *zap.Logger) *GormSource {
	return &GormSource{db: db, log: log.Named("gateway.config")}
}

func (s *GormSource) Get(methodCode, field string, storeID int64) (any, bool) {
	var row MethodConfig
	err := s.db.WithContext(context.Background()).
		Where("method_code = ? AND field = ? AND store_id IN ?", methodCode, field, []int64{storeID, DefaultScope}).
		Order("store_id DESC").
		First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("config lookup failed",
				zap.String("method", methodCode),
				zap.String("field", field),
				zap.Error(err))
		}
		return nil, false
	}
	return row.Value, true
}
