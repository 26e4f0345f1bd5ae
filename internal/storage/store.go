package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"retab/internal/logger"
)

// LabelRecord 标签历史记录
type LabelRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	Host      string `gorm:"index"`
	Port      int
	TLS       bool
	Method    string
	Shape     string `gorm:"index"`
	Label     string
	CreatedAt time.Time
}

// Store 基于sqlite的标签历史存储
type Store struct {
	db  *gorm.DB
	log logger.Logger
}

// Open 打开（或创建）sqlite库并迁移表结构
func Open(dsn, prefix string, l logger.Logger) (*Store, error) {
	if l == nil {
		l = logger.NewNop()
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         NewGormLogger(l),
		NamingStrategy: schema.NamingStrategy{TablePrefix: prefix},
	})
	if err != nil {
		return nil, fmt.Errorf("打开sqlite失败: %w", err)
	}
	if err := db.AutoMigrate(&LabelRecord{}); err != nil {
		return nil, fmt.Errorf("迁移表结构失败: %w", err)
	}
	return &Store{db: db, log: l}, nil
}

// Save 写入一条标签历史，缺省时自动分配记录ID
func (s *Store) Save(ctx context.Context, rec *LabelRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(rec).Error
}

// Recent 按时间倒序返回最近的标签历史
func (s *Store) Recent(ctx context.Context, limit int) ([]LabelRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []LabelRecord
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountByShape 按协议形态统计历史记录数量
func (s *Store) CountByShape(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Shape string
		N     int64
	}
	var rows []row
	err := s.db.WithContext(ctx).
		Model(&LabelRecord{}).
		Select("shape, count(*) as n").
		Group("shape").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Shape] = r.N
	}
	return out, nil
}

// Close 关闭底层数据库连接
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
