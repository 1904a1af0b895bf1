package requestlog

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogProxyRequest(entry *ProxyRequest) error
}

type SQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) LogProxyRequest(entry *ProxyRequest) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	return r.db.Create(entry).Error
}
