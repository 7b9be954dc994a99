// Package repository is the storage access layer: parameterized queries against the
// topics, articles, comments and users tables, plus the existence checks handlers
// run alongside them.
package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"github.com/cppla/ncnews/utils"
)

// Repository issues all queries through a shared gorm pool.
type Repository struct {
	db *gorm.DB
}

// New creates a Repository over db. The caller keeps ownership of the pool.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// builder emits '?' placeholders; gorm rebinds them for the dialect.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func (r *Repository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// scanOne runs a single-row query into dest. Zero rows yields NotFound(entity).
func (r *Repository) scanOne(ctx context.Context, entity string, dest interface{}, query string, args ...interface{}) error {
	res := r.conn(ctx).Raw(query, args...).Scan(dest)
	if res.Error != nil {
		return utils.ClassifyDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.NotFound(entity)
	}
	return nil
}

// exists reports whether query (a SELECT EXISTS) returns true; false yields NotFound(entity).
func (r *Repository) exists(ctx context.Context, entity, query string, arg interface{}) error {
	var found bool
	if err := r.conn(ctx).Raw(query, arg).Scan(&found).Error; err != nil {
		return utils.ClassifyDBError(err)
	}
	if !found {
		return utils.NotFound(entity)
	}
	return nil
}
