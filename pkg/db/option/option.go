// Package option holds composable gorm query modifiers shared by the
// generic repository.
package option

import "gorm.io/gorm"

type QueryOption interface {
	Apply(*gorm.DB) *gorm.DB
}

type queryOptionFunc func(*gorm.DB) *gorm.DB

func (f queryOptionFunc) Apply(db *gorm.DB) *gorm.DB { return f(db) }

// WithLimitOffset applies classic limit/offset pagination. Non-positive
// limit falls back to def.
func WithLimitOffset(limit, offset, def int) QueryOption {
	return queryOptionFunc(func(db *gorm.DB) *gorm.DB {
		if limit <= 0 {
			limit = def
		}
		if offset < 0 {
			offset = 0
		}
		return db.Limit(limit).Offset(offset)
	})
}

func WithOrder(order string) QueryOption {
	return queryOptionFunc(func(db *gorm.DB) *gorm.DB {
		return db.Order(order)
	})
}
