package repository

import (
	"context"

	"github.com/ketukakahala/rentalops/pkg/db/option"
	"gorm.io/gorm"
)

// Repository is a thin generic data-access layer over gorm. Domain
// services that need more than filter-by-example queries keep their own
// hand-written repositories.
type Repository[T any] interface {
	WithTrx(tx *gorm.DB) Repository[T]
	Find(ctx context.Context, query *T, opts ...option.QueryOption) ([]*T, error)
	FindOne(ctx context.Context, query *T, opts ...option.QueryOption) (*T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, resource *T) error
	Update(ctx context.Context, id int64, resource any) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, query *T) (int64, error)
}
