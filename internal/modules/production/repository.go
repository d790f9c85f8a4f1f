package production

import (
	"context"

	"github.com/georgemunganga/productions-api/internal/modules/productiondata"
)

// Repository is the production store, addressed by title. Missing records
// return apperr.ErrNotFound; a taken title returns apperr.ErrConflict.
type Repository interface {
	Create(ctx context.Context, p *Production) error
	GetByTitle(ctx context.Context, title string) (*Production, error)
	List(ctx context.Context) ([]*Production, error)
	Update(ctx context.Context, p *Production) error
	Delete(ctx context.Context, id string) error
}

// MemberStore resolves and removes the production data a production owns.
// productiondata.Repository satisfies it.
type MemberStore interface {
	GetByID(ctx context.Context, id string) (*productiondata.Record, error)
	Delete(ctx context.Context, id string) error
}

// UserDirectory answers whether a responsible user exists.
type UserDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}
