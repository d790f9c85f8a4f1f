package action

import (
	"context"

	"github.com/georgemunganga/productions-api/internal/validate"
)

// Resource is the CRUD contract shared by both action variants. The key is a
// URL title for announcements and an id for articles.
type Resource[T any] interface {
	Create(ctx context.Context, payload validate.Payload) (*T, error)
	List(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, key string) (*T, error)
	Update(ctx context.Context, key string, payload validate.Payload) (*T, error)
	Delete(ctx context.Context, key string) error
}

var (
	announcementShape = validate.Object(
		validate.String("urlImg"),
		validate.String("category_ref"),
		validate.String("fullName").Require(),
		validate.String("institution").Require(),
		validate.String("email").Require(),
		validate.Date("initialDate").Require(),
		validate.Date("finalDate").Require(),
		validate.String("title").Require(),
		validate.String("subtitle").Require(),
		validate.String("description").Require(),
	)

	articleShape = validate.Object(
		validate.String("title").Require(),
		validate.String("subtitle").Require(),
		validate.String("content").Require(),
		validate.String("image_url"),
	)
)
