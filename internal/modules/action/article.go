package action

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/validate"
)

type articleService struct {
	repo      ArticleRepository
	validator validate.Validator
	now       func() time.Time
}

// NewArticleService returns the id-addressed action resource.
func NewArticleService(repo ArticleRepository, validator validate.Validator) Resource[Article] {
	return &articleService{repo: repo, validator: validator, now: time.Now}
}

func (s *articleService) Create(ctx context.Context, payload validate.Payload) (*Article, error) {
	if !s.validator.IsValid(articleShape, payload) {
		return nil, apperr.Validation("validation fails")
	}
	var f articleFields
	if err := payload.Decode(&f); err != nil {
		return nil, apperr.Validation("validation fails")
	}

	now := s.now().UTC()
	a := &Article{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	f.apply(a)
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, apperr.Persistence("error on create action", err)
	}
	return a, nil
}

func (s *articleService) List(ctx context.Context) ([]*Article, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Persistence("error on list actions", err)
	}
	if out == nil {
		out = []*Article{}
	}
	return out, nil
}

func (s *articleService) Get(ctx context.Context, id string) (*Article, error) {
	if id == "" {
		return nil, apperr.BadRequest("id not provided")
	}
	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.NotFound("action not found")
	}
	if err != nil {
		return nil, apperr.Persistence("error on get action", err)
	}
	return a, nil
}

// Update copies title, subtitle, content and image_url only when they are
// present and non-empty. A field cannot be blanked through this path.
func (s *articleService) Update(ctx context.Context, id string, payload validate.Payload) (*Article, error) {
	if !s.validator.IsValid(articleShape.Optional(), payload) {
		return nil, apperr.Validation("validation fails")
	}
	var f articleFields
	if err := payload.Decode(&f); err != nil {
		return nil, apperr.Validation("validation fails")
	}

	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !f.apply(a) {
		return a, nil
	}
	a.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, a); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.NotFound("action not found")
		}
		return nil, apperr.Persistence("error on update action", err)
	}
	return a, nil
}

func (s *articleService) Delete(ctx context.Context, id string) error {
	a, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, a.ID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotFound("action not found")
		}
		return apperr.Persistence("error on delete action", err)
	}
	return nil
}

// apply copies the truthy fields onto a and reports whether anything changed.
func (f articleFields) apply(a *Article) bool {
	changed := false
	for _, c := range []struct {
		dst *string
		src *string
	}{
		{&a.Title, f.Title},
		{&a.Subtitle, f.Subtitle},
		{&a.Content, f.Content},
		{&a.ImageURL, f.ImageURL},
	} {
		if c.src != nil && *c.src != "" && *c.src != *c.dst {
			*c.dst = *c.src
			changed = true
		}
	}
	return changed
}
