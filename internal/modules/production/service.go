package production

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/modules/productiondata"
	"github.com/georgemunganga/productions-api/internal/validate"
)

// Service defines production business logic. Productions are addressed by
// their exact title.
type Service interface {
	Create(ctx context.Context, payload validate.Payload) (string, error)
	List(ctx context.Context) ([]*Production, error)
	Show(ctx context.Context, title string) (*View, error)
	Update(ctx context.Context, title string, payload validate.Payload) (*Production, error)
	Destroy(ctx context.Context, title string) error
}

var (
	createShape = validate.Object(
		validate.String("title").Require(),
		validate.String("subtitle").Require(),
		validate.String("responsible").Require(),
		validate.String("situation").Require(),
		validate.StringList("listOfProductions"),
	)
	updateShape = validate.Object(
		validate.String("title"),
		validate.String("subtitle"),
		validate.String("responsible"),
		validate.String("situation"),
	)
)

type service struct {
	repo      Repository
	members   MemberStore
	users     UserDirectory
	validator validate.Validator
	cascade   *CascadeDeleter
	now       func() time.Time
}

func NewService(repo Repository, members MemberStore, users UserDirectory, validator validate.Validator, logger *slog.Logger) Service {
	return &service{
		repo:      repo,
		members:   members,
		users:     users,
		validator: validator,
		cascade:   NewCascadeDeleter(members, repo, logger),
		now:       time.Now,
	}
}

func (s *service) Create(ctx context.Context, payload validate.Payload) (string, error) {
	if !s.validator.IsValid(createShape, payload) {
		return "", apperr.Validation("validation fails")
	}
	var f productionFields
	if err := payload.Decode(&f); err != nil {
		return "", apperr.Validation("validation fails")
	}

	ok, err := s.users.Exists(ctx, *f.Responsible)
	if err != nil {
		return "", apperr.Persistence("error on create production", err)
	}
	if !ok {
		return "", apperr.Unprocessable("user does not exist")
	}

	_, err = s.repo.GetByTitle(ctx, *f.Title)
	switch {
	case err == nil:
		return "", apperr.Conflict("production already exists")
	case !errors.Is(err, apperr.ErrNotFound):
		return "", apperr.Persistence("error on create production", err)
	}

	now := s.now().UTC()
	p := &Production{
		ID:                uuid.NewString(),
		Title:             *f.Title,
		Subtitle:          *f.Subtitle,
		Responsible:       *f.Responsible,
		Situation:         *f.Situation,
		ListOfProductions: append([]string{}, f.ListOfProductions...),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return "", apperr.Conflict("production already exists")
		}
		return "", apperr.Persistence("error on create production", err)
	}
	return p.ID, nil
}

func (s *service) List(ctx context.Context) ([]*Production, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Persistence("error on list productions", err)
	}
	if out == nil {
		out = []*Production{}
	}
	return out, nil
}

func (s *service) find(ctx context.Context, title string) (*Production, error) {
	if title == "" {
		return nil, apperr.BadRequest("title not provided")
	}
	p, err := s.repo.GetByTitle(ctx, title)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.NotFound("production does not exist")
	}
	if err != nil {
		return nil, apperr.Persistence("error on get production", err)
	}
	return p, nil
}

// Show expands the member ids into their records, keeping list order.
func (s *service) Show(ctx context.Context, title string) (*View, error) {
	p, err := s.find(ctx, title)
	if err != nil {
		return nil, err
	}
	data := make([]*productiondata.Record, len(p.ListOfProductions))
	for i, id := range p.ListOfProductions {
		rec, err := s.members.GetByID(ctx, id)
		if errors.Is(err, apperr.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, apperr.Persistence("error on showing production", err)
		}
		data[i] = rec
	}
	return &View{
		ID:                    p.ID,
		Title:                 p.Title,
		Subtitle:              p.Subtitle,
		Responsible:           p.Responsible,
		Situation:             p.Situation,
		ListOfProductionsData: data,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}, nil
}

// Update overlays title, subtitle, responsible and situation. The member list
// is kept as stored and the responsible user is not checked again.
func (s *service) Update(ctx context.Context, title string, payload validate.Payload) (*Production, error) {
	if !s.validator.IsValid(updateShape, payload) {
		return nil, apperr.Validation("validation fails")
	}
	var f productionFields
	if err := payload.Decode(&f); err != nil {
		return nil, apperr.Validation("validation fails")
	}
	if f.Title != nil && *f.Title == "" {
		return nil, apperr.Validation("title must not be empty")
	}

	p, err := s.find(ctx, title)
	if err != nil {
		return nil, err
	}
	changed := false
	for _, c := range []struct {
		dst *string
		src *string
	}{
		{&p.Title, f.Title},
		{&p.Subtitle, f.Subtitle},
		{&p.Responsible, f.Responsible},
		{&p.Situation, f.Situation},
	} {
		if c.src != nil {
			*c.dst = *c.src
			changed = true
		}
	}
	if !changed {
		return p, nil
	}
	p.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		switch {
		case errors.Is(err, apperr.ErrConflict):
			return nil, apperr.Conflict("production already exists")
		case errors.Is(err, apperr.ErrNotFound):
			return nil, apperr.NotFound("production does not exist")
		}
		return nil, apperr.Persistence("error on update production", err)
	}
	return p, nil
}

func (s *service) Destroy(ctx context.Context, title string) error {
	p, err := s.find(ctx, title)
	if err != nil {
		return err
	}
	return s.cascade.Delete(ctx, p)
}
