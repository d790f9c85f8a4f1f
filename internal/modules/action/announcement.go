package action

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/validate"
)

type announcementService struct {
	repo      AnnouncementRepository
	validator validate.Validator
	now       func() time.Time
}

// NewAnnouncementService returns the title-addressed action resource.
func NewAnnouncementService(repo AnnouncementRepository, validator validate.Validator) Resource[Announcement] {
	return &announcementService{repo: repo, validator: validator, now: time.Now}
}

func (s *announcementService) Create(ctx context.Context, payload validate.Payload) (*Announcement, error) {
	if !s.validator.IsValid(announcementShape, payload) {
		return nil, apperr.Validation("validation fails")
	}
	var f announcementFields
	if err := payload.Decode(&f); err != nil {
		return nil, apperr.Validation("validation fails")
	}

	_, err := s.repo.GetByTitle(ctx, *f.Title)
	switch {
	case err == nil:
		return nil, apperr.Conflict("title already exists, try another title")
	case !errors.Is(err, apperr.ErrNotFound):
		return nil, apperr.Persistence("error on create action", err)
	}

	now := s.now().UTC()
	a := &Announcement{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	if err := f.apply(a); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, apperr.Conflict("title already exists, try another title")
		}
		return nil, apperr.Persistence("error on create action", err)
	}
	return a, nil
}

func (s *announcementService) List(ctx context.Context) ([]*Announcement, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Persistence("error on list actions", err)
	}
	if out == nil {
		out = []*Announcement{}
	}
	return out, nil
}

func (s *announcementService) Get(ctx context.Context, rawTitle string) (*Announcement, error) {
	if rawTitle == "" {
		return nil, apperr.BadRequest("title not provided")
	}
	a, err := s.repo.GetByTitle(ctx, DecodeTitle(rawTitle))
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.NotFound("action not found")
	}
	if err != nil {
		return nil, apperr.Persistence("error on get action", err)
	}
	return a, nil
}

// Update overlays every supplied field onto the stored announcement. An
// explicit empty string clears optional fields; an empty payload writes nothing.
func (s *announcementService) Update(ctx context.Context, rawTitle string, payload validate.Payload) (*Announcement, error) {
	if !s.validator.IsValid(announcementShape.Optional(), payload) {
		return nil, apperr.Validation("validation fails")
	}
	var f announcementFields
	if err := payload.Decode(&f); err != nil {
		return nil, apperr.Validation("validation fails")
	}
	if f.Title != nil && *f.Title == "" {
		return nil, apperr.Validation("title must not be empty")
	}

	a, err := s.Get(ctx, rawTitle)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return a, nil
	}
	if err := f.apply(a); err != nil {
		return nil, err
	}
	a.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, a); err != nil {
		switch {
		case errors.Is(err, apperr.ErrConflict):
			return nil, apperr.Conflict("title already exists, try another title")
		case errors.Is(err, apperr.ErrNotFound):
			return nil, apperr.NotFound("action not found")
		}
		return nil, apperr.Persistence("error on update action", err)
	}
	return a, nil
}

func (s *announcementService) Delete(ctx context.Context, rawTitle string) error {
	a, err := s.Get(ctx, rawTitle)
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

// apply copies every non-nil field onto a.
func (f announcementFields) apply(a *Announcement) error {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&a.Title, f.Title)
	set(&a.Subtitle, f.Subtitle)
	set(&a.Description, f.Description)
	set(&a.FullName, f.FullName)
	set(&a.Institution, f.Institution)
	set(&a.Email, f.Email)
	set(&a.URLImg, f.URLImg)
	set(&a.CategoryRef, f.CategoryRef)

	for _, d := range []struct {
		dst *time.Time
		src *string
	}{{&a.InitialDate, f.InitialDate}, {&a.FinalDate, f.FinalDate}} {
		if d.src == nil {
			continue
		}
		t, err := validate.ParseDate(*d.src)
		if err != nil {
			return apperr.Validation("validation fails")
		}
		*d.dst = t.UTC()
	}
	return nil
}
