package productiondata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/productions-api/internal/apperr"
)

// Service defines production data business logic.
type Service interface {
	Create(ctx context.Context, data json.RawMessage) (*Record, error)
	Get(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context) ([]*Record, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, data json.RawMessage) (*Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, apperr.Validation("production data must be a JSON object")
	}
	now := time.Now().UTC()
	rec := &Record{
		ID:        uuid.NewString(),
		Data:      append(json.RawMessage(nil), trimmed...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, apperr.Persistence("error on create production data", err)
	}
	return rec, nil
}

func (s *service) Get(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, apperr.BadRequest("id not provided")
	}
	rec, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.NotFound("production data not found")
	}
	if err != nil {
		return nil, apperr.Persistence("error on get production data", err)
	}
	return rec, nil
}

func (s *service) List(ctx context.Context) ([]*Record, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Persistence("error on list production data", err)
	}
	if recs == nil {
		recs = []*Record{}
	}
	return recs, nil
}
