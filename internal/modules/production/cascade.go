package production

import (
	"context"
	"errors"
	"log/slog"

	"github.com/georgemunganga/productions-api/internal/apperr"
)

// CascadeDeleter removes a production's members, in list order, before the
// production itself. It runs forward only: when a member removal fails the
// members already removed stay removed and the parent is kept, still listing
// them. Members that no longer exist are skipped, so a retry finishes the
// remaining ones.
type CascadeDeleter struct {
	members MemberStore
	parents Repository
	logger  *slog.Logger
}

func NewCascadeDeleter(members MemberStore, parents Repository, logger *slog.Logger) *CascadeDeleter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CascadeDeleter{members: members, parents: parents, logger: logger}
}

func (c *CascadeDeleter) Delete(ctx context.Context, p *Production) error {
	for i, id := range p.ListOfProductions {
		if _, err := c.members.GetByID(ctx, id); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				c.skip(ctx, p, i, id)
				continue
			}
			return apperr.Persistence("error on delete production", err)
		}
		if err := c.members.Delete(ctx, id); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				c.skip(ctx, p, i, id)
				continue
			}
			c.logger.ErrorContext(ctx, "cascade stopped", "production", p.ID, "member", id, "removed", i, "error", err)
			return apperr.Persistence("error on delete production", err)
		}
	}
	if err := c.parents.Delete(ctx, p.ID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotFound("production does not exist")
		}
		return apperr.Persistence("error on delete production", err)
	}
	return nil
}

func (c *CascadeDeleter) skip(ctx context.Context, p *Production, pos int, id string) {
	c.logger.WarnContext(ctx, "skipping missing production data", "production", p.ID, "member", id, "position", pos)
}
