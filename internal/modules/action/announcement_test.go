package action

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/validate"
)

func announcementPayload(title string) validate.Payload {
	return validate.Payload{
		"fullName":    "Ana Souza",
		"institution": "City Theatre",
		"email":       "ana@example.com",
		"initialDate": "2024-03-01",
		"finalDate":   "2024-03-31T18:00:00Z",
		"title":       title,
		"subtitle":    "Spring season",
		"description": "Submissions for the spring season",
	}
}

func TestAnnouncement_CreateThenGet(t *testing.T) {
	svc := NewAnnouncementService(NewMemoryAnnouncementRepository(), validate.Default)
	ctx := context.Background()

	p := announcementPayload("Open Call")
	p["urlImg"] = "https://img.example.com/call.png"
	created, err := svc.Create(ctx, p)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "https://img.example.com/call.png", created.URLImg)
	assert.Empty(t, created.CategoryRef)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), created.InitialDate)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.Get(ctx, EncodeTitle("Open Call"))
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestAnnouncement_CreateValidation(t *testing.T) {
	repo := NewMemoryAnnouncementRepository()
	svc := NewAnnouncementService(repo, validate.Default)
	ctx := context.Background()

	missing := announcementPayload("Open Call")
	delete(missing, "institution")
	badDate := announcementPayload("Open Call")
	badDate["finalDate"] = "next friday"

	for _, p := range []validate.Payload{missing, badDate, {}} {
		_, err := svc.Create(ctx, p)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	}
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

type rejectAll struct{}

func (rejectAll) IsValid(validate.Shape, validate.Payload) bool { return false }

func TestAnnouncement_UsesInjectedValidator(t *testing.T) {
	svc := NewAnnouncementService(NewMemoryAnnouncementRepository(), rejectAll{})
	_, err := svc.Create(context.Background(), announcementPayload("Open Call"))
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestAnnouncement_DuplicateTitle(t *testing.T) {
	repo := NewMemoryAnnouncementRepository()
	svc := NewAnnouncementService(repo, validate.Default)
	ctx := context.Background()

	_, err := svc.Create(ctx, announcementPayload("Open Call"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, announcementPayload("Open Call"))
	assert.ErrorIs(t, err, apperr.ErrConflict)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// staleReads hides every record from the uniqueness lookup, as if each create
// had checked before the other one wrote.
type staleReads struct{ AnnouncementRepository }

func (staleReads) GetByTitle(context.Context, string) (*Announcement, error) {
	return nil, apperr.ErrNotFound
}

// plainRepo is a store without a unique title constraint.
type plainRepo struct {
	staleReads
	created []*Announcement
}

func (r *plainRepo) Create(_ context.Context, a *Announcement) error {
	r.created = append(r.created, a)
	return nil
}

func TestAnnouncement_CheckThenCreateRace(t *testing.T) {
	ctx := context.Background()

	t.Run("check alone lets both creates through", func(t *testing.T) {
		repo := &plainRepo{}
		svc := NewAnnouncementService(repo, validate.Default)
		_, err := svc.Create(ctx, announcementPayload("Open Call"))
		require.NoError(t, err)
		_, err = svc.Create(ctx, announcementPayload("Open Call"))
		require.NoError(t, err)
		assert.Len(t, repo.created, 2)
	})

	t.Run("store constraint rejects the second create", func(t *testing.T) {
		svc := NewAnnouncementService(staleReads{NewMemoryAnnouncementRepository()}, validate.Default)
		_, err := svc.Create(ctx, announcementPayload("Open Call"))
		require.NoError(t, err)
		_, err = svc.Create(ctx, announcementPayload("Open Call"))
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("concurrent creates keep one record", func(t *testing.T) {
		repo := NewMemoryAnnouncementRepository()
		svc := NewAnnouncementService(repo, validate.Default)

		const n = 16
		var wg sync.WaitGroup
		errs := make([]error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = svc.Create(ctx, announcementPayload("Open Call"))
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, apperr.ErrConflict)
		}
		assert.Equal(t, 1, succeeded)
		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestAnnouncement_GetErrors(t *testing.T) {
	svc := NewAnnouncementService(NewMemoryAnnouncementRepository(), validate.Default)
	ctx := context.Background()

	_, err := svc.Get(ctx, "")
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	_, err = svc.Get(ctx, "Nothing_Here")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Update(ctx, "", validate.Payload{})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	_, err = svc.Update(ctx, "Nothing_Here", validate.Payload{"subtitle": "x"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, ""), apperr.ErrBadRequest)
	assert.ErrorIs(t, svc.Delete(ctx, "Nothing_Here"), apperr.ErrNotFound)
}

func TestAnnouncement_List(t *testing.T) {
	svc := NewAnnouncementService(NewMemoryAnnouncementRepository(), validate.Default)
	ctx := context.Background()

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := svc.Create(ctx, announcementPayload(title))
		require.NoError(t, err)
	}
	all, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "First", all[0].Title)
	assert.Equal(t, "Third", all[2].Title)
}

func TestAnnouncement_UpdateOverlay(t *testing.T) {
	svc := NewAnnouncementService(NewMemoryAnnouncementRepository(), validate.Default)
	ctx := context.Background()

	p := announcementPayload("Open Call")
	p["category_ref"] = "theatre"
	before, err := svc.Create(ctx, p)
	require.NoError(t, err)

	t.Run("empty payload changes nothing", func(t *testing.T) {
		got, err := svc.Update(ctx, "Open_Call", validate.Payload{})
		require.NoError(t, err)
		assert.Equal(t, before, got)
		stored, err := svc.Get(ctx, "Open_Call")
		require.NoError(t, err)
		assert.Equal(t, before, stored)
	})

	t.Run("supplied keys overwrite, others stay", func(t *testing.T) {
		_, err := svc.Update(ctx, "Open_Call", validate.Payload{
			"subtitle":     "Summer season",
			"category_ref": "",
			"finalDate":    "2024-04-15",
		})
		require.NoError(t, err)

		got, err := svc.Get(ctx, "Open_Call")
		require.NoError(t, err)
		assert.Equal(t, "Summer season", got.Subtitle)
		assert.Empty(t, got.CategoryRef)
		assert.Equal(t, time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC), got.FinalDate)
		assert.Equal(t, before.Description, got.Description)
		assert.Equal(t, before.InitialDate, got.InitialDate)
		assert.Equal(t, before.ID, got.ID)
	})

	t.Run("invalid update", func(t *testing.T) {
		_, err := svc.Update(ctx, "Open_Call", validate.Payload{"initialDate": "soon"})
		assert.ErrorIs(t, err, apperr.ErrValidation)
		_, err = svc.Update(ctx, "Open_Call", validate.Payload{"title": ""})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestAnnouncement_RenameAndConflict(t *testing.T) {
	svc := NewAnnouncementService(NewMemoryAnnouncementRepository(), validate.Default)
	ctx := context.Background()

	_, err := svc.Create(ctx, announcementPayload("Open Call"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, announcementPayload("Closed Call"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, "Open_Call", validate.Payload{"title": "Closed Call"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	renamed, err := svc.Update(ctx, "Open_Call", validate.Payload{"title": "Late Call"})
	require.NoError(t, err)
	assert.Equal(t, "Late Call", renamed.Title)

	_, err = svc.Get(ctx, "Open_Call")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = svc.Get(ctx, "Late_Call")
	assert.NoError(t, err)
}

func TestAnnouncement_Delete(t *testing.T) {
	svc := NewAnnouncementService(NewMemoryAnnouncementRepository(), validate.Default)
	ctx := context.Background()

	_, err := svc.Create(ctx, announcementPayload("Open Call"))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "Open_Call"))

	_, err = svc.Get(ctx, "Open_Call")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// The title is free again.
	_, err = svc.Create(ctx, announcementPayload("Open Call"))
	assert.NoError(t, err)
}
