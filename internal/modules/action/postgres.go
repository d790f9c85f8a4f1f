package action

import (
	"context"
	"database/sql"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/database"
)

const announcementColumns = `id, title, subtitle, description, full_name, institution, email,
	url_img, category_ref, initial_date, final_date, created_at, updated_at`

type postgresAnnouncementRepo struct{ db *sql.DB }

func NewPostgresAnnouncementRepository(db *sql.DB) AnnouncementRepository {
	return &postgresAnnouncementRepo{db: db}
}

func (r *postgresAnnouncementRepo) Create(ctx context.Context, a *Announcement) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO action_announcements (`+announcementColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		a.ID, a.Title, a.Subtitle, a.Description, a.FullName, a.Institution, a.Email,
		a.URLImg, a.CategoryRef, a.InitialDate, a.FinalDate, a.CreatedAt, a.UpdatedAt)
	return database.PostgresError("insert announcement", err)
}

func (r *postgresAnnouncementRepo) GetByTitle(ctx context.Context, title string) (*Announcement, error) {
	return r.scan(r.db.QueryRowContext(ctx, `
		SELECT `+announcementColumns+`
		FROM action_announcements WHERE title=$1`, title))
}

func (r *postgresAnnouncementRepo) List(ctx context.Context) ([]*Announcement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+announcementColumns+`
		FROM action_announcements ORDER BY seq`)
	if err != nil {
		return nil, database.PostgresError("list announcements", err)
	}
	defer rows.Close()
	var out []*Announcement
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, database.PostgresError("list announcements", rows.Err())
}

func (r *postgresAnnouncementRepo) Update(ctx context.Context, a *Announcement) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE action_announcements
		SET title=$1, subtitle=$2, description=$3, full_name=$4, institution=$5, email=$6,
		    url_img=$7, category_ref=$8, initial_date=$9, final_date=$10, updated_at=$11
		WHERE id=$12`,
		a.Title, a.Subtitle, a.Description, a.FullName, a.Institution, a.Email,
		a.URLImg, a.CategoryRef, a.InitialDate, a.FinalDate, a.UpdatedAt, a.ID)
	return affected(res, database.PostgresError("update announcement", err))
}

func (r *postgresAnnouncementRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM action_announcements WHERE id=$1`, id)
	return affected(res, database.PostgresError("delete announcement", err))
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func (r *postgresAnnouncementRepo) scan(row rowScanner) (*Announcement, error) {
	a := &Announcement{}
	var initial, final sql.NullTime
	err := row.Scan(&a.ID, &a.Title, &a.Subtitle, &a.Description, &a.FullName, &a.Institution,
		&a.Email, &a.URLImg, &a.CategoryRef, &initial, &final, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, database.PostgresError("select announcement", err)
	}
	a.InitialDate = initial.Time
	a.FinalDate = final.Time
	return a, nil
}

type postgresArticleRepo struct{ db *sql.DB }

func NewPostgresArticleRepository(db *sql.DB) ArticleRepository {
	return &postgresArticleRepo{db: db}
}

func (r *postgresArticleRepo) Create(ctx context.Context, a *Article) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO action_articles (id, title, subtitle, content, image_url, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.Title, a.Subtitle, a.Content, a.ImageURL, a.CreatedAt, a.UpdatedAt)
	return database.PostgresError("insert article", err)
}

func (r *postgresArticleRepo) GetByID(ctx context.Context, id string) (*Article, error) {
	return r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, title, subtitle, content, image_url, created_at, updated_at
		FROM action_articles WHERE id=$1`, id))
}

func (r *postgresArticleRepo) List(ctx context.Context) ([]*Article, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, subtitle, content, image_url, created_at, updated_at
		FROM action_articles ORDER BY seq`)
	if err != nil {
		return nil, database.PostgresError("list articles", err)
	}
	defer rows.Close()
	var out []*Article
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, database.PostgresError("list articles", rows.Err())
}

func (r *postgresArticleRepo) Update(ctx context.Context, a *Article) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE action_articles
		SET title=$1, subtitle=$2, content=$3, image_url=$4, updated_at=$5
		WHERE id=$6`,
		a.Title, a.Subtitle, a.Content, a.ImageURL, a.UpdatedAt, a.ID)
	return affected(res, database.PostgresError("update article", err))
}

func (r *postgresArticleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM action_articles WHERE id=$1`, id)
	return affected(res, database.PostgresError("delete article", err))
}

func (r *postgresArticleRepo) scan(row rowScanner) (*Article, error) {
	a := &Article{}
	err := row.Scan(&a.ID, &a.Title, &a.Subtitle, &a.Content, &a.ImageURL, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, database.PostgresError("select article", err)
	}
	return a, nil
}

// affected turns a write that touched no row into apperr.ErrNotFound.
func affected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
