package production

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/database"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Production) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO productions (id, title, subtitle, responsible, situation, list_of_productions, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.Title, p.Subtitle, p.Responsible, p.Situation, members(p), p.CreatedAt, p.UpdatedAt)
	return database.PostgresError("insert production", err)
}

func (r *postgresRepo) GetByTitle(ctx context.Context, title string) (*Production, error) {
	return r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, title, subtitle, responsible, situation, list_of_productions, created_at, updated_at
		FROM productions WHERE title=$1`, title))
}

func (r *postgresRepo) List(ctx context.Context) ([]*Production, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, subtitle, responsible, situation, list_of_productions, created_at, updated_at
		FROM productions ORDER BY seq`)
	if err != nil {
		return nil, database.PostgresError("list productions", err)
	}
	defer rows.Close()
	var out []*Production
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, database.PostgresError("list productions", rows.Err())
}

func (r *postgresRepo) Update(ctx context.Context, p *Production) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE productions
		SET title=$1, subtitle=$2, responsible=$3, situation=$4, list_of_productions=$5, updated_at=$6
		WHERE id=$7`,
		p.Title, p.Subtitle, p.Responsible, p.Situation, members(p), p.UpdatedAt, p.ID)
	if err != nil {
		return database.PostgresError("update production", err)
	}
	return rowsAffected(res)
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM productions WHERE id=$1`, id)
	if err != nil {
		return database.PostgresError("delete production", err)
	}
	return rowsAffected(res)
}

func (r *postgresRepo) scan(row interface{ Scan(...interface{}) error }) (*Production, error) {
	p := &Production{}
	err := row.Scan(&p.ID, &p.Title, &p.Subtitle, &p.Responsible, &p.Situation,
		pq.Array(&p.ListOfProductions), &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, database.PostgresError("select production", err)
	}
	if p.ListOfProductions == nil {
		p.ListOfProductions = []string{}
	}
	return p, nil
}

// members encodes the id list as TEXT[]; a nil slice would encode as NULL.
func members(p *Production) interface{} {
	if p.ListOfProductions == nil {
		return pq.Array([]string{})
	}
	return pq.Array(p.ListOfProductions)
}

func rowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
