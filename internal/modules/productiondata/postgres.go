package productiondata

import (
	"context"
	"database/sql"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/database"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, rec *Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO production_data (id, data, created_at, updated_at)
		VALUES ($1,$2,$3,$4)`,
		rec.ID, []byte(rec.Data), rec.CreatedAt, rec.UpdatedAt)
	return database.PostgresError("insert production data", err)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Record, error) {
	rec := &Record{}
	var data []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT id, data, created_at, updated_at
		FROM production_data WHERE id=$1`, id).
		Scan(&rec.ID, &data, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, database.PostgresError("select production data", err)
	}
	rec.Data = data
	return rec, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]*Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, data, created_at, updated_at
		FROM production_data ORDER BY seq`)
	if err != nil {
		return nil, database.PostgresError("list production data", err)
	}
	defer rows.Close()
	var recs []*Record
	for rows.Next() {
		rec := &Record{}
		var data []byte
		if err := rows.Scan(&rec.ID, &data, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, database.PostgresError("scan production data", err)
		}
		rec.Data = data
		recs = append(recs, rec)
	}
	return recs, database.PostgresError("list production data", rows.Err())
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM production_data WHERE id=$1`, id)
	if err != nil {
		return database.PostgresError("delete production data", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
