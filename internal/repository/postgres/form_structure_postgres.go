package postgres

import (
	"context"
	"database/sql"
	"strings"

	"formapi/internal/model"
	"formapi/internal/repository"
)

// FormStructurePostgres is a PostgreSQL implementation of repository.FormStructureRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type FormStructurePostgres struct {
	db *sql.DB
}

// NewFormStructurePostgres creates a new FormStructurePostgres repository.
func NewFormStructurePostgres(db *sql.DB) *FormStructurePostgres {
	return &FormStructurePostgres{db: db}
}

var _ repository.FormStructureRepository = (*FormStructurePostgres)(nil)

const formStructureColumns = `id, name, date_created, structure_json`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFormStructure(s rowScanner) (*model.FormStructure, error) {
	var fs model.FormStructure
	if err := s.Scan(
		&fs.ID,
		&fs.Name,
		&fs.DateCreated,
		&fs.StructureJSON,
	); err != nil {
		return nil, err
	}
	return &fs, nil
}

// FindAll returns form structures using LIMIT/OFFSET pagination and a total count.
func (r *FormStructurePostgres) FindAll(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.FormStructure], error) {
	const qCount = `SELECT COUNT(*) FROM form_structures`
	const qList = `
		SELECT ` + formStructureColumns + `
		FROM form_structures
		ORDER BY date_created DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	return r.page(ctx, qCount, nil, qList, pq)
}

// FindByID fetches a single form structure by its ID.
func (r *FormStructurePostgres) FindByID(ctx context.Context, id int64) (*model.FormStructure, error) {
	const q = `
		SELECT ` + formStructureColumns + `
		FROM form_structures
		WHERE id = $1
	`
	return scanFormStructure(r.db.QueryRowContext(ctx, q, id))
}

// FindByNameContainingIgnoreCase runs an ILIKE search with LIKE wildcards in substring escaped.
func (r *FormStructurePostgres) FindByNameContainingIgnoreCase(ctx context.Context, substring string, pq repository.PageQuery) (*repository.PageResult[model.FormStructure], error) {
	const qCount = `
		SELECT COUNT(*) FROM form_structures
		WHERE name ILIKE '%' || $1 || '%' ESCAPE '\'
	`
	const qList = `
		SELECT ` + formStructureColumns + `
		FROM form_structures
		WHERE name ILIKE '%' || $3 || '%' ESCAPE '\'
		ORDER BY date_created DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	pattern := escapeLike(substring)
	return r.page(ctx, qCount, []any{pattern}, qList, pq, pattern)
}

// FindAllSummaries returns the id/name/date projection of every row, newest first.
func (r *FormStructurePostgres) FindAllSummaries(ctx context.Context) ([]model.FormSummary, error) {
	const q = `
		SELECT id, name, date_created
		FROM form_structures
		ORDER BY date_created DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.FormSummary, 0)
	for rows.Next() {
		var s model.FormSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.DateCreated); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Save inserts a new row when fs.ID is zero, otherwise updates name and structure_json in place.
func (r *FormStructurePostgres) Save(ctx context.Context, fs *model.FormStructure) (*model.FormStructure, error) {
	if fs.ID == 0 {
		const q = `
			INSERT INTO form_structures (name, date_created, structure_json)
			VALUES ($1, $2, $3)
			RETURNING ` + formStructureColumns + `
		`
		return scanFormStructure(r.db.QueryRowContext(ctx, q, fs.Name, fs.DateCreated, fs.StructureJSON))
	}

	// date_created is immutable once inserted.
	const q = `
		UPDATE form_structures
		SET name = $1, structure_json = $2
		WHERE id = $3
		RETURNING ` + formStructureColumns + `
	`
	return scanFormStructure(r.db.QueryRowContext(ctx, q, fs.Name, fs.StructureJSON, fs.ID))
}

// DeleteByID removes a form structure by ID. It does not return an error if the row does not exist.
func (r *FormStructurePostgres) DeleteByID(ctx context.Context, id int64) error {
	const q = `DELETE FROM form_structures WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// page runs a count query and a LIMIT/OFFSET list query. The list query takes limit and
// offset as $1 and $2, followed by listArgs.
func (r *FormStructurePostgres) page(ctx context.Context, qCount string, countArgs []any, qList string, pq repository.PageQuery, listArgs ...any) (*repository.PageResult[model.FormStructure], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, countArgs...).Scan(&total); err != nil {
		return nil, err
	}

	args := append([]any{pq.Limit, pq.Offset}, listArgs...)
	rows, err := r.db.QueryContext(ctx, qList, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.FormStructure, 0)
	for rows.Next() {
		fs, err := scanFormStructure(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *fs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.FormStructure]{
		Items: items,
		Total: total,
	}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE metacharacters in s match literally under ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
