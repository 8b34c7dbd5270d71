package sqlite

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

const listLocales = `
select locale from layouts order by locale
`

func (q *Queries) ListLocales(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listLocales)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var locale string
		if err := rows.Scan(&locale); err != nil {
			return nil, err
		}
		items = append(items, locale)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getLayout = `
select document from layouts where locale = ?
`

func (q *Queries) GetLayout(ctx context.Context, locale string) (string, error) {
	row := q.db.QueryRowContext(ctx, getLayout, locale)
	var document string
	err := row.Scan(&document)
	return document, err
}

const setLayout = `
insert into layouts (locale, document, updated_at)
values (?, ?, current_timestamp)
on conflict (locale) do update set document   = excluded.document,
                                   updated_at = excluded.updated_at
`

type SetLayoutParams struct {
	Locale   string
	Document string
}

func (q *Queries) SetLayout(ctx context.Context, arg SetLayoutParams) error {
	_, err := q.db.ExecContext(ctx, setLayout, arg.Locale, arg.Document)
	return err
}

const getProject = `
select document from project where id = 1
`

func (q *Queries) GetProject(ctx context.Context) (string, error) {
	row := q.db.QueryRowContext(ctx, getProject)
	var document string
	err := row.Scan(&document)
	return document, err
}

const setProject = `
insert into project (id, document)
values (1, ?)
on conflict (id) do update set document = excluded.document
`

func (q *Queries) SetProject(ctx context.Context, document string) error {
	_, err := q.db.ExecContext(ctx, setProject, document)
	return err
}
