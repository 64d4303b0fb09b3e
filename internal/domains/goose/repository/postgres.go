package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"goose-quotes/internal/domains/goose/model"
)

// DBTX is the subset of pgxpool.Pool used by the repository
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	db DBTX
}

// NewPostgresRepository creates a goose repository backed by PostgreSQL
func NewPostgresRepository(db DBTX) RepositoryInterface {
	return &postgresRepository{db: db}
}

const gooseColumns = `id, name, description, COALESCE(is_flock_leader, false), programming_language, motivations, location, bio`

// searchColumns whitelists the columns usable in FindBySubstring
var searchColumns = map[model.SearchField]string{
	model.SearchByName:     "name",
	model.SearchByLanguage: "programming_language",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoose(row rowScanner) (*model.Goose, error) {
	var g model.Goose
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Description,
		&g.IsFlockLeader,
		&g.ProgrammingLanguage,
		&g.Motivations,
		&g.Location,
		&g.Bio,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Goose, error) {
	query := `SELECT ` + gooseColumns + ` FROM geese WHERE id = $1`

	g, err := scanGoose(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGooseNotFound
		}
		return nil, fmt.Errorf("failed to get goose by id: %w", err)
	}
	return g, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Goose, error) {
	query := `SELECT ` + gooseColumns + ` FROM geese`
	return r.queryList(ctx, "find all geese", query)
}

func (r *postgresRepository) FindBySubstring(ctx context.Context, field model.SearchField, pattern string) ([]model.Goose, error) {
	column, ok := searchColumns[field]
	if !ok {
		return nil, fmt.Errorf("unsupported search field: %s", field)
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + gooseColumns + ` FROM geese`)
	queryBuilder.WriteString(fmt.Sprintf(` WHERE %s ILIKE $1 ESCAPE '\'`, column))
	if field == model.SearchByName {
		queryBuilder.WriteString(` ORDER BY name ASC`)
	}

	return r.queryList(ctx, "search geese", queryBuilder.String(), "%"+escapeLike(pattern)+"%")
}

func (r *postgresRepository) FindFlockLeaders(ctx context.Context) ([]model.Goose, error) {
	query := `SELECT ` + gooseColumns + ` FROM geese WHERE is_flock_leader = true`
	return r.queryList(ctx, "find flock leaders", query)
}

func (r *postgresRepository) Insert(ctx context.Context, g *model.Goose) (*model.Goose, error) {
	query := `
        INSERT INTO geese (name, description, is_flock_leader, programming_language, motivations, location)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + gooseColumns

	created, err := scanGoose(r.db.QueryRow(
		ctx,
		query,
		g.Name,
		g.Description,
		g.IsFlockLeader,
		g.ProgrammingLanguage,
		g.Motivations,
		g.Location,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create goose: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, patch model.GoosePatch) (*model.Goose, error) {
	query := `
        UPDATE geese
        SET name = COALESCE($2, name),
            motivations = COALESCE($3, motivations),
            bio = COALESCE($4, bio)
        WHERE id = $1
        RETURNING ` + gooseColumns

	updated, err := scanGoose(r.db.QueryRow(ctx, query, id, patch.Name, patch.Motivations, patch.Bio))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGooseNotFound
		}
		return nil, fmt.Errorf("failed to update goose: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Ping(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `SELECT 1`)
	return err
}

func (r *postgresRepository) queryList(ctx context.Context, op, query string, args ...any) ([]model.Goose, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer rows.Close()

	geese := make([]model.Goose, 0)
	for rows.Next() {
		g, err := scanGoose(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goose: %w", err)
		}
		geese = append(geese, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	return geese, nil
}

// escapeLike escapes LIKE wildcards so the pattern matches literally
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
