package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goose-quotes/internal/domains/goose/model"
)

var nilStr *string

var gooseRowColumns = []string{
	"id", "name", "description", "is_flock_leader",
	"programming_language", "motivations", "location", "bio",
}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, RepositoryInterface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewPostgresRepository(mock)
}

func TestPostgresFindByID(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`FROM geese WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(gooseRowColumns).
			AddRow(int64(1), "Gary", model.DescribeGoose("Gary"), true, strPtr("Go"), nilStr, nilStr, nilStr))

	g, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Gary", g.Name)
	assert.True(t, g.IsFlockLeader)
	require.NotNil(t, g.ProgrammingLanguage)
	assert.Equal(t, "Go", *g.ProgrammingLanguage)
	assert.Nil(t, g.Bio)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindByIDNotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`FROM geese WHERE id = \$1`).
		WithArgs(int64(999)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrGooseNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindByIDQueryFailure(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`FROM geese WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByID(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrGooseNotFound)
}

func TestPostgresNameSearchEscapesAndOrders(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`WHERE name ILIKE \$1 ESCAPE '\\' ORDER BY name ASC`).
		WithArgs(`%50\%\_o%`).
		WillReturnRows(pgxmock.NewRows(gooseRowColumns).
			AddRow(int64(2), "Boo", "d", false, nilStr, nilStr, nilStr, nilStr).
			AddRow(int64(1), "Goose", "d", false, nilStr, nilStr, nilStr, nilStr))

	found, err := repo.FindBySubstring(context.Background(), model.SearchByName, "50%_o")
	require.NoError(t, err)
	assert.Equal(t, []string{"Boo", "Goose"}, names(found))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLanguageSearch(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`WHERE programming_language ILIKE \$1`).
		WithArgs("%go%").
		WillReturnRows(pgxmock.NewRows(gooseRowColumns))

	found, err := repo.FindBySubstring(context.Background(), model.SearchByLanguage, "go")
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRejectsUnknownSearchField(t *testing.T) {
	_, repo := newMockRepo(t)

	_, err := repo.FindBySubstring(context.Background(), model.SearchField("bio; DROP TABLE geese"), "x")
	assert.Error(t, err)
}

func TestPostgresFindFlockLeaders(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`WHERE is_flock_leader = true`).
		WillReturnRows(pgxmock.NewRows(gooseRowColumns).
			AddRow(int64(3), "Leader", "d", true, nilStr, nilStr, nilStr, nilStr))

	leaders, err := repo.FindFlockLeaders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Leader"}, names(leaders))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInsert(t *testing.T) {
	mock, repo := newMockRepo(t)

	desc := model.DescribeGoose("Gary")
	mock.ExpectQuery(`INSERT INTO geese`).
		WithArgs("Gary", desc, false, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(gooseRowColumns).
			AddRow(int64(1), "Gary", desc, false, nilStr, nilStr, nilStr, nilStr))

	created, err := repo.Insert(context.Background(), &model.Goose{Name: "Gary", Description: desc})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdate(t *testing.T) {
	mock, repo := newMockRepo(t)

	bio := "A goose of few honks."
	mock.ExpectQuery(`UPDATE geese`).
		WithArgs(int64(1), (*string)(nil), (*string)(nil), &bio).
		WillReturnRows(pgxmock.NewRows(gooseRowColumns).
			AddRow(int64(1), "Gary", "d", false, nilStr, strPtr("bread"), nilStr, &bio))

	updated, err := repo.Update(context.Background(), 1, model.GoosePatch{Bio: &bio})
	require.NoError(t, err)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, bio, *updated.Bio)
	assert.Equal(t, "bread", *updated.Motivations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateNotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`UPDATE geese`).
		WithArgs(int64(999), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Update(context.Background(), 999, model.GoosePatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, model.ErrGooseNotFound)
}

func TestPostgresPing(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectExec(`SELECT 1`).WillReturnResult(pgxmock.NewResult("SELECT", 1))

	assert.NoError(t, repo.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
	assert.Equal(t, "goose", escapeLike("goose"))
}
