package repository

import (
	"context"

	"goose-quotes/internal/domains/goose/model"
)

// RepositoryInterface is the Goose store.
// It persists what it is told and owns no business rules.
type RepositoryInterface interface {
	// FindByID returns model.ErrGooseNotFound when no row has the id
	FindByID(ctx context.Context, id int64) (*model.Goose, error)

	// FindAll returns every goose in store order
	FindAll(ctx context.Context) ([]model.Goose, error)

	// FindBySubstring does a case-insensitive %pattern% match on field.
	// Name searches are ordered by name ascending.
	FindBySubstring(ctx context.Context, field model.SearchField, pattern string) ([]model.Goose, error)

	// FindFlockLeaders returns geese with isFlockLeader = true
	FindFlockLeaders(ctx context.Context) ([]model.Goose, error)

	// Insert stores a new goose and returns it with the assigned id
	Insert(ctx context.Context, g *model.Goose) (*model.Goose, error)

	// Update applies the non-nil patch fields and returns the stored row.
	// Returns model.ErrGooseNotFound when no row has the id
	Update(ctx context.Context, id int64, patch model.GoosePatch) (*model.Goose, error)

	// Ping checks that the store is reachable
	Ping(ctx context.Context) error
}
