package service

import (
	"context"

	"goose-quotes/internal/domains/goose/model"
)

// ServiceInterface is the single writer of Goose state.
// Lookups of unknown ids return model.ErrGooseNotFound, bad input returns
// *model.ValidationError and store or generator failures wrap model.ErrCollaborator.
type ServiceInterface interface {
	// ListGeese returns every goose, or the case-insensitive name matches
	// ordered by name when name is not empty
	ListGeese(ctx context.Context, name string) ([]model.Goose, error)
	ListFlockLeaders(ctx context.Context) ([]model.Goose, error)
	ListByLanguage(ctx context.Context, language string) ([]model.Goose, error)
	GetGoose(ctx context.Context, id int64) (*model.Goose, error)

	// CreateGoose derives the description and stores the goose
	CreateGoose(ctx context.Context, req *model.CreateGooseRequest) (*model.Goose, error)
	UpdateName(ctx context.Context, id int64, req *model.UpdateNameRequest) (*model.Goose, error)
	UpdateMotivations(ctx context.Context, id int64, req *model.UpdateMotivationsRequest) (*model.Goose, error)

	// Honk is read-only
	Honk(ctx context.Context, id int64) (*model.HonkResponse, error)

	// GenerateQuotes does not persist anything
	GenerateQuotes(ctx context.Context, id int64) (*model.QuotesResponse, error)

	// GenerateBio persists the bio only after generation succeeded
	GenerateBio(ctx context.Context, id int64) (*model.Goose, error)
}

// Generator writes persona text; implemented by ai.PersonaWriter
type Generator interface {
	GenerateQuotes(ctx context.Context, p model.Persona) (string, error)
	GenerateBio(ctx context.Context, p model.Persona) (string, error)
}
