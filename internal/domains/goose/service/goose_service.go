package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"goose-quotes/internal/domains/goose/model"
	"goose-quotes/internal/domains/goose/repository"
)

type gooseService struct {
	repo      repository.RepositoryInterface
	generator Generator
}

// NewGooseService creates the goose service.
// Both collaborators are owned by the caller.
func NewGooseService(repo repository.RepositoryInterface, generator Generator) ServiceInterface {
	return &gooseService{
		repo:      repo,
		generator: generator,
	}
}

func (s *gooseService) ListGeese(ctx context.Context, name string) ([]model.Goose, error) {
	var (
		geese []model.Goose
		err   error
	)
	if name == "" {
		geese, err = s.repo.FindAll(ctx)
	} else {
		geese, err = s.repo.FindBySubstring(ctx, model.SearchByName, name)
	}
	if err != nil {
		return nil, s.storeError("list geese", err)
	}
	return geese, nil
}

func (s *gooseService) ListFlockLeaders(ctx context.Context) ([]model.Goose, error) {
	geese, err := s.repo.FindFlockLeaders(ctx)
	if err != nil {
		return nil, s.storeError("list flock leaders", err)
	}
	return geese, nil
}

func (s *gooseService) ListByLanguage(ctx context.Context, language string) ([]model.Goose, error) {
	geese, err := s.repo.FindBySubstring(ctx, model.SearchByLanguage, language)
	if err != nil {
		return nil, s.storeError("list geese by language", err)
	}
	return geese, nil
}

func (s *gooseService) GetGoose(ctx context.Context, id int64) (*model.Goose, error) {
	// No goose has a non-positive id; skip the round trip
	if id <= 0 {
		return nil, model.ErrGooseNotFound
	}

	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrGooseNotFound) {
			return nil, model.ErrGooseNotFound
		}
		return nil, s.storeError("get goose", err)
	}
	return g, nil
}

func (s *gooseService) CreateGoose(ctx context.Context, req *model.CreateGooseRequest) (*model.Goose, error) {
	if req == nil {
		return nil, &model.ValidationError{Message: "name is required"}
	}
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err)
	}

	created, err := s.repo.Insert(ctx, req.ToEntity())
	if err != nil {
		return nil, s.storeError("create goose", err)
	}

	log.Info().Int64("goose_id", created.ID).Str("name", created.Name).Msg("goose created")
	return created, nil
}

func (s *gooseService) UpdateName(ctx context.Context, id int64, req *model.UpdateNameRequest) (*model.Goose, error) {
	if req == nil {
		return nil, &model.ValidationError{Message: "name is required"}
	}
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err)
	}

	name := strings.TrimSpace(req.Name)
	return s.update(ctx, id, model.GoosePatch{Name: &name})
}

func (s *gooseService) UpdateMotivations(ctx context.Context, id int64, req *model.UpdateMotivationsRequest) (*model.Goose, error) {
	if req == nil {
		return nil, &model.ValidationError{Message: "motivations is required"}
	}
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err)
	}

	return s.update(ctx, id, model.GoosePatch{Motivations: req.Motivations})
}

func (s *gooseService) Honk(ctx context.Context, id int64) (*model.HonkResponse, error) {
	g, err := s.GetGoose(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.HonkResponse{Message: model.HonkMessage(g.Name)}, nil
}

func (s *gooseService) GenerateQuotes(ctx context.Context, id int64) (*model.QuotesResponse, error) {
	g, err := s.GetGoose(ctx, id)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.GenerateQuotes(ctx, model.PersonaFor(g))
	if err != nil {
		return nil, s.generationError("generate quotes", id, err)
	}

	return &model.QuotesResponse{
		Name:   g.Name,
		Quotes: model.SplitQuotes(text),
	}, nil
}

func (s *gooseService) GenerateBio(ctx context.Context, id int64) (*model.Goose, error) {
	g, err := s.GetGoose(ctx, id)
	if err != nil {
		return nil, err
	}

	// Generation must finish before anything is written
	bio, err := s.generator.GenerateBio(ctx, model.PersonaFor(g))
	if err != nil {
		return nil, s.generationError("generate bio", id, err)
	}
	bio = strings.TrimSpace(bio)
	if bio == "" {
		return nil, s.generationError("generate bio", id, errors.New("empty bio"))
	}

	return s.update(ctx, id, model.GoosePatch{Bio: &bio})
}

func (s *gooseService) update(ctx context.Context, id int64, patch model.GoosePatch) (*model.Goose, error) {
	if id <= 0 {
		return nil, model.ErrGooseNotFound
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, model.ErrGooseNotFound) {
			return nil, model.ErrGooseNotFound
		}
		return nil, s.storeError("update goose", err)
	}
	return updated, nil
}

func (s *gooseService) storeError(op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("goose store failed")
	return fmt.Errorf("%s: %w: %w: %w", op, model.ErrCollaborator, model.ErrStore, err)
}

func (s *gooseService) generationError(op string, id int64, err error) error {
	log.Error().Err(err).Str("op", op).Int64("goose_id", id).Msg("text generation failed")
	return fmt.Errorf("%s: %w: %w: %w", op, model.ErrCollaborator, model.ErrGenerationFailed, err)
}
