package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateGooseRequest - POST /api/geese, CREATE_GOOSE
type CreateGooseRequest struct {
	Name                string  `json:"name"`
	IsFlockLeader       *bool   `json:"isFlockLeader,omitempty"`
	ProgrammingLanguage *string `json:"programmingLanguage,omitempty"`
	Motivations         *string `json:"motivations,omitempty"`
	Location            *string `json:"location,omitempty"`
}

func (r CreateGooseRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
	)
}

// ToEntity converts the request into a Goose ready to insert
func (r *CreateGooseRequest) ToEntity() *Goose {
	name := strings.TrimSpace(r.Name)
	g := &Goose{
		Name:                name,
		Description:         DescribeGoose(name),
		ProgrammingLanguage: r.ProgrammingLanguage,
		Motivations:         r.Motivations,
		Location:            r.Location,
	}
	if r.IsFlockLeader != nil {
		g.IsFlockLeader = *r.IsFlockLeader
	}
	return g
}

// UpdateNameRequest - PATCH /api/geese/:id
type UpdateNameRequest struct {
	Name string `json:"name"`
}

func (r UpdateNameRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
	)
}

// UpdateMotivationsRequest - PATCH /api/geese/:id/motivations
type UpdateMotivationsRequest struct {
	Motivations *string `json:"motivations"`
}

func (r UpdateMotivationsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Motivations, validation.NotNil.Error("motivations is required")),
	)
}

// GooseCreatedResponse is the projection returned on creation; it has no bio.
type GooseCreatedResponse struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	IsFlockLeader       bool    `json:"isFlockLeader"`
	ProgrammingLanguage *string `json:"programmingLanguage"`
	Motivations         *string `json:"motivations"`
	Location            *string `json:"location"`
}

// HonkResponse - POST /api/geese/:id/honk
type HonkResponse struct {
	Message string `json:"message"`
}

// QuotesResponse - POST /api/geese/:id/generate
type QuotesResponse struct {
	Name   string   `json:"name"`
	Quotes []string `json:"quotes"`
}

// ToCreatedResponse converts Goose entity to the creation projection
func (g *Goose) ToCreatedResponse() *GooseCreatedResponse {
	return &GooseCreatedResponse{
		ID:                  g.ID,
		Name:                g.Name,
		Description:         g.Description,
		IsFlockLeader:       g.IsFlockLeader,
		ProgrammingLanguage: g.ProgrammingLanguage,
		Motivations:         g.Motivations,
		Location:            g.Location,
	}
}

// HonkMessage formats the acknowledgement for a honk
func HonkMessage(name string) string {
	return "Honk honk! " + name + " honks back at you!"
}
