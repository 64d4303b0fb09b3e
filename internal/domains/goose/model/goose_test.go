package model

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestDescribeGoose(t *testing.T) {
	assert.Equal(t, "A person named Gary who talks like a Goose", DescribeGoose("Gary"))
}

func TestCreateGooseRequestToEntity(t *testing.T) {
	leader := true
	req := CreateGooseRequest{
		Name:                "  Gary ",
		IsFlockLeader:       &leader,
		ProgrammingLanguage: strPtr("Go"),
		Location:            strPtr("Pond"),
	}

	g := req.ToEntity()
	assert.Equal(t, "Gary", g.Name)
	assert.Equal(t, "A person named Gary who talks like a Goose", g.Description)
	assert.True(t, g.IsFlockLeader)
	assert.Equal(t, "Go", *g.ProgrammingLanguage)
	assert.Nil(t, g.Motivations)
	assert.Nil(t, g.Bio)

	plain := (&CreateGooseRequest{Name: "Gus"}).ToEntity()
	assert.False(t, plain.IsFlockLeader)
}

func TestCreateGooseRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateGooseRequest
		wantErr bool
	}{
		{"valid", CreateGooseRequest{Name: "Gary"}, false},
		{"empty name", CreateGooseRequest{}, true},
		{"blank name", CreateGooseRequest{Name: "   "}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "name is required")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUpdateRequestsValidate(t *testing.T) {
	assert.NoError(t, UpdateNameRequest{Name: "Gus"}.Validate())
	assert.Error(t, UpdateNameRequest{Name: " "}.Validate())

	assert.NoError(t, UpdateMotivationsRequest{Motivations: strPtr("")}.Validate())
	assert.Error(t, UpdateMotivationsRequest{}.Validate())
}

func TestGoosePatchApplyKeepsOtherFields(t *testing.T) {
	g := Goose{
		ID:                  7,
		Name:                "Gary",
		Description:         DescribeGoose("Gary"),
		IsFlockLeader:       true,
		ProgrammingLanguage: strPtr("Go"),
		Motivations:         strPtr("bread"),
		Location:            strPtr("Pond"),
	}

	GoosePatch{Name: strPtr("Gus")}.Apply(&g)

	assert.Equal(t, "Gus", g.Name)
	assert.Equal(t, DescribeGoose("Gary"), g.Description)
	assert.Equal(t, "bread", *g.Motivations)
	assert.Equal(t, "Go", *g.ProgrammingLanguage)
	assert.True(t, g.IsFlockLeader)
	assert.Nil(t, g.Bio)

	assert.True(t, GoosePatch{}.IsEmpty())
	assert.False(t, GoosePatch{Bio: strPtr("x")}.IsEmpty())
}

func TestSplitQuotes(t *testing.T) {
	text := "  Honk once.\n\n\tHonk twice.  \r\n   \nHonk thrice."
	assert.Equal(t, []string{"Honk once.", "Honk twice.", "Honk thrice."}, SplitQuotes(text))
	assert.Empty(t, SplitQuotes("\n \n"))
	assert.NotNil(t, SplitQuotes(""))
}

func TestPersonaFor(t *testing.T) {
	g := &Goose{Name: "Gary", Description: "d", Motivations: strPtr("bread")}
	p := PersonaFor(g)
	assert.Equal(t, Persona{Name: "Gary", Description: "d", Motivations: "bread"}, p)
}

func TestHonkMessage(t *testing.T) {
	assert.Equal(t, "Honk honk! Gary honks back at you!", HonkMessage("Gary"))
}

func TestErrorMapping(t *testing.T) {
	storeErr := fmt.Errorf("list: %w: %w: %w", ErrCollaborator, ErrStore, errors.New("connection refused"))
	genErr := fmt.Errorf("bio: %w: %w: %w", ErrCollaborator, ErrGenerationFailed, errors.New("timeout"))
	notFound := fmt.Errorf("get: %w", ErrGooseNotFound)
	invalid := &ValidationError{Message: "name: name is required."}

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", notFound, http.StatusNotFound, "Goose not found"},
		{"validation", invalid, http.StatusBadRequest, "name: name is required."},
		{"store", storeErr, http.StatusInternalServerError, "Internal server error"},
		{"generation", genErr, http.StatusBadGateway, "Failed to generate text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, ToHTTPStatus(tt.err))
			assert.Equal(t, tt.message, ToMessage(tt.err))
			assert.NotContains(t, ToMessage(tt.err), "connection refused")
		})
	}
}
