package model

import (
	"fmt"
	"strings"
)

// Goose is the only entity of the service.
// Description is derived from Name at creation and Bio stays nil until generated.
type Goose struct {
	ID                  int64   `json:"id" db:"id"`
	Name                string  `json:"name" db:"name"`
	Description         string  `json:"description" db:"description"`
	IsFlockLeader       bool    `json:"isFlockLeader" db:"is_flock_leader"`
	ProgrammingLanguage *string `json:"programmingLanguage" db:"programming_language"`
	Motivations         *string `json:"motivations" db:"motivations"`
	Location            *string `json:"location" db:"location"`
	Bio                 *string `json:"bio" db:"bio"`
}

// GoosePatch carries a partial update; nil fields are left untouched.
type GoosePatch struct {
	Name        *string
	Motivations *string
	Bio         *string
}

// IsEmpty reports whether the patch changes nothing
func (p GoosePatch) IsEmpty() bool {
	return p.Name == nil && p.Motivations == nil && p.Bio == nil
}

// Apply copies the non-nil fields of the patch onto g
func (p GoosePatch) Apply(g *Goose) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Motivations != nil {
		g.Motivations = p.Motivations
	}
	if p.Bio != nil {
		g.Bio = p.Bio
	}
}

// SearchField names a column that supports substring search
type SearchField string

const (
	SearchByName     SearchField = "name"
	SearchByLanguage SearchField = "programming_language"
)

// DescribeGoose builds the description stored at creation time.
func DescribeGoose(name string) string {
	return fmt.Sprintf("A person named %s who talks like a Goose", name)
}

// Persona is the context handed to the text generator.
type Persona struct {
	Name                string
	Description         string
	ProgrammingLanguage string
	Motivations         string
	Location            string
}

// PersonaFor builds the persona context of g
func PersonaFor(g *Goose) Persona {
	return Persona{
		Name:                g.Name,
		Description:         g.Description,
		ProgrammingLanguage: deref(g.ProgrammingLanguage),
		Motivations:         deref(g.Motivations),
		Location:            deref(g.Location),
	}
}

// SplitQuotes returns the non-empty trimmed lines of text.
func SplitQuotes(text string) []string {
	quotes := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		quotes = append(quotes, line)
	}
	return quotes
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
