package ai

import (
	"context"
	"fmt"
	"strings"

	"goose-quotes/internal/domains/goose/model"
)

const quotesSystemPrompt = `
	You are a goose who has somehow learned to speak like a person.
	You answer in short, witty one-liners that sound like they were honked.
	Write each quote on its own line with no numbering and no quotation marks.
`

const bioSystemPrompt = `
	You write short, warm biographies for geese who live among software people.
	Keep it to one paragraph of at most five sentences.
	Do not use headings, lists or markdown.
`

const (
	quotesTemperatureBoost = 0.2
	maxTemperature         = 2.0
)

// PersonaWriter writes goose quotes and biographies with a Completer
type PersonaWriter struct {
	completer Completer
	quotes    CompletionOptions
	bio       CompletionOptions
}

// NewPersonaWriter creates a writer; quotes use a hotter temperature than bios,
// capped at the provider maximum
func NewPersonaWriter(completer Completer, temperature float64, maxTokens int64) *PersonaWriter {
	return &PersonaWriter{
		completer: completer,
		quotes:    CompletionOptions{Temperature: min(temperature+quotesTemperatureBoost, maxTemperature), MaxTokens: maxTokens},
		bio:       CompletionOptions{Temperature: temperature, MaxTokens: maxTokens},
	}
}

// GenerateQuotes returns raw quote text, one quote per line
func (w *PersonaWriter) GenerateQuotes(ctx context.Context, p model.Persona) (string, error) {
	user := fmt.Sprintf(`
		Your name is %s.
		Give me five quotes you would honk at a stand-up meeting.
	`, p.Name)

	return w.completer.Complete(ctx, quotesSystemPrompt, user, w.quotes)
}

// GenerateBio returns a one paragraph biography
func (w *PersonaWriter) GenerateBio(ctx context.Context, p model.Persona) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Description: %s\n", p.Description)
	if p.ProgrammingLanguage != "" {
		fmt.Fprintf(&b, "Favourite programming language: %s\n", p.ProgrammingLanguage)
	}
	if p.Motivations != "" {
		fmt.Fprintf(&b, "Motivations: %s\n", p.Motivations)
	}
	if p.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", p.Location)
	}
	b.WriteString("Write the biography of this goose.")

	return w.completer.Complete(ctx, bioSystemPrompt, b.String(), w.bio)
}

// Unavailable is the writer used when no provider is configured.
// Every call fails with ErrNotConfigured.
type Unavailable struct{}

func (Unavailable) GenerateQuotes(ctx context.Context, p model.Persona) (string, error) {
	return "", ErrNotConfigured
}

func (Unavailable) GenerateBio(ctx context.Context, p model.Persona) (string, error) {
	return "", ErrNotConfigured
}
