// Package guide turns a visitor's pivot-language message into the local
// guide's reply.
package guide

import (
	"context"
	"log/slog"
	"strings"
)

// DefaultCompareTriggers are the lowercase substrings that mark a comparison
// request. Matching is plain substring search, so "compare notes" matches too.
var DefaultCompareTriggers = []string{"compare ", " vs ", " versus "}

// Model is a hosted LLM that answers one message under a system instruction.
type Model interface {
	Generate(ctx context.Context, system, input string) (string, error)
}

// Responder is what the orchestration pipeline needs from a Generator.
type Responder interface {
	IsCompareQuery(text string) bool
	Reply(ctx context.Context, input string) string
}

type Generator struct {
	model    Model
	system   string
	triggers []string
}

// NewGenerator binds model to the guide persona. model may be nil, in which
// case every reply is Apology. Empty triggers select DefaultCompareTriggers.
func NewGenerator(model Model, triggers []string) *Generator {
	if len(triggers) == 0 {
		triggers = DefaultCompareTriggers
	}
	norm := make([]string, 0, len(triggers))
	for _, t := range triggers {
		if t != "" {
			norm = append(norm, strings.ToLower(t))
		}
	}
	return &Generator{model: model, system: Persona, triggers: norm}
}

func (g *Generator) IsCompareQuery(text string) bool {
	return matchesAny(text, g.triggers)
}

// Reply generates the guide's answer. It never fails: model errors are logged
// and replaced by Apology.
func (g *Generator) Reply(ctx context.Context, input string) string {
	if strings.TrimSpace(input) == "" {
		return NotHeard
	}
	if g.model == nil {
		slog.Warn("no language model configured, replying with apology")
		return Apology
	}
	out, err := g.model.Generate(ctx, g.system, input)
	if err != nil {
		slog.Error("language model call failed", "error", err)
		return Apology
	}
	return out
}

// IsCompareQuery reports whether text asks to compare places, using
// DefaultCompareTriggers.
func IsCompareQuery(text string) bool {
	return matchesAny(text, DefaultCompareTriggers)
}

// EnrichCompare appends the structured-comparison instruction to text.
func EnrichCompare(text string) string {
	return strings.TrimSpace(text) + compareInstruction
}

func matchesAny(text string, triggers []string) bool {
	t := strings.ToLower(text)
	for _, trig := range triggers {
		if strings.Contains(t, trig) {
			return true
		}
	}
	return false
}
