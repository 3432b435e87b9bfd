package emotion

import (
	"fmt"
	"strings"

	"shaimind/src/personality"
)

// Heuristic pairs a trigger substring with a canned response template.
// Matching is a loose case-insensitive substring check, deliberately
// looser than the word-bounded emotion rules: these short-circuit the
// LLM call entirely for known high-frequency topics.
type Heuristic struct {
	Trigger string
	Respond func(name string) string
}

// DefaultHeuristics returns the built-in canned-response table
func DefaultHeuristics() []Heuristic {
	return []Heuristic{
		{"death", func(name string) string {
			return fmt.Sprintf("Ah, death! The eternal muse of my musings. %s cannot help but dwell upon its mystery.", name)
		}},
		{"love", func(name string) string {
			return "Love, that bittersweet elixir, fills my heart with both longing and sorrow."
		}},
		{"raven", func(name string) string {
			return "The raven, ever watchful, remains a steadfast symbol of my contemplations."
		}},
	}
}

// Responder checks user input against the heuristic table
type Responder struct {
	heuristics []Heuristic
}

func NewResponder() *Responder {
	return &Responder{heuristics: DefaultHeuristics()}
}

func NewResponderWithHeuristics(heuristics []Heuristic) *Responder {
	return &Responder{heuristics: heuristics}
}

// TryRespond returns the first matching canned response, in declaration
// order. The second return is false when no heuristic matched and the
// caller should proceed to the response generator.
func (r *Responder) TryRespond(state *personality.PersonalityState, input string) (string, bool) {
	lower := strings.ToLower(input)
	for _, h := range r.heuristics {
		if strings.Contains(lower, h.Trigger) {
			return h.Respond(state.Name), true
		}
	}
	return "", false
}
