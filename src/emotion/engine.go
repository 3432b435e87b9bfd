package emotion

import (
	"regexp"

	"shaimind/src/personality"
)

// Rule pairs a trigger pattern with the emotional transition it causes.
// Rule order encodes priority among overlapping triggers: only the
// first matching rule applies per message.
type Rule struct {
	Pattern *regexp.Regexp
	Emotion string
	Delta   int
}

// DefaultRules returns the built-in trigger table. Patterns are
// case-insensitive and word-bounded, so "death" matches "death" but
// not "deathly". Mortality is listed ahead of hope so the heavier
// theme wins when both appear in one message.
func DefaultRules() []Rule {
	return []Rule{
		{regexp.MustCompile(`(?i)\bdeath\b`), "melancholy", 2},
		{regexp.MustCompile(`(?i)\blove\b`), "nostalgic", 1},
		{regexp.MustCompile(`(?i)\bfear\b`), "anxious", 1},
		{regexp.MustCompile(`(?i)\bmortality\b`), "introspective", 2},
		{regexp.MustCompile(`(?i)\bhope\b`), "reflective", -1},
		{regexp.MustCompile(`(?i)\braven\b`), "curious", 1},
	}
}

// Engine adjusts a persona's emotional state from user input
type Engine struct {
	rules []Rule
}

func NewEngine() *Engine {
	return &Engine{rules: DefaultRules()}
}

func NewEngineWithRules(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// Update scans the rules in declaration order and applies the first
// match: the emotion label is overwritten wholesale and the intensity
// shifted by the rule's delta, clamped to [0,10]. At most one
// transition per message; no match leaves the state untouched.
func (e *Engine) Update(state *personality.PersonalityState, input string) {
	for _, rule := range e.rules {
		if rule.Pattern.MatchString(input) {
			state.EmotionalState = rule.Emotion
			state.EmotionalIntensity = clamp(state.EmotionalIntensity + rule.Delta)
			return
		}
	}
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}
