package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shaimind/src/personality"
)

func testPersona() *personality.PersonalityState {
	return &personality.PersonalityState{
		Name:               "Edgar Allan Poe",
		EmotionalState:     "melancholy",
		EmotionalIntensity: 5,
	}
}

func TestEngineUpdate(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		startState    string
		startLevel    int
		wantState     string
		wantIntensity int
	}{
		{
			name:          "single_trigger",
			input:         "tell me of death",
			startState:    "melancholy",
			startLevel:    5,
			wantState:     "melancholy",
			wantIntensity: 7,
		},
		{
			name:          "case_insensitive",
			input:         "DEATH comes for us all",
			startState:    "curious",
			startLevel:    3,
			wantState:     "melancholy",
			wantIntensity: 5,
		},
		{
			name:          "negative_delta",
			input:         "is there hope for us?",
			startState:    "melancholy",
			startLevel:    5,
			wantState:     "reflective",
			wantIntensity: 4,
		},
		{
			name:          "first_rule_wins_over_later",
			input:         "mortality and hope in the same breath",
			startState:    "melancholy",
			startLevel:    5,
			wantState:     "introspective",
			wantIntensity: 7,
		},
		{
			name:          "clamp_at_floor",
			input:         "hope springs eternal",
			startState:    "reflective",
			startLevel:    0,
			wantState:     "reflective",
			wantIntensity: 0,
		},
		{
			name:          "clamp_at_ceiling",
			input:         "death again",
			startState:    "melancholy",
			startLevel:    9,
			wantState:     "melancholy",
			wantIntensity: 10,
		},
		{
			name:          "word_boundary_no_match",
			input:         "a deathly silence",
			startState:    "curious",
			startLevel:    4,
			wantState:     "curious",
			wantIntensity: 4,
		},
		{
			name:          "no_trigger_leaves_state_untouched",
			input:         "what a pleasant afternoon",
			startState:    "curious",
			startLevel:    4,
			wantState:     "curious",
			wantIntensity: 4,
		},
	}

	engine := NewEngine()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := testPersona()
			state.EmotionalState = tt.startState
			state.EmotionalIntensity = tt.startLevel

			engine.Update(state, tt.input)

			assert.Equal(t, tt.wantState, state.EmotionalState)
			assert.Equal(t, tt.wantIntensity, state.EmotionalIntensity)
		})
	}
}

func TestEngineOneTransitionPerMessage(t *testing.T) {
	// All three triggers present: only the first rule in declaration
	// order may apply.
	state := testPersona()
	state.EmotionalState = "neutral"
	state.EmotionalIntensity = 5

	NewEngine().Update(state, "death, fear and the raven walked in together")

	assert.Equal(t, "melancholy", state.EmotionalState)
	assert.Equal(t, 7, state.EmotionalIntensity)
}

func TestEngineCustomRuleOrder(t *testing.T) {
	rules := DefaultRules()
	// Reverse priority: raven ahead of death
	reversed := []Rule{rules[5], rules[0]}

	state := testPersona()
	state.EmotionalIntensity = 5
	NewEngineWithRules(reversed).Update(state, "the raven spoke of death")

	assert.Equal(t, "curious", state.EmotionalState)
	assert.Equal(t, 6, state.EmotionalIntensity)
}
