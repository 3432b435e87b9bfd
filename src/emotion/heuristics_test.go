package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shaimind/src/personality"
)

func TestResponderTryRespond(t *testing.T) {
	responder := NewResponder()
	poe := &personality.PersonalityState{Name: "Poe"}

	t.Run("raven_returns_fixed_template", func(t *testing.T) {
		reply, ok := responder.TryRespond(poe, "Tell me about the raven outside")
		assert.True(t, ok)
		assert.Equal(t, "The raven, ever watchful, remains a steadfast symbol of my contemplations.", reply)
	})

	t.Run("death_template_embeds_persona_name", func(t *testing.T) {
		reply, ok := responder.TryRespond(poe, "what do you think of death?")
		assert.True(t, ok)
		assert.Equal(t, "Ah, death! The eternal muse of my musings. Poe cannot help but dwell upon its mystery.", reply)
	})

	t.Run("declaration_order_wins", func(t *testing.T) {
		// death precedes raven in the table
		reply, ok := responder.TryRespond(poe, "the raven spoke of death")
		assert.True(t, ok)
		assert.Contains(t, reply, "Ah, death!")
	})

	t.Run("substring_match_is_looser_than_word_boundary", func(t *testing.T) {
		// "deathly" does not trip the emotion engine, but it does
		// contain the "death" substring
		reply, ok := responder.TryRespond(poe, "a deathly pall hung over the room")
		assert.True(t, ok)
		assert.Contains(t, reply, "Ah, death!")
	})

	t.Run("case_insensitive", func(t *testing.T) {
		_, ok := responder.TryRespond(poe, "LOVE conquers all")
		assert.True(t, ok)
	})

	t.Run("no_match_signals_fallthrough", func(t *testing.T) {
		reply, ok := responder.TryRespond(poe, "how was your morning?")
		assert.False(t, ok)
		assert.Empty(t, reply)
	})
}
